package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"detective_quest/internal/adapters"
	"detective_quest/internal/bootstrap"
	"detective_quest/internal/domain/game"
	errs "detective_quest/internal/errors"
	repo "detective_quest/internal/repository"
	gameuc "detective_quest/internal/usecase/game"
)

const (
	promptChoice     = "Opção: "
	promptAccusation = "Quem você acusa? "
)

type ConsoleHandler struct {
	cfg      bootstrap.Config
	log      *zap.SugaredLogger
	gameUC   *gameuc.GameUseCase
	in       InputReader
	narrator *narrator
}

func NewConsoleHandler(cfg bootstrap.Config, log *zap.SugaredLogger, metrics *adapters.AdapterMetrics, in InputReader, out io.Writer) (*ConsoleHandler, error) {
	casebook, err := repo.NewCasebookStorage().Load(cfg.Casebook)
	if err != nil {
		return nil, fmt.Errorf("load casebook %q: %w", cfg.Casebook, err)
	}

	suspects, err := repo.NewSuspectHashStorage(cfg.HashTableSize)
	if err != nil {
		return nil, fmt.Errorf("create suspect table: %w", err)
	}

	var recorder gameuc.Recorder
	if metrics != nil {
		recorder = metrics
	}

	uc, err := gameuc.NewGameUseCase(cfg, log, casebook, suspects, recorder)
	if err != nil {
		return nil, fmt.Errorf("create game session: %w", err)
	}

	return &ConsoleHandler{
		cfg:      cfg,
		log:      log,
		gameUC:   uc,
		in:       in,
		narrator: newNarrator(out, cfg.PlainOutput),
	}, nil
}

// Run plays one full session: exploration, clue listing, accusation and
// teardown. The session is closed on every return path.
func (h *ConsoleHandler) Run(ctx context.Context) error {
	defer h.finish()

	h.narrator.banner(h.gameUC.Title())
	visit, err := h.gameUC.Start()
	if err != nil {
		return fmt.Errorf("start exploration: %w", err)
	}
	h.narrator.visit(visit)
	if visit.Final {
		h.narrator.notice("Este cômodo não tem saídas. A exploração terminou.")
	}

	if err := h.explore(ctx); err != nil {
		return err
	}

	h.narrator.clues(h.gameUC.Clues())

	if !h.gameUC.HasSuspects() {
		return nil
	}
	return h.accuse(ctx)
}

func (h *ConsoleHandler) explore(ctx context.Context) error {
	for !h.gameUC.ExplorationDone() {
		h.narrator.options(h.gameUC.Options())

		choice := game.ChoiceExit
		line, err := h.in.ReadLine(ctx, promptChoice)
		switch {
		case errors.Is(err, io.EOF):
			h.log.Infow("input closed while exploring")
		case err != nil:
			return fmt.Errorf("read choice: %w", err)
		default:
			choice = game.ParseChoice(line)
		}

		visit, err := h.gameUC.Move(choice)
		if errors.Is(err, errs.ErrUnknownChoice) || errors.Is(err, errs.ErrNoPath) {
			h.narrator.notice("Opção inválida. Tente novamente.")
			continue
		}
		if err != nil {
			return fmt.Errorf("move %s: %w", choice, err)
		}

		if choice == game.ChoiceExit {
			h.narrator.line("")
			h.narrator.notice("Você decidiu encerrar a exploração.")
			continue
		}
		h.narrator.visit(visit)
		if visit.Final {
			h.narrator.notice("Este cômodo não tem saídas. A exploração terminou.")
		}
	}
	return nil
}

func (h *ConsoleHandler) accuse(ctx context.Context) error {
	h.narrator.line("")
	line, err := h.in.ReadLine(ctx, promptAccusation)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read accusation: %w", err)
	}

	v, ok := h.gameUC.Accuse(line)
	if !ok {
		h.narrator.line("")
		h.narrator.notice("Nenhuma acusação foi feita.")
		return nil
	}
	h.narrator.verdictResult(v)
	return nil
}

func (h *ConsoleHandler) finish() {
	report := h.gameUC.Close()
	h.log.Infow("session finished", "report", report, "session", h.gameUC.Session())
	h.narrator.line("")
	h.narrator.line("Obrigado por jogar Detective Quest!")
}

// Session returns the record of the session played by Run.
func (h *ConsoleHandler) Session() game.Session {
	return h.gameUC.Session()
}
