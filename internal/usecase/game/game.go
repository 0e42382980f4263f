package game

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"detective_quest/internal/bootstrap"
	"detective_quest/internal/domain/game"
	"detective_quest/internal/domain/mansion"
	errs "detective_quest/internal/errors"
	"detective_quest/internal/statuses"
	"detective_quest/internal/usecase/explore"
	"detective_quest/internal/usecase/verdict"
)

type SuspectStore interface {
	Insert(clue, suspect string)
	Lookup(clue string) (string, bool)
	Teardown() int
}

type Recorder interface {
	explore.Recorder
	VerdictReached(outcome string)
}

// GameUseCase owns everything one playthrough allocates: the map, the
// suspect table and the exploration engine with its clue tree.
type GameUseCase struct {
	log      *zap.SugaredLogger
	recorder Recorder
	casebook *mansion.Casebook
	suspects SuspectStore
	engine   *explore.Engine
	session  game.Session
	closed   bool
}

func NewGameUseCase(cfg bootstrap.Config, log *zap.SugaredLogger, casebook *mansion.Casebook, suspects SuspectStore, recorder Recorder) (*GameUseCase, error) {
	if casebook == nil || casebook.Root == nil {
		return nil, errs.ErrEmptyMansion
	}

	for _, a := range casebook.Associations {
		suspects.Insert(a.Clue, a.Suspect)
	}

	sessionID := uuid.New().String()
	log = log.With("session_id", sessionID)

	engine, err := explore.NewEngine(casebook.Root, suspects, explore.LeafPolicy(cfg.LeafPolicy), log, recorder)
	if err != nil {
		return nil, err
	}

	return &GameUseCase{
		log:      log,
		recorder: recorder,
		casebook: casebook,
		suspects: suspects,
		engine:   engine,
		session: game.Session{
			ID:        sessionID,
			Casebook:  casebook.Name,
			Status:    statuses.StatusExploring,
			StartedAt: time.Now(),
		},
	}, nil
}

func (g *GameUseCase) Title() string {
	return g.casebook.Title
}

// HasSuspects is false for collection-only casebooks, which end without
// an accusation.
func (g *GameUseCase) HasSuspects() bool {
	return len(g.casebook.Associations) > 0
}

func (g *GameUseCase) Start() (explore.Visit, error) {
	if g.closed {
		return explore.Visit{}, errs.ErrSessionClosed
	}
	g.log.Infow("session started", "casebook", g.casebook.Name)
	return g.engine.Start()
}

func (g *GameUseCase) Move(choice game.Choice) (explore.Visit, error) {
	if g.closed {
		return explore.Visit{}, errs.ErrSessionClosed
	}
	visit, err := g.engine.Move(choice)
	if err == nil && g.engine.Done() {
		g.session.Status = statuses.StatusAccusing
	}
	return visit, err
}

func (g *GameUseCase) Options() []explore.Option {
	if g.closed {
		return nil
	}
	return g.engine.Options()
}

func (g *GameUseCase) ExplorationDone() bool {
	return g.closed || g.engine.Done()
}

// Clues returns the collected clues in ascending order.
func (g *GameUseCase) Clues() []string {
	if g.closed {
		return slices.Clone(g.session.Clues)
	}
	return slices.Collect(g.engine.Clues().All())
}

// Accuse scores the accusation. Only the trailing line terminator is
// stripped; an empty accusation is no accusation at all and yields false.
func (g *GameUseCase) Accuse(raw string) (verdict.Verdict, bool) {
	if g.closed {
		return verdict.Verdict{}, false
	}
	g.session.Clues = g.Clues()
	g.session.Status = statuses.StatusAccusing

	accused := strings.TrimRight(raw, "\r\n")
	if accused == "" {
		g.log.Infow("no accusation made")
		return verdict.Verdict{}, false
	}

	v := verdict.Evaluate(g.engine.Clues(), g.suspects, accused)
	g.session.Accused = v.Accused
	g.session.Outcome = string(v.Outcome)
	g.session.Supporting = v.Supporting
	if g.recorder != nil {
		g.recorder.VerdictReached(string(v.Outcome))
	}
	g.log.Infow("accusation evaluated", "accused", accused, "outcome", v.Outcome, "supporting", v.Supporting)
	return v, true
}

// Close releases the clue tree, the suspect table and finally the map.
// Only the first call releases anything.
func (g *GameUseCase) Close() game.Report {
	report := game.Report{SessionID: g.session.ID}
	if g.closed {
		return report
	}
	if g.session.Clues == nil {
		g.session.Clues = g.Clues()
	}

	report.CluesReleased = g.engine.Release()
	report.EntriesFreed = g.suspects.Teardown()
	report.RoomsReleased = mansion.Release(g.casebook.Root, nil)
	g.casebook.Root = nil

	finishedAt := time.Now()
	g.session.FinishedAt = &finishedAt
	g.session.Status = statuses.StatusCompleted
	g.closed = true

	g.log.Infow("session closed",
		"clues_released", report.CluesReleased,
		"entries_freed", report.EntriesFreed,
		"rooms_released", report.RoomsReleased,
	)
	return report
}

func (g *GameUseCase) Session() game.Session {
	s := g.session
	s.Clues = slices.Clone(g.session.Clues)
	return s
}
