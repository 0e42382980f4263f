package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"detective_quest/internal/domain/game"
	"detective_quest/internal/usecase/explore"
	"detective_quest/internal/usecase/verdict"
)

var verdictMessages = map[verdict.Outcome]string{
	verdict.OutcomeNoEvidence:  "Nenhuma pista foi coletada. Não há provas para sustentar a acusação.",
	verdict.OutcomeSingleClue:  "Apenas uma pista aponta para %s. A acusação é insuficiente.",
	verdict.OutcomeUnsupported: "Nenhuma pista aponta para %s. A acusação não se sustenta.",
	verdict.OutcomeSustainable: "As pistas apontam para %s. A acusação se sustenta!",
}

// narrator writes the player-facing text. With plain set every style is
// skipped and the output is byte-stable.
type narrator struct {
	out   io.Writer
	plain bool

	title   lipgloss.Style
	room    lipgloss.Style
	clue    lipgloss.Style
	suspect lipgloss.Style
	faint   lipgloss.Style
	verdict lipgloss.Style
}

func newNarrator(out io.Writer, plain bool) *narrator {
	r := lipgloss.NewRenderer(out)
	return &narrator{
		out:     out,
		plain:   plain,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		room:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		clue:    r.NewStyle().Foreground(lipgloss.Color("220")),
		suspect: r.NewStyle().Italic(true).Foreground(lipgloss.Color("203")),
		faint:   r.NewStyle().Faint(true),
		verdict: r.NewStyle().Bold(true).Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

func (n *narrator) styled(s lipgloss.Style, text string) string {
	if n.plain {
		return text
	}
	return s.Render(text)
}

func (n *narrator) line(format string, args ...interface{}) {
	fmt.Fprintf(n.out, format+"\n", args...)
}

func (n *narrator) banner(title string) {
	n.line("%s", n.styled(n.title, "=== "+title+" ==="))
}

func (n *narrator) visit(v explore.Visit) {
	n.line("")
	n.line("📍 Você está em: %s", n.styled(n.room, v.Room))
	if v.Clue == "" {
		n.line("%s", n.styled(n.faint, "Nada interessante aqui..."))
		return
	}
	n.line("🧩 Você encontrou uma pista: %s", n.styled(n.clue, `"`+v.Clue+`"`))
	if !v.NewClue {
		n.line("%s", n.styled(n.faint, "(pista já anotada)"))
	}
	if v.HasSuspect {
		n.line("   Ela aponta para: %s", n.styled(n.suspect, v.Suspect))
	}
}

func (n *narrator) options(opts []explore.Option) {
	n.line("Escolha o próximo caminho:")
	for _, o := range opts {
		switch o.Choice {
		case game.ChoiceLeft:
			n.line("  [%s] Ir para a esquerda (%s)", game.TokenLeft, o.Target)
		case game.ChoiceRight:
			n.line("  [%s] Ir para a direita (%s)", game.TokenRight, o.Target)
		case game.ChoiceExit:
			n.line("  [%s] Sair da mansão", game.TokenExit)
		}
	}
}

func (n *narrator) notice(text string) {
	n.line("%s", n.styled(n.faint, text))
}

func (n *narrator) clues(clues []string) {
	n.line("")
	n.line("%s", n.styled(n.title, "===== Pistas Coletadas (em ordem alfabética) ====="))
	if len(clues) == 0 {
		n.line("Nenhuma pista foi coletada!")
		return
	}
	for _, c := range clues {
		n.line("🔎 %s", c)
	}
}

func (n *narrator) verdictResult(v verdict.Verdict) {
	msg := verdictMessages[v.Outcome]
	if v.Outcome != verdict.OutcomeNoEvidence {
		msg = fmt.Sprintf(msg, v.Accused)
	}
	text := fmt.Sprintf("%s\nPistas que sustentam a acusação: %d", msg, v.Supporting)
	n.line("")
	n.line("%s", n.styled(n.verdict, text))
}
