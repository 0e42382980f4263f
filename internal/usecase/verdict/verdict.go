package verdict

import (
	"detective_quest/internal/domain/clue"
)

type Outcome string

const (
	OutcomeNoEvidence  Outcome = "insufficient_no_evidence"
	OutcomeSingleClue  Outcome = "insufficient_single_clue"
	OutcomeUnsupported Outcome = "unsupported_accusation"
	OutcomeSustainable Outcome = "sustainable_accusation"
)

// SustainThreshold is how many collected clues must point at the accused
// for the accusation to stand.
const SustainThreshold = 2

type SuspectLookup interface {
	Lookup(clue string) (suspect string, ok bool)
}

type Verdict struct {
	Accused         string   `json:"accused"`
	Outcome         Outcome  `json:"outcome"`
	Supporting      int      `json:"supporting"`
	SupportingClues []string `json:"supporting_clues,omitempty"`
}

// Evaluate scores an accusation against the collected clues. Names are
// compared byte for byte.
func Evaluate(clues *clue.Node, suspects SuspectLookup, accused string) Verdict {
	v := Verdict{Accused: accused}
	if clues == nil {
		v.Outcome = OutcomeNoEvidence
		return v
	}

	v.SupportingClues = collectSupporting(clues, suspects, accused, nil)
	v.Supporting = len(v.SupportingClues)

	switch {
	case v.Supporting >= SustainThreshold:
		v.Outcome = OutcomeSustainable
	case v.Supporting == 1:
		v.Outcome = OutcomeSingleClue
	default:
		v.Outcome = OutcomeUnsupported
	}
	return v
}

func collectSupporting(n *clue.Node, suspects SuspectLookup, accused string, acc []string) []string {
	if n == nil {
		return acc
	}
	acc = collectSupporting(n.Left, suspects, accused, acc)
	if suspect, ok := suspects.Lookup(n.Text); ok && suspect == accused {
		acc = append(acc, n.Text)
	}
	return collectSupporting(n.Right, suspects, accused, acc)
}
