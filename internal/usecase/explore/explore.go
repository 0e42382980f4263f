package explore

import (
	"go.uber.org/zap"

	"detective_quest/internal/domain/clue"
	"detective_quest/internal/domain/game"
	"detective_quest/internal/domain/mansion"
	errs "detective_quest/internal/errors"
)

// LeafPolicy decides whether a dead end ends the exploration by itself.
type LeafPolicy string

const (
	LeafExplicitExit LeafPolicy = "explicit"
	LeafAutoExit     LeafPolicy = "auto"
)

func (p LeafPolicy) Valid() bool {
	return p == LeafExplicitExit || p == LeafAutoExit
}

type SuspectLookup interface {
	Lookup(clue string) (suspect string, ok bool)
}

type Recorder interface {
	RoomVisited()
	ClueCollected(isNew bool)
	InvalidChoice()
}

// Option is one movement the player may pick in the current room.
type Option struct {
	Choice game.Choice
	Target string // имя комнаты, пусто для выхода
}

// Visit describes what happened on entering a room.
type Visit struct {
	Room       string
	Clue       string
	NewClue    bool
	Suspect    string
	HasSuspect bool
	Options    []Option
	Final      bool
}

// Engine walks the mansion forward from the entrance and files every clue
// it meets into the clue tree.
type Engine struct {
	log      *zap.SugaredLogger
	suspects SuspectLookup
	recorder Recorder
	policy   LeafPolicy

	current *mansion.Room
	clues   *clue.Node
	started bool
	done    bool
}

func NewEngine(root *mansion.Room, suspects SuspectLookup, policy LeafPolicy, log *zap.SugaredLogger, recorder Recorder) (*Engine, error) {
	if root == nil {
		return nil, errs.ErrEmptyMansion
	}
	if !policy.Valid() {
		return nil, errs.ErrInvalidLeafPolicy
	}
	return &Engine{
		log:      log,
		suspects: suspects,
		recorder: recorder,
		policy:   policy,
		current:  root,
	}, nil
}

// Start enters the entrance room. Calling it again is a no-op that
// describes the current room without collecting anything.
func (e *Engine) Start() (Visit, error) {
	if e.done {
		return Visit{}, errs.ErrExplorationOver
	}
	if e.started {
		return e.describe(), nil
	}
	e.started = true
	return e.enter(), nil
}

// Move applies one choice. Unknown tokens and missing children leave the
// engine where it was. The entrance must have been entered with Start.
func (e *Engine) Move(choice game.Choice) (Visit, error) {
	if e.done {
		return Visit{}, errs.ErrExplorationOver
	}
	if !e.started {
		return Visit{}, errs.ErrNotStarted
	}

	var next *mansion.Room
	switch choice {
	case game.ChoiceExit:
		e.done = true
		e.log.Infow("exploration finished by player", "room", e.current.Name)
		return Visit{Room: e.current.Name, Final: true}, nil
	case game.ChoiceLeft:
		next = e.current.Left
	case game.ChoiceRight:
		next = e.current.Right
	default:
		e.invalid(choice)
		return Visit{}, errs.ErrUnknownChoice
	}

	if next == nil {
		e.invalid(choice)
		return Visit{}, errs.ErrNoPath
	}

	e.current = next
	return e.enter(), nil
}

func (e *Engine) invalid(choice game.Choice) {
	e.log.Debugw("invalid movement choice", "room", e.current.Name, "choice", choice.String())
	if e.recorder != nil {
		e.recorder.InvalidChoice()
	}
}

func (e *Engine) enter() Visit {
	room := e.current
	if e.recorder != nil {
		e.recorder.RoomVisited()
	}

	isNew := false
	if room.HasClue() {
		isNew = !e.clues.Contains(room.Clue)
		e.clues = clue.Insert(e.clues, room.Clue)
		if e.recorder != nil {
			e.recorder.ClueCollected(isNew)
		}
		e.log.Debugw("clue collected", "room", room.Name, "clue", room.Clue, "new", isNew)
	}

	visit := e.describe()
	visit.NewClue = isNew

	if e.policy == LeafAutoExit && room.IsLeaf() {
		e.done = true
		visit.Final = true
		visit.Options = nil
		e.log.Infow("exploration reached a dead end", "room", room.Name)
	}
	return visit
}

func (e *Engine) describe() Visit {
	room := e.current
	visit := Visit{
		Room:    room.Name,
		Clue:    room.Clue,
		Options: e.Options(),
	}
	if room.HasClue() && e.suspects != nil {
		visit.Suspect, visit.HasSuspect = e.suspects.Lookup(room.Clue)
	}
	return visit
}

// Options lists the existing children of the current room plus exit.
func (e *Engine) Options() []Option {
	if e.done || e.current == nil {
		return nil
	}
	opts := make([]Option, 0, 3)
	if e.current.Left != nil {
		opts = append(opts, Option{Choice: game.ChoiceLeft, Target: e.current.Left.Name})
	}
	if e.current.Right != nil {
		opts = append(opts, Option{Choice: game.ChoiceRight, Target: e.current.Right.Name})
	}
	return append(opts, Option{Choice: game.ChoiceExit})
}

func (e *Engine) Current() *mansion.Room {
	return e.current
}

func (e *Engine) Clues() *clue.Node {
	return e.clues
}

func (e *Engine) Done() bool {
	return e.done
}

// Release tears down the clue tree and detaches the engine from the map.
// The map itself belongs to whoever built it.
func (e *Engine) Release() int {
	released := clue.Release(e.clues, nil)
	e.clues = nil
	e.current = nil
	e.done = true
	return released
}
