// Package session owns the roll and skin state for one dice-widget
// instance and its lifecycle. A Session coordinates the roll engine, the
// style validators and an optional rendering surface; it is Active from
// creation until Destroy, which is terminal.
package session

import (
	"sync"
	"time"

	"github.com/JasminDreasond/Tiny-Dices/internal/dice"
	dicerr "github.com/JasminDreasond/Tiny-Dices/internal/errors"
	"github.com/JasminDreasond/Tiny-Dices/internal/skin"
	"github.com/JasminDreasond/Tiny-Dices/internal/surface"
	"github.com/JasminDreasond/Tiny-Dices/internal/uuid"
)

// DefaultSpinDuration is how long a die spins before the surface is told
// to settle it.
const DefaultSpinDuration = 2 * time.Second

// Outcome is the computed result of one die: the front face plus the
// full six-value sequence. Result is always Sequence[0]. Rendering
// handles are internal bookkeeping and never part of an Outcome.
type Outcome struct {
	Result   int
	Sequence []int
}

// Config holds configuration for a dice session
type Config struct {
	Roller        dice.Roller     // Required
	Surface       surface.Surface // Optional; rolls compute without rendering when nil
	UUIDGenerator uuid.Generator  // Optional, will use default if nil
	Defaults      *skin.Defaults  // Optional, built-in skin if nil
	SpinDuration  time.Duration   // Optional, DefaultSpinDuration if zero
}

// Session is one dice-widget instance
type Session struct {
	// mu only exists for the stop-spin timer callbacks; the session is
	// otherwise single-caller by contract
	mu sync.Mutex

	roller       dice.Roller
	surface      surface.Surface
	uuidGen      uuid.Generator
	spinDuration time.Duration

	skins    *skin.State
	defaults skin.Defaults

	cubeCount int
	instances []*dieInstance
	timers    map[string]*time.Timer

	destroyed bool
}

// dieInstance ties an outcome to its rendering handle
type dieInstance struct {
	id      string
	outcome *Outcome
	handle  surface.Handle
}

// New creates a dice session in the Active state
func New(cfg *Config) *Session {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}

	s := &Session{
		roller:       cfg.Roller,
		surface:      cfg.Surface,
		spinDuration: cfg.SpinDuration,
		skins:        skin.NewState(),
		defaults:     skin.BuiltIn(),
		timers:       make(map[string]*time.Timer),
	}

	if cfg.UUIDGenerator != nil {
		s.uuidGen = cfg.UUIDGenerator
	} else {
		s.uuidGen = uuid.NewGoogleGenerator()
	}

	if cfg.Defaults != nil {
		s.defaults = *cfg.Defaults
	}

	if s.spinDuration == 0 {
		s.spinDuration = DefaultSpinDuration
	}

	return s
}

// Roll parses the given input (delimited text or a prebuilt bound list),
// discards all current dice, and rolls one die per bound. Returns the
// outcomes in input order.
func (s *Session) Roll(input any, canZero, rollInfinity bool) ([]*Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return nil, dicerr.Destroyed("cannot roll a destroyed session")
	}

	bounds := dice.ParseRollConfig(input)
	s.clearLocked()

	return s.rollBoundsLocked(bounds, canZero, rollInfinity)
}

// RollSingle rolls one die on top of the existing ones
func (s *Session) RollSingle(max int, canZero, rollInfinity bool) (*Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return nil, dicerr.Destroyed("cannot roll a destroyed session")
	}

	return s.rollOneLocked(max, canZero, rollInfinity)
}

// RollMany rolls one die per bound on top of the existing ones
func (s *Session) RollMany(bounds []int, canZero, rollInfinity bool) ([]*Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return nil, dicerr.Destroyed("cannot roll a destroyed session")
	}

	return s.rollBoundsLocked(bounds, canZero, rollInfinity)
}

// RollNumber rolls a single bounded value without touching session state
func (s *Session) RollNumber(max int, canZero bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return 0, dicerr.Destroyed("cannot roll a destroyed session")
	}

	return s.roller.RollNumber(max, canZero)
}

// ClearDiceArea discards every active die and resets the stacking counter
func (s *Session) ClearDiceArea() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return dicerr.Destroyed("cannot clear a destroyed session")
	}

	s.clearLocked()
	return nil
}

// Outcomes returns the outcomes of the currently active dice in roll order
func (s *Session) Outcomes() []*Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Outcome, len(s.instances))
	for i, inst := range s.instances {
		out[i] = inst.outcome
	}
	return out
}

// CubeCount returns the monotonic stacking counter
func (s *Session) CubeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cubeCount
}

// Destroy irreversibly tears the session down: dice cleared, timers
// stopped, surface released, every skin slot and default nulled. It is
// idempotent; after the first call every mutating method fails with a
// destroyed-session error and getters return zero values.
func (s *Session) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return
	}

	s.clearLocked()
	s.surface = nil
	s.skins.Clear()
	s.defaults = skin.Defaults{}
	s.destroyed = true
}

// IsDestroyed reports whether Destroy has been called
func (s *Session) IsDestroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}

// rollBoundsLocked rolls one die per bound; mu must be held
func (s *Session) rollBoundsLocked(bounds []int, canZero, rollInfinity bool) ([]*Outcome, error) {
	outcomes := make([]*Outcome, 0, len(bounds))
	for _, max := range bounds {
		outcome, err := s.rollOneLocked(max, canZero, rollInfinity)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// rollOneLocked computes a single die outcome and, when a surface is
// attached, delegates rendering and schedules the stop-spin signal; mu
// must be held
func (s *Session) rollOneLocked(max int, canZero, rollInfinity bool) (*Outcome, error) {
	result, err := s.roller.RollNumber(max, canZero)
	if err != nil {
		return nil, dicerr.Wrap(err, "failed to roll front face").
			WithMeta("max", max)
	}

	sequence, err := dice.AssignFaces(s.roller, result, max, canZero)
	if err != nil {
		return nil, dicerr.Wrap(err, "failed to assign face sequence").
			WithMeta("max", max)
	}

	outcome := &Outcome{
		Result:   result,
		Sequence: sequence,
	}

	inst := &dieInstance{
		id:      s.uuidGen.New(),
		outcome: outcome,
	}

	if s.surface != nil {
		s.cubeCount++
		handle, err := s.surface.AttachFace(surface.Face{
			Result:     result,
			Sequence:   sequence,
			Skin:       s.skins.Resolve(s.defaults),
			StackOrder: s.cubeCount,
			Spinning:   true,
		})
		if err != nil {
			return nil, dicerr.Wrap(err, "failed to attach die face")
		}

		inst.handle = handle
		if !rollInfinity {
			s.scheduleStopSpinLocked(inst)
		}
	}

	s.instances = append(s.instances, inst)
	return outcome, nil
}

// scheduleStopSpinLocked arms the fire-and-forget settle signal for one
// die; mu must be held
func (s *Session) scheduleStopSpinLocked(inst *dieInstance) {
	s.timers[inst.id] = time.AfterFunc(s.spinDuration, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		// A cleared or destroyed session already dropped the timer;
		// firing late must be a no-op
		if s.destroyed || s.surface == nil {
			return
		}
		if _, armed := s.timers[inst.id]; !armed {
			return
		}

		delete(s.timers, inst.id)
		s.surface.StopSpin(inst.handle)
	})
}

// clearLocked discards every die instance, cancels pending timers and
// resets the stacking counter; mu must be held
func (s *Session) clearLocked() {
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}

	s.instances = nil
	s.cubeCount = 0

	if s.surface != nil {
		s.surface.RemoveAll()
	}
}
