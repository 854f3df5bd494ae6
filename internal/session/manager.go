package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/claude/ironlog/internal/models"
)

// DefaultName is used when a session is started without a display name.
const DefaultName = "Quick Workout"

// Manager owns the single active-session slot and the rest timer. All
// mutations are silent no-ops when no session is active, so UI code can
// call in without pre-checking state; StartSession always succeeds and
// discards any prior uncommitted session (last start wins).
type Manager struct {
	mu     sync.Mutex
	active *ActiveSession
	timer  RestTimer

	defaultRestSec  int
	defaultSetCount int
	notify          Notifier
	now             func() time.Time
}

// NewManager creates a Manager with the given per-exercise defaults.
// A nil notifier disables side-effect triggers.
func NewManager(defaultRestSec, defaultSetCount int, notify Notifier) *Manager {
	if defaultRestSec <= 0 {
		defaultRestSec = 90
	}
	if defaultSetCount <= 0 {
		defaultSetCount = 3
	}
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Manager{
		defaultRestSec:  defaultRestSec,
		defaultSetCount: defaultSetCount,
		notify:          notify,
		now:             time.Now,
	}
}

// StartSession creates a fresh session, replacing any existing one.
// Returns the new session id.
func (m *Manager) StartSession(name, templateID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if name == "" {
		name = DefaultName
	}
	s := &ActiveSession{
		ID:        uuid.NewString(),
		Name:      name,
		StartedAt: m.now(),
	}
	if templateID != "" {
		s.TemplateID = &templateID
	}
	m.active = s
	return s.ID
}

// EndSession detaches and returns the current session, clearing the slot.
// Returns nil when nothing is active. The caller owns the returned value;
// on commit failure it can be handed back via Restore.
func (m *Manager) EndSession() *ActiveSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.active
	m.active = nil
	return s
}

// CancelSession discards the current session without returning it.
func (m *Manager) CancelSession() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = nil
}

// Restore puts a previously detached session back into the slot, unless a
// newer session was started in the meantime.
func (m *Manager) Restore(s *ActiveSession) {
	if s == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		m.active = s
	}
}

// Active returns a deep-copy snapshot of the current session, or nil.
func (m *Manager) Active() *ActiveSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active.clone()
}

// HasActive reports whether a session is in progress.
func (m *Manager) HasActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active != nil
}

// AddExercise appends an exercise at the next order index with setCount
// empty sets numbered 1..N. A setCount <= 0 uses the configured default.
func (m *Manager) AddExercise(ex models.Exercise, setCount int) {
	m.addExercise(ex, setCount, m.defaultRestSec, nil)
}

func (m *Manager) addExercise(ex models.Exercise, setCount, restSec int, notes *string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return
	}
	if setCount <= 0 {
		setCount = m.defaultSetCount
	}
	if restSec <= 0 {
		restSec = m.defaultRestSec
	}

	e := Exercise{
		ID:           uuid.NewString(),
		ExerciseID:   ex.ID,
		ExerciseName: ex.Name,
		OrderIndex:   len(m.active.Exercises),
		RestSeconds:  restSec,
		Notes:        notes,
		Sets:         make([]Set, 0, setCount),
	}
	for i := 0; i < setCount; i++ {
		e.Sets = append(e.Sets, Set{
			ID:        uuid.NewString(),
			SetNumber: i + 1,
		})
	}
	m.active.Exercises = append(m.active.Exercises, e)
}

// ApplyTemplate seeds the session with the template's exercises, resolving
// catalog ids through lookup. Unknown exercise ids are skipped.
func (m *Manager) ApplyTemplate(tpl models.Template, lookup func(id string) (models.Exercise, bool)) {
	for _, te := range tpl.Exercises {
		ex, ok := lookup(te.ExerciseID)
		if !ok {
			continue
		}
		m.addExercise(ex, te.Sets, te.RestSeconds, te.Notes)
	}
}

// RemoveExercise removes the exercise with the given session-scoped id,
// renumbers the remainder densely, and clears the superset link on any
// partner the removed exercise was paired with.
func (m *Manager) RemoveExercise(exerciseSessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return
	}

	kept := m.active.Exercises[:0]
	for _, e := range m.active.Exercises {
		if e.ID == exerciseSessionID {
			continue
		}
		// Partner of the removed exercise loses its pairing.
		if e.SupersetWith != nil && *e.SupersetWith == exerciseSessionID {
			e.SupersetWith = nil
		}
		kept = append(kept, e)
	}
	for i := range kept {
		kept[i].OrderIndex = i
	}
	m.active.Exercises = kept
}

// ReorderExercises moves the exercise at fromIndex to toIndex and renumbers.
// Out-of-range indices are ignored.
func (m *Manager) ReorderExercises(fromIndex, toIndex int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return
	}
	n := len(m.active.Exercises)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n || fromIndex == toIndex {
		return
	}

	exs := m.active.Exercises
	moved := exs[fromIndex]
	exs = append(exs[:fromIndex], exs[fromIndex+1:]...)
	exs = append(exs[:toIndex], append([]Exercise{moved}, exs[toIndex:]...)...)
	for i := range exs {
		exs[i].OrderIndex = i
	}
	m.active.Exercises = exs
}

// SetSuperset pairs two exercises symmetrically. Any existing pairing on
// either side is dissolved first, so a re-pair never leaves a former
// partner holding a one-way link.
func (m *Manager) SetSuperset(idA, idB string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil || idA == idB {
		return
	}
	a, b := m.findExercise(idA), m.findExercise(idB)
	if a == nil || b == nil {
		return
	}
	m.clearSuperset(a)
	m.clearSuperset(b)
	aID, bID := a.ID, b.ID
	a.SupersetWith = &bID
	b.SupersetWith = &aID
}

// RemoveSuperset clears the pairing on the given exercise and on its
// partner, whichever side the caller names.
func (m *Manager) RemoveSuperset(exerciseSessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.findExercise(exerciseSessionID)
	if e == nil {
		return
	}
	m.clearSuperset(e)
}

// clearSuperset unlinks an exercise from its partner, both directions.
// Callers must hold m.mu.
func (m *Manager) clearSuperset(e *Exercise) {
	if e.SupersetWith == nil {
		return
	}
	if partner := m.findExercise(*e.SupersetWith); partner != nil {
		partner.SupersetWith = nil
	}
	e.SupersetWith = nil
}

// AddSet appends a set numbered count+1. With copyPrevious the new set
// seeds weight/reps from the last existing set; it is never completed.
func (m *Manager) AddSet(exerciseSessionID string, copyPrevious bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return
	}
	e := m.findExercise(exerciseSessionID)
	if e == nil {
		return
	}

	s := Set{
		ID:        uuid.NewString(),
		SetNumber: len(e.Sets) + 1,
	}
	if copyPrevious && len(e.Sets) > 0 {
		last := e.Sets[len(e.Sets)-1]
		if last.Weight != nil {
			w := *last.Weight
			s.Weight = &w
		}
		if last.Reps != nil {
			r := *last.Reps
			s.Reps = &r
		}
	}
	e.Sets = append(e.Sets, s)
}

// RemoveSet removes a set and renumbers the exercise's remaining sets 1..N.
func (m *Manager) RemoveSet(exerciseSessionID, setID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return
	}
	e := m.findExercise(exerciseSessionID)
	if e == nil {
		return
	}

	kept := e.Sets[:0]
	for _, s := range e.Sets {
		if s.ID != setID {
			kept = append(kept, s)
		}
	}
	for i := range kept {
		kept[i].SetNumber = i + 1
	}
	e.Sets = kept
}

// SetUpdate carries partial set fields; nil pointers leave the field
// untouched. Completion state is not updatable here — see CompleteSet.
type SetUpdate struct {
	Weight    *float64 `json:"weight,omitempty"`
	Reps      *int     `json:"reps,omitempty"`
	RPE       *int     `json:"rpe,omitempty"`
	IsWarmup  *bool    `json:"isWarmup,omitempty"`
	IsDropSet *bool    `json:"isDropSet,omitempty"`
}

// UpdateSet merges the provided fields into the target set.
func (m *Manager) UpdateSet(exerciseSessionID, setID string, upd SetUpdate) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.findSet(exerciseSessionID, setID)
	if s == nil {
		return
	}
	if upd.Weight != nil {
		w := *upd.Weight
		s.Weight = &w
	}
	if upd.Reps != nil {
		r := *upd.Reps
		s.Reps = &r
	}
	if upd.RPE != nil {
		r := *upd.RPE
		s.RPE = &r
	}
	if upd.IsWarmup != nil {
		s.IsWarmup = *upd.IsWarmup
	}
	if upd.IsDropSet != nil {
		s.IsDropSet = *upd.IsDropSet
	}
}

// CompleteSet toggles a set's completion. Transitioning to completed stamps
// the timestamp and fires the set-completed trigger; toggling back clears
// the timestamp.
func (m *Manager) CompleteSet(exerciseSessionID, setID string) {
	m.mu.Lock()
	completed := false
	if s := m.findSet(exerciseSessionID, setID); s != nil {
		if s.CompletedAt == nil {
			t := m.now()
			s.CompletedAt = &t
			completed = true
		} else {
			s.CompletedAt = nil
		}
	}
	m.mu.Unlock()

	if completed {
		m.notify.SetCompleted()
	}
}

// SetExerciseNotes replaces the notes on an exercise.
func (m *Manager) SetExerciseNotes(exerciseSessionID, notes string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.findExercise(exerciseSessionID)
	if e == nil {
		return
	}
	if notes == "" {
		e.Notes = nil
		return
	}
	e.Notes = &notes
}

// TotalVolume sums weight*reps over completed sets; sets with a missing
// factor contribute 0.
func (m *Manager) TotalVolume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return 0
	}
	var total float64
	for _, e := range m.active.Exercises {
		for i := range e.Sets {
			total += e.Sets[i].Volume()
		}
	}
	return total
}

// CompletedSetCount counts completed sets across all exercises.
func (m *Manager) CompletedSetCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return 0
	}
	count := 0
	for _, e := range m.active.Exercises {
		for i := range e.Sets {
			if e.Sets[i].Completed() {
				count++
			}
		}
	}
	return count
}

// ElapsedSeconds returns the wall-clock seconds since the session started,
// 0 when nothing is active.
func (m *Manager) ElapsedSeconds() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return 0
	}
	return int(m.now().Sub(m.active.StartedAt) / time.Second)
}

// findExercise returns a pointer into the active exercise slice, nil when
// nothing is active. Callers must hold m.mu.
func (m *Manager) findExercise(id string) *Exercise {
	if m.active == nil {
		return nil
	}
	for i := range m.active.Exercises {
		if m.active.Exercises[i].ID == id {
			return &m.active.Exercises[i]
		}
	}
	return nil
}

// findSet returns a pointer into an exercise's set slice.
// Callers must hold m.mu.
func (m *Manager) findSet(exerciseID, setID string) *Set {
	e := m.findExercise(exerciseID)
	if e == nil {
		return nil
	}
	for i := range e.Sets {
		if e.Sets[i].ID == setID {
			return &e.Sets[i]
		}
	}
	return nil
}
