// Package session holds the in-memory state of the workout currently being
// performed. Nothing in this package touches durable storage; a session
// becomes durable only when the committer translates it into workout rows.
package session

import "time"

// ActiveSession is the mutable in-progress workout. At most one exists at a
// time; the Manager owns the single slot.
type ActiveSession struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	TemplateID *string    `json:"templateId,omitempty"`
	StartedAt  time.Time  `json:"startedAt"`
	Exercises  []Exercise `json:"exercises"`
}

// Exercise is one exercise inside an active session. OrderIndex is dense and
// zero-based; every structural mutation renumbers to keep it equal to the
// slice position.
type Exercise struct {
	ID           string  `json:"id"`
	ExerciseID   string  `json:"exerciseId"`
	ExerciseName string  `json:"exerciseName"`
	OrderIndex   int     `json:"orderIndex"`
	Sets         []Set   `json:"sets"`
	RestSeconds  int     `json:"restSeconds"`
	Notes        *string `json:"notes,omitempty"`
	SupersetWith *string `json:"supersetWith,omitempty"`
}

// Set is one set of an exercise. SetNumber is dense and 1-based within the
// owning exercise. CompletedAt doubles as the completion flag: a set is
// completed exactly when the timestamp is present.
type Set struct {
	ID          string     `json:"id"`
	SetNumber   int        `json:"setNumber"`
	Weight      *float64   `json:"weight,omitempty"`
	Reps        *int       `json:"reps,omitempty"`
	RPE         *int       `json:"rpe,omitempty"`
	IsWarmup    bool       `json:"isWarmup,omitempty"`
	IsDropSet   bool       `json:"isDropSet,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Completed reports whether the set has been marked done.
func (s *Set) Completed() bool {
	return s.CompletedAt != nil
}

// Volume is weight*reps for a completed set, 0 when either factor is
// missing or the set is not completed.
func (s *Set) Volume() float64 {
	if s.CompletedAt == nil || s.Weight == nil || s.Reps == nil {
		return 0
	}
	return *s.Weight * float64(*s.Reps)
}

// clone returns a deep copy so callers can hold a snapshot without racing
// with later mutations.
func (w *ActiveSession) clone() *ActiveSession {
	if w == nil {
		return nil
	}
	out := *w
	out.Exercises = make([]Exercise, len(w.Exercises))
	for i, e := range w.Exercises {
		ec := e
		ec.Sets = make([]Set, len(e.Sets))
		copy(ec.Sets, e.Sets)
		if e.Notes != nil {
			n := *e.Notes
			ec.Notes = &n
		}
		if e.SupersetWith != nil {
			s := *e.SupersetWith
			ec.SupersetWith = &s
		}
		out.Exercises[i] = ec
	}
	if w.TemplateID != nil {
		t := *w.TemplateID
		out.TemplateID = &t
	}
	return &out
}
