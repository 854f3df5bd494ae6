package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/claude/ironlog/internal/models"
)

// TestProperty_DenseOrderingInvariant drives the manager with a random
// sequence of structural mutations and checks the ordering invariants after
// every step: exercise OrderIndex equals slice position, set numbers run
// 1..N, and superset links always point at a live partner symmetrically.
func TestProperty_DenseOrderingInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := NewManager(90, 3, nil)
		m.StartSession("", "")

		ops := rapid.IntRange(1, 60).Draw(rt, "ops")
		for i := 0; i < ops; i++ {
			s := m.Active()
			n := len(s.Exercises)

			switch rapid.IntRange(0, 6).Draw(rt, fmt.Sprintf("op%d", i)) {
			case 0:
				ex := models.Exercise{
					ID:   fmt.Sprintf("ex_%d", i),
					Name: fmt.Sprintf("Exercise %d", i),
				}
				m.AddExercise(ex, rapid.IntRange(0, 5).Draw(rt, "setCount"))
			case 1:
				if n > 0 {
					idx := rapid.IntRange(0, n-1).Draw(rt, "removeIdx")
					m.RemoveExercise(s.Exercises[idx].ID)
				}
			case 2:
				if n > 1 {
					from := rapid.IntRange(0, n-1).Draw(rt, "from")
					to := rapid.IntRange(0, n-1).Draw(rt, "to")
					m.ReorderExercises(from, to)
				}
			case 3:
				if n > 0 {
					idx := rapid.IntRange(0, n-1).Draw(rt, "addSetIdx")
					m.AddSet(s.Exercises[idx].ID, rapid.Bool().Draw(rt, "copy"))
				}
			case 4:
				if n > 0 {
					idx := rapid.IntRange(0, n-1).Draw(rt, "rmSetIdx")
					ex := s.Exercises[idx]
					if len(ex.Sets) > 0 {
						sidx := rapid.IntRange(0, len(ex.Sets)-1).Draw(rt, "sidx")
						m.RemoveSet(ex.ID, ex.Sets[sidx].ID)
					}
				}
			case 5:
				if n > 1 {
					a := rapid.IntRange(0, n-1).Draw(rt, "ssA")
					b := rapid.IntRange(0, n-1).Draw(rt, "ssB")
					m.SetSuperset(s.Exercises[a].ID, s.Exercises[b].ID)
				}
			case 6:
				if n > 0 {
					idx := rapid.IntRange(0, n-1).Draw(rt, "unssIdx")
					m.RemoveSuperset(s.Exercises[idx].ID)
				}
			}

			checkOrderingInvariants(rt, m.Active())
		}
	})
}

func checkOrderingInvariants(rt *rapid.T, s *ActiveSession) {
	byID := make(map[string]*Exercise, len(s.Exercises))
	for i := range s.Exercises {
		byID[s.Exercises[i].ID] = &s.Exercises[i]
	}

	for i := range s.Exercises {
		e := &s.Exercises[i]
		require.Equal(rt, i, e.OrderIndex, "exercise order index must match position")

		for j := range e.Sets {
			require.Equal(rt, j+1, e.Sets[j].SetNumber, "set numbers must run 1..N")
		}

		if e.SupersetWith != nil {
			partner, ok := byID[*e.SupersetWith]
			require.True(rt, ok, "superset link must point at a live exercise")
			require.NotNil(rt, partner.SupersetWith, "superset link must be symmetric")
			require.Equal(rt, e.ID, *partner.SupersetWith, "superset link must be symmetric")
		}
	}
}
