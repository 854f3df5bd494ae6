package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/claude/ironlog/internal/models"
)

func testCatalog() []models.Exercise {
	return []models.Exercise{
		{
			ID:               "ex_squat",
			Name:             "Squat",
			PrimaryMuscle:    "Quads",
			SecondaryMuscles: []string{"Glutes", "Hamstrings"},
			Equipment:        "Barbell",
			Difficulty:       "Intermediate",
			Category:         "Compound",
			Instructions:     []string{"Bar on upper back", "Sit down between your heels"},
		},
		{
			ID:            "ex_bench_press",
			Name:          "Bench Press",
			PrimaryMuscle: "Chest",
			Equipment:     "Barbell",
			Difficulty:    "Intermediate",
			Category:      "Compound",
		},
		{
			ID:            "ex_overhead_press",
			Name:          "Overhead Press",
			PrimaryMuscle: "Shoulders",
			Equipment:     "Barbell",
			Difficulty:    "Intermediate",
			Category:      "Compound",
		},
		{
			ID:               "ex_romanian_deadlift",
			Name:             "Romanian Deadlift",
			PrimaryMuscle:    "Hamstrings",
			SecondaryMuscles: []string{"Glutes", "Lower Back"},
			Equipment:        "Barbell",
			Difficulty:       "Intermediate",
			Category:         "Compound",
		},
	}
}

// TestSeedAndQueryExercises verifies seeding, name ordering, and that
// list-valued fields survive the JSON round trip.
func TestSeedAndQueryExercises(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.SeedExercises(ctx, testCatalog()))

	all, err := db.AllExercises(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, "Bench Press", all[0].Name)
	require.Equal(t, "Overhead Press", all[1].Name)
	require.Equal(t, "Romanian Deadlift", all[2].Name)
	require.Equal(t, "Squat", all[3].Name)

	squat, err := db.ExerciseByID(ctx, "ex_squat")
	require.NoError(t, err)
	require.Equal(t, []string{"Glutes", "Hamstrings"}, squat.SecondaryMuscles)
	require.Equal(t, []string{"Bar on upper back", "Sit down between your heels"}, squat.Instructions)
	require.False(t, squat.IsCustom)

	// Reseeding replaces in place without duplicating.
	require.NoError(t, db.SeedExercises(ctx, testCatalog()))
	all, err = db.AllExercises(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)

	_, err = db.ExerciseByID(ctx, "ex_missing")
	require.Error(t, err)
}

// TestCreateCustomExercise verifies custom creation assigns an id, marks the
// row custom, and falls back to a default name.
func TestCreateCustomExercise(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	id, err := db.CreateCustomExercise(ctx, models.Exercise{
		Name:          "Cable Fly",
		PrimaryMuscle: "Chest",
		Equipment:     "Cable",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	ex, err := db.ExerciseByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Cable Fly", ex.Name)
	require.True(t, ex.IsCustom)

	// Nameless input gets the placeholder name.
	id2, err := db.CreateCustomExercise(ctx, models.Exercise{PrimaryMuscle: "Back"})
	require.NoError(t, err)
	ex2, err := db.ExerciseByID(ctx, id2)
	require.NoError(t, err)
	require.Equal(t, "Custom Exercise", ex2.Name)
}

// TestExercisesByMuscle verifies the filter matches the primary muscle and
// any secondary muscle.
func TestExercisesByMuscle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.SeedExercises(ctx, testCatalog()))

	// Primary match only.
	quads, err := db.ExercisesByMuscle(ctx, "Quads")
	require.NoError(t, err)
	require.Len(t, quads, 1)
	require.Equal(t, "ex_squat", quads[0].ID)

	// Primary on one exercise, secondary on another.
	hams, err := db.ExercisesByMuscle(ctx, "Hamstrings")
	require.NoError(t, err)
	require.Len(t, hams, 2)
	require.Equal(t, "Romanian Deadlift", hams[0].Name)
	require.Equal(t, "Squat", hams[1].Name)

	none, err := db.ExercisesByMuscle(ctx, "Neck")
	require.NoError(t, err)
	require.Empty(t, none)
}
