package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/claude/ironlog/internal/models"
)

// TestCommitWorkoutRoundTrip verifies the full shape of a committed workout
// survives: header, exercise ordering, and only the persisted set rows.
func TestCommitWorkoutRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.SeedExercises(ctx, testCatalog()))

	startedAt := time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC)
	completedAt := startedAt.Add(40 * time.Minute)
	durationSec := 2400
	w1, r1 := 100.0, 5
	w2, r2 := 105.0, 3
	notes := "felt strong"

	cw := CommittedWorkout{
		Workout: models.WorkoutRow{
			ID:          "w1",
			Name:        "Push Day",
			StartedAt:   startedAt,
			CompletedAt: &completedAt,
			DurationSec: &durationSec,
			TotalVolume: 815,
			TotalSets:   2,
		},
		Exercises: []CommittedExercise{
			{
				Row: models.WorkoutExerciseRow{
					ID: "we1", WorkoutID: "w1", ExerciseID: "ex_bench_press",
					OrderIndex: 0, Notes: &notes,
				},
				Sets: []models.WorkoutSetRow{
					{ID: "s1", WorkoutExerciseID: "we1", SetNumber: 1, Weight: &w1, Reps: &r1, Completed: true, CompletedAt: &completedAt},
					{ID: "s2", WorkoutExerciseID: "we1", SetNumber: 2, Weight: &w2, Reps: &r2, Completed: true, CompletedAt: &completedAt},
				},
			},
			{
				Row: models.WorkoutExerciseRow{
					ID: "we2", WorkoutID: "w1", ExerciseID: "ex_overhead_press",
					OrderIndex: 1,
				},
			},
		},
		Records: []models.PersonalRecordRow{
			{ID: "pr1", ExerciseID: "ex_bench_press", Weight: 105, Reps: 3, AchievedAt: completedAt, WorkoutID: "w1"},
		},
	}
	require.NoError(t, db.CommitWorkout(ctx, cw))

	detail, err := db.WorkoutDetail(ctx, "w1")
	require.NoError(t, err)
	require.Equal(t, "Push Day", detail.Name)
	require.Equal(t, 815.0, detail.TotalVolume)
	require.Equal(t, 2, detail.TotalSets)
	require.NotNil(t, detail.DurationSec)
	require.Equal(t, 2400, *detail.DurationSec)

	require.Len(t, detail.Exercises, 2)
	require.Equal(t, "ex_bench_press", detail.Exercises[0].ExerciseID)
	require.Equal(t, "ex_overhead_press", detail.Exercises[1].ExerciseID)
	require.NotNil(t, detail.Exercises[0].Notes)
	require.Equal(t, "felt strong", *detail.Exercises[0].Notes)

	sets := detail.Exercises[0].Sets
	require.Len(t, sets, 2)
	require.Equal(t, 1, sets[0].SetNumber)
	require.Equal(t, 2, sets[1].SetNumber)
	require.True(t, sets[0].Completed)
	require.NotNil(t, sets[1].Weight)
	require.Equal(t, 105.0, *sets[1].Weight)
	require.Empty(t, detail.Exercises[1].Sets)

	records, err := db.PersonalRecords(ctx, "ex_bench_press", 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "w1", records[0].WorkoutID)
}

// TestCommitWorkoutAtomic verifies that a failing row aborts the whole
// transaction, leaving no partial workout behind.
func TestCommitWorkoutAtomic(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.SeedExercises(ctx, testCatalog()))

	startedAt := time.Now()
	completedAt := startedAt.Add(time.Minute)

	cw := CommittedWorkout{
		Workout: models.WorkoutRow{
			ID: "w-bad", Name: "Broken", StartedAt: startedAt, CompletedAt: &completedAt,
		},
		Exercises: []CommittedExercise{
			{Row: models.WorkoutExerciseRow{ID: "dup", WorkoutID: "w-bad", ExerciseID: "ex_squat", OrderIndex: 0}},
			// Duplicate primary key forces the insert to fail mid-transaction.
			{Row: models.WorkoutExerciseRow{ID: "dup", WorkoutID: "w-bad", ExerciseID: "ex_squat", OrderIndex: 1}},
		},
	}
	require.Error(t, db.CommitWorkout(ctx, cw))

	_, err := db.WorkoutDetail(ctx, "w-bad")
	require.Error(t, err, "header must not survive a failed commit")

	recent, err := db.RecentWorkouts(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, recent)
}

// TestRecentWorkouts verifies ordering, the default limit, and that
// workouts without a completion timestamp are excluded.
func TestRecentWorkouts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	base := time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		commitWorkout(t, db, string(rune('a'+i)), base.AddDate(0, 0, i), 100, 1)
	}

	// An in-progress workout row (no completed_at) must never appear.
	require.NoError(t, db.CommitWorkout(ctx, CommittedWorkout{
		Workout: models.WorkoutRow{ID: "open", Name: "In Progress", StartedAt: base.AddDate(0, 0, 30)},
	}))

	recent, err := db.RecentWorkouts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 10, "default limit")
	require.Equal(t, "l", recent[0].ID, "newest first")
	require.Equal(t, "c", recent[9].ID)

	three, err := db.RecentWorkouts(ctx, 3)
	require.NoError(t, err)
	require.Len(t, three, 3)
}

// TestCommitWorkoutRetry verifies the header upsert makes a re-commit of the
// same session id safe for the header row.
func TestCommitWorkoutRetry(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	startedAt := time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC)
	completedAt := startedAt.Add(time.Hour)

	first := CommittedWorkout{Workout: models.WorkoutRow{
		ID: "w1", Name: "First Try", StartedAt: startedAt, CompletedAt: &completedAt, TotalVolume: 100,
	}}
	require.NoError(t, db.CommitWorkout(ctx, first))

	second := first
	second.Workout.Name = "Second Try"
	second.Workout.TotalVolume = 200
	require.NoError(t, db.CommitWorkout(ctx, second))

	detail, err := db.WorkoutDetail(ctx, "w1")
	require.NoError(t, err)
	require.Equal(t, "Second Try", detail.Name)
	require.Equal(t, 200.0, detail.TotalVolume)

	recent, err := db.RecentWorkouts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1, "upsert must not duplicate the workout")
}
