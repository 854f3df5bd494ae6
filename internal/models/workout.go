package models

import "time"

// WorkoutRow is a row ready for insertion into the workouts table.
// Only finished sessions produce workout rows; CompletedAt is nil solely
// for rows imported from sources that never recorded completion.
type WorkoutRow struct {
	ID          string     `json:"id"`
	ProgramID   *string    `json:"programId,omitempty"`
	Name        string     `json:"name"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	DurationSec *int       `json:"duration,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	TotalVolume float64    `json:"totalVolume"`
	TotalSets   int        `json:"totalSets"`
	Rating      *int       `json:"rating,omitempty"`
}

// WorkoutExerciseRow is a row ready for insertion into the workout_exercises table.
type WorkoutExerciseRow struct {
	ID         string  `json:"id"`
	WorkoutID  string  `json:"workoutId"`
	ExerciseID string  `json:"exerciseId"`
	OrderIndex int     `json:"orderIndex"`
	Notes      *string `json:"notes,omitempty"`
}

// WorkoutSetRow is a row ready for insertion into the workout_sets table.
// Uncompleted sets are never persisted, so Completed is always true and
// CompletedAt always present on rows written by the committer.
type WorkoutSetRow struct {
	ID                string     `json:"id"`
	WorkoutExerciseID string     `json:"workoutExerciseId"`
	SetNumber         int        `json:"setNumber"`
	Weight            *float64   `json:"weight,omitempty"`
	Reps              *int       `json:"reps,omitempty"`
	Completed         bool       `json:"completed"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
}

// PersonalRecordRow is a row ready for insertion into the personal_records table.
type PersonalRecordRow struct {
	ID         string    `json:"id"`
	ExerciseID string    `json:"exerciseId"`
	Weight     float64   `json:"weight"`
	Reps       int       `json:"reps"`
	AchievedAt time.Time `json:"achievedAt"`
	WorkoutID  string    `json:"workoutId"`
}

// WorkoutStats holds aggregate statistics over all completed workouts.
type WorkoutStats struct {
	TotalWorkouts          int64      `json:"totalWorkouts"`
	TotalVolume            float64    `json:"totalVolume"`
	TotalSets              int64      `json:"totalSets"`
	AverageDurationMinutes int        `json:"averageDurationMinutes"`
	PersonalRecordCount    int64      `json:"personalRecordCount"`
	CurrentStreak          int        `json:"currentStreak"`
	LastWorkoutAt          *time.Time `json:"lastWorkoutAt,omitempty"`
}

// WorkoutDetail is a workout with its exercises and persisted sets.
type WorkoutDetail struct {
	WorkoutRow
	Exercises []WorkoutExerciseDetail `json:"exercises"`
}

// WorkoutExerciseDetail is a workout exercise with its set rows.
type WorkoutExerciseDetail struct {
	WorkoutExerciseRow
	Sets []WorkoutSetRow `json:"sets"`
}
