package storage

import (
	"context"
	"fmt"

	"github.com/claude/ironlog/internal/models"
)

const workoutColumns = `id, program_id, name, started_at, completed_at,
	duration_sec, notes, total_volume, total_sets, rating`

// CommittedWorkout is the full set of rows produced by one session commit.
type CommittedWorkout struct {
	Workout   models.WorkoutRow
	Exercises []CommittedExercise
	Records   []models.PersonalRecordRow
}

// CommittedExercise pairs a workout exercise row with its set rows.
type CommittedExercise struct {
	Row  models.WorkoutExerciseRow
	Sets []models.WorkoutSetRow
}

// CommitWorkout writes a committed session in one transaction: the workout
// header (upsert by id, so a retry after failure is safe), its exercises in
// order-index order, their completed sets, and any personal records. Either
// everything lands or nothing does.
func (db *DB) CommitWorkout(ctx context.Context, cw CommittedWorkout) error {
	if err := db.ready(); err != nil {
		return err
	}

	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning commit transaction: %w", err)
	}
	defer tx.Rollback()

	w := cw.Workout
	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO workouts
		 (id, program_id, name, started_at, completed_at, duration_sec, notes, total_volume, total_sets, rating)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.ProgramID, w.Name, w.StartedAt, w.CompletedAt,
		w.DurationSec, w.Notes, w.TotalVolume, w.TotalSets, w.Rating)
	if err != nil {
		return fmt.Errorf("inserting workout %s: %w", w.ID, err)
	}

	for _, ce := range cw.Exercises {
		e := ce.Row
		_, err = tx.ExecContext(ctx,
			`INSERT INTO workout_exercises (id, workout_id, exercise_id, order_index, notes)
			 VALUES (?, ?, ?, ?, ?)`,
			e.ID, e.WorkoutID, e.ExerciseID, e.OrderIndex, e.Notes)
		if err != nil {
			return fmt.Errorf("inserting workout exercise %s: %w", e.ID, err)
		}

		for _, s := range ce.Sets {
			completed := 0
			if s.Completed {
				completed = 1
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO workout_sets (id, workout_exercise_id, set_number, weight, reps, completed, completed_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				s.ID, s.WorkoutExerciseID, s.SetNumber, s.Weight, s.Reps, completed, s.CompletedAt)
			if err != nil {
				return fmt.Errorf("inserting workout set %s: %w", s.ID, err)
			}
		}
	}

	for _, pr := range cw.Records {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO personal_records (id, exercise_id, weight, reps, achieved_at, workout_id)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			pr.ID, pr.ExerciseID, pr.Weight, pr.Reps, pr.AchievedAt, pr.WorkoutID)
		if err != nil {
			return fmt.Errorf("inserting personal record %s: %w", pr.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing workout %s: %w", w.ID, err)
	}
	return nil
}

// RecentWorkouts returns completed workouts, newest first.
func (db *DB) RecentWorkouts(ctx context.Context, limit int) ([]models.WorkoutRow, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.sql.QueryContext(ctx,
		`SELECT `+workoutColumns+` FROM workouts
		 WHERE completed_at IS NOT NULL
		 ORDER BY started_at DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutRow
	for rows.Next() {
		var w models.WorkoutRow
		if err := rows.Scan(&w.ID, &w.ProgramID, &w.Name, &w.StartedAt, &w.CompletedAt,
			&w.DurationSec, &w.Notes, &w.TotalVolume, &w.TotalSets, &w.Rating); err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		result = append(result, w)
	}
	return result, rows.Err()
}

// WorkoutDetail returns a workout with its exercises and persisted sets,
// in stored order.
func (db *DB) WorkoutDetail(ctx context.Context, workoutID string) (*models.WorkoutDetail, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}

	row := db.sql.QueryRowContext(ctx,
		`SELECT `+workoutColumns+` FROM workouts WHERE id = ?`, workoutID)

	var w models.WorkoutRow
	if err := row.Scan(&w.ID, &w.ProgramID, &w.Name, &w.StartedAt, &w.CompletedAt,
		&w.DurationSec, &w.Notes, &w.TotalVolume, &w.TotalSets, &w.Rating); err != nil {
		return nil, fmt.Errorf("querying workout %s: %w", workoutID, err)
	}

	detail := &models.WorkoutDetail{WorkoutRow: w}

	exRows, err := db.sql.QueryContext(ctx,
		`SELECT id, workout_id, exercise_id, order_index, notes
		 FROM workout_exercises
		 WHERE workout_id = ?
		 ORDER BY order_index ASC`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("querying workout exercises: %w", err)
	}
	defer exRows.Close()

	for exRows.Next() {
		var e models.WorkoutExerciseRow
		if err := exRows.Scan(&e.ID, &e.WorkoutID, &e.ExerciseID, &e.OrderIndex, &e.Notes); err != nil {
			return nil, fmt.Errorf("scanning workout exercise: %w", err)
		}
		detail.Exercises = append(detail.Exercises, models.WorkoutExerciseDetail{WorkoutExerciseRow: e})
	}
	if err := exRows.Err(); err != nil {
		return nil, err
	}

	for i := range detail.Exercises {
		setRows, err := db.sql.QueryContext(ctx,
			`SELECT id, workout_exercise_id, set_number, weight, reps, completed, completed_at
			 FROM workout_sets
			 WHERE workout_exercise_id = ?
			 ORDER BY set_number ASC`, detail.Exercises[i].ID)
		if err != nil {
			return nil, fmt.Errorf("querying workout sets: %w", err)
		}

		for setRows.Next() {
			var (
				s         models.WorkoutSetRow
				completed int
			)
			if err := setRows.Scan(&s.ID, &s.WorkoutExerciseID, &s.SetNumber,
				&s.Weight, &s.Reps, &completed, &s.CompletedAt); err != nil {
				setRows.Close()
				return nil, fmt.Errorf("scanning workout set: %w", err)
			}
			s.Completed = completed != 0
			detail.Exercises[i].Sets = append(detail.Exercises[i].Sets, s)
		}
		if err := setRows.Err(); err != nil {
			setRows.Close()
			return nil, err
		}
		setRows.Close()
	}

	return detail, nil
}
