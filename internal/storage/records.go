package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/claude/ironlog/internal/models"
)

// InsertPersonalRecord stores a new personal record row.
func (db *DB) InsertPersonalRecord(ctx context.Context, pr models.PersonalRecordRow) error {
	if err := db.ready(); err != nil {
		return err
	}

	_, err := db.sql.ExecContext(ctx,
		`INSERT INTO personal_records (id, exercise_id, weight, reps, achieved_at, workout_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		pr.ID, pr.ExerciseID, pr.Weight, pr.Reps, pr.AchievedAt, pr.WorkoutID)
	if err != nil {
		return fmt.Errorf("inserting personal record: %w", err)
	}
	return nil
}

// PersonalRecords lists records, newest first. An empty exerciseID returns
// the most recent records across all exercises.
func (db *DB) PersonalRecords(ctx context.Context, exerciseID string, limit int) ([]models.PersonalRecordRow, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, exercise_id, weight, reps, achieved_at, workout_id
		 FROM personal_records`
	args := []any{}
	if exerciseID != "" {
		query += ` WHERE exercise_id = ?`
		args = append(args, exerciseID)
	}
	query += ` ORDER BY achieved_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := db.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying personal records: %w", err)
	}
	defer rows.Close()

	var result []models.PersonalRecordRow
	for rows.Next() {
		var pr models.PersonalRecordRow
		if err := rows.Scan(&pr.ID, &pr.ExerciseID, &pr.Weight, &pr.Reps,
			&pr.AchievedAt, &pr.WorkoutID); err != nil {
			return nil, fmt.Errorf("scanning personal record: %w", err)
		}
		result = append(result, pr)
	}
	return result, rows.Err()
}

// BestForExercise returns the heaviest recorded set for an exercise (ties
// broken by reps), or nil when no record exists yet.
func (db *DB) BestForExercise(ctx context.Context, exerciseID string) (*models.PersonalRecordRow, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}

	row := db.sql.QueryRowContext(ctx,
		`SELECT id, exercise_id, weight, reps, achieved_at, workout_id
		 FROM personal_records
		 WHERE exercise_id = ?
		 ORDER BY weight DESC, reps DESC
		 LIMIT 1`, exerciseID)

	var pr models.PersonalRecordRow
	err := row.Scan(&pr.ID, &pr.ExerciseID, &pr.Weight, &pr.Reps, &pr.AchievedAt, &pr.WorkoutID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying best for %s: %w", exerciseID, err)
	}
	return &pr, nil
}
