package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/claude/ironlog/internal/models"
)

const exerciseColumns = `id, name, primary_muscle, secondary_muscles, equipment,
	difficulty, category, instructions, tips, is_custom, created_at`

// SeedExercises inserts or replaces catalog exercises. Custom exercises are
// untouched. Safe to run on every startup.
func (db *DB) SeedExercises(ctx context.Context, exercises []models.Exercise) error {
	if err := db.ready(); err != nil {
		return err
	}

	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, ex := range exercises {
		secondary, err := encodeStringList(ex.SecondaryMuscles)
		if err != nil {
			return fmt.Errorf("encoding secondary muscles for %s: %w", ex.ID, err)
		}
		instructions, err := encodeStringList(ex.Instructions)
		if err != nil {
			return fmt.Errorf("encoding instructions for %s: %w", ex.ID, err)
		}
		tips, err := encodeStringList(ex.Tips)
		if err != nil {
			return fmt.Errorf("encoding tips for %s: %w", ex.ID, err)
		}

		createdAt := ex.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}

		_, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO exercises
			 (id, name, primary_muscle, secondary_muscles, equipment, difficulty, category, instructions, tips, is_custom, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)`,
			ex.ID, ex.Name, ex.PrimaryMuscle, secondary, ex.Equipment,
			ex.Difficulty, ex.Category, instructions, tips, createdAt)
		if err != nil {
			return fmt.Errorf("seeding exercise %s: %w", ex.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}

// CreateCustomExercise inserts a user-defined exercise and returns its id.
func (db *DB) CreateCustomExercise(ctx context.Context, ex models.Exercise) (string, error) {
	if err := db.ready(); err != nil {
		return "", err
	}

	if ex.ID == "" {
		ex.ID = uuid.NewString()
	}
	if ex.Name == "" {
		ex.Name = "Custom Exercise"
	}
	secondary, err := encodeStringList(ex.SecondaryMuscles)
	if err != nil {
		return "", fmt.Errorf("encoding secondary muscles: %w", err)
	}
	instructions, err := encodeStringList(ex.Instructions)
	if err != nil {
		return "", fmt.Errorf("encoding instructions: %w", err)
	}
	tips, err := encodeStringList(ex.Tips)
	if err != nil {
		return "", fmt.Errorf("encoding tips: %w", err)
	}

	_, err = db.sql.ExecContext(ctx,
		`INSERT INTO exercises
		 (id, name, primary_muscle, secondary_muscles, equipment, difficulty, category, instructions, tips, is_custom, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?)`,
		ex.ID, ex.Name, ex.PrimaryMuscle, secondary, ex.Equipment,
		ex.Difficulty, ex.Category, instructions, tips, time.Now())
	if err != nil {
		return "", fmt.Errorf("inserting custom exercise: %w", err)
	}
	return ex.ID, nil
}

// AllExercises returns the full catalog ordered by name.
func (db *DB) AllExercises(ctx context.Context) ([]models.Exercise, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}

	rows, err := db.sql.QueryContext(ctx,
		`SELECT `+exerciseColumns+` FROM exercises ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	return scanExerciseRows(rows)
}

// ExerciseByID returns a single exercise, or sql.ErrNoRows wrapped when absent.
func (db *DB) ExerciseByID(ctx context.Context, id string) (*models.Exercise, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}

	row := db.sql.QueryRowContext(ctx,
		`SELECT `+exerciseColumns+` FROM exercises WHERE id = ?`, id)
	ex, err := scanExercise(row)
	if err != nil {
		return nil, fmt.Errorf("querying exercise %s: %w", id, err)
	}
	return ex, nil
}

// ExercisesByMuscle returns exercises targeting the muscle as primary or
// secondary, ordered by name.
func (db *DB) ExercisesByMuscle(ctx context.Context, muscle string) ([]models.Exercise, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}

	rows, err := db.sql.QueryContext(ctx,
		`SELECT `+exerciseColumns+` FROM exercises
		 WHERE primary_muscle = ? OR secondary_muscles LIKE ?
		 ORDER BY name ASC`,
		muscle, "%"+muscle+"%")
	if err != nil {
		return nil, fmt.Errorf("querying exercises by muscle: %w", err)
	}
	defer rows.Close()

	return scanExerciseRows(rows)
}

func scanExercise(scanner interface{ Scan(...any) error }) (*models.Exercise, error) {
	var (
		ex                           models.Exercise
		secondary, instructions, tip sql.NullString
		isCustom                     int
	)
	err := scanner.Scan(&ex.ID, &ex.Name, &ex.PrimaryMuscle, &secondary,
		&ex.Equipment, &ex.Difficulty, &ex.Category, &instructions, &tip,
		&isCustom, &ex.CreatedAt)
	if err != nil {
		return nil, err
	}
	ex.IsCustom = isCustom != 0
	if ex.SecondaryMuscles, err = decodeStringList(secondary); err != nil {
		return nil, fmt.Errorf("decoding secondary muscles for %s: %w", ex.ID, err)
	}
	if ex.Instructions, err = decodeStringList(instructions); err != nil {
		return nil, fmt.Errorf("decoding instructions for %s: %w", ex.ID, err)
	}
	if ex.Tips, err = decodeStringList(tip); err != nil {
		return nil, fmt.Errorf("decoding tips for %s: %w", ex.ID, err)
	}
	return &ex, nil
}

func scanExerciseRows(rows *sql.Rows) ([]models.Exercise, error) {
	var result []models.Exercise
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		result = append(result, *ex)
	}
	return result, rows.Err()
}

// List-valued catalog fields are stored as JSON text. Encoding and decoding
// happen only here, at the store boundary.

func encodeStringList(list []string) (*string, error) {
	if len(list) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

func decodeStringList(v sql.NullString) ([]string, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(v.String), &list); err != nil {
		return nil, err
	}
	return list, nil
}
