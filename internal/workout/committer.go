// Package workout turns a finished in-memory session into durable rows.
package workout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/claude/ironlog/internal/models"
	"github.com/claude/ironlog/internal/session"
	"github.com/claude/ironlog/internal/storage"
)

// Committer materializes a finished ActiveSession into the store. It
// receives a detached session copy and never mutates manager state: on
// failure the caller keeps the in-memory session and can retry.
type Committer struct {
	db  *storage.DB
	log *slog.Logger
	now func() time.Time
}

// NewCommitter creates a Committer backed by the given store.
func NewCommitter(db *storage.DB, log *slog.Logger) *Committer {
	return &Committer{db: db, log: log, now: time.Now}
}

// Commit writes the session as one atomic transaction: workout header
// (upsert by session id), one exercise row per session exercise in order,
// and one set row per completed set. Uncompleted sets are never persisted.
// Returns the workout id, which equals the session id.
//
// Empty sessions are persisted as-is; blocking them is a presentation
// concern, not a data-integrity one.
func (c *Committer) Commit(ctx context.Context, s *session.ActiveSession, elapsedSec int) (string, error) {
	if s == nil {
		return "", fmt.Errorf("commit: no session")
	}

	totalSets := 0
	totalVolume := 0.0
	for _, e := range s.Exercises {
		for i := range e.Sets {
			if e.Sets[i].Completed() {
				totalSets++
				totalVolume += e.Sets[i].Volume()
			}
		}
	}

	completedAt := c.now()
	row := models.WorkoutRow{
		ID:          s.ID,
		ProgramID:   s.TemplateID,
		Name:        s.Name,
		StartedAt:   s.StartedAt,
		CompletedAt: &completedAt,
		DurationSec: &elapsedSec,
		TotalVolume: totalVolume,
		TotalSets:   totalSets,
	}

	cw := storage.CommittedWorkout{Workout: row}
	for _, e := range s.Exercises {
		ce := storage.CommittedExercise{
			Row: models.WorkoutExerciseRow{
				ID:         uuid.NewString(),
				WorkoutID:  s.ID,
				ExerciseID: e.ExerciseID,
				OrderIndex: e.OrderIndex,
				Notes:      e.Notes,
			},
		}
		for i := range e.Sets {
			set := &e.Sets[i]
			if !set.Completed() {
				continue
			}
			ce.Sets = append(ce.Sets, models.WorkoutSetRow{
				ID:                uuid.NewString(),
				WorkoutExerciseID: ce.Row.ID,
				SetNumber:         set.SetNumber,
				Weight:            set.Weight,
				Reps:              set.Reps,
				Completed:         true,
				CompletedAt:       set.CompletedAt,
			})
		}
		cw.Exercises = append(cw.Exercises, ce)
	}

	records, err := c.detectRecords(ctx, s, completedAt)
	if err != nil {
		return "", err
	}
	cw.Records = records

	if err := c.db.CommitWorkout(ctx, cw); err != nil {
		return "", fmt.Errorf("persisting workout: %w", err)
	}

	c.log.Info("workout committed",
		"workout_id", s.ID,
		"exercises", len(cw.Exercises),
		"total_sets", totalSets,
		"total_volume", totalVolume,
		"records", len(records),
	)
	return s.ID, nil
}

// detectRecords finds the best completed set per exercise in this session
// and emits a personal record when it beats the stored best (heavier
// weight, or equal weight with more reps). Records are evaluated only at
// commit time; toggling a set incomplete mid-session never retracts one.
func (c *Committer) detectRecords(ctx context.Context, s *session.ActiveSession, achievedAt time.Time) ([]models.PersonalRecordRow, error) {
	type best struct {
		weight float64
		reps   int
	}
	bests := map[string]best{}

	for _, e := range s.Exercises {
		for i := range e.Sets {
			set := &e.Sets[i]
			if !set.Completed() || set.Weight == nil || set.Reps == nil {
				continue
			}
			b, ok := bests[e.ExerciseID]
			if !ok || *set.Weight > b.weight || (*set.Weight == b.weight && *set.Reps > b.reps) {
				bests[e.ExerciseID] = best{weight: *set.Weight, reps: *set.Reps}
			}
		}
	}

	var records []models.PersonalRecordRow
	for exerciseID, b := range bests {
		prior, err := c.db.BestForExercise(ctx, exerciseID)
		if err != nil {
			return nil, fmt.Errorf("looking up prior best: %w", err)
		}
		if prior != nil && (b.weight < prior.Weight || (b.weight == prior.Weight && b.reps <= prior.Reps)) {
			continue
		}
		records = append(records, models.PersonalRecordRow{
			ID:         uuid.NewString(),
			ExerciseID: exerciseID,
			Weight:     b.weight,
			Reps:       b.reps,
			AchievedAt: achievedAt,
			WorkoutID:  s.ID,
		})
	}
	return records, nil
}
