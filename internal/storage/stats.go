package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/claude/ironlog/internal/models"
)

// WorkoutStats aggregates over all completed workouts. A store with no
// workouts yields all-zero stats, not an error. The result is a pure
// function of persisted state and the given now.
func (db *DB) WorkoutStats(ctx context.Context, now time.Time) (*models.WorkoutStats, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}

	stats := &models.WorkoutStats{}

	var avgDurationSec *float64
	err := db.sql.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total_volume), 0), COALESCE(SUM(total_sets), 0),
		        AVG(duration_sec)
		 FROM workouts
		 WHERE completed_at IS NOT NULL`,
	).Scan(&stats.TotalWorkouts, &stats.TotalVolume, &stats.TotalSets, &avgDurationSec)
	if err != nil {
		return nil, fmt.Errorf("aggregating workouts: %w", err)
	}

	if avgDurationSec != nil {
		stats.AverageDurationMinutes = int(math.Round(*avgDurationSec / 60))
	}

	// MAX() strips the column's timestamp affinity, so fetch the latest
	// row directly and let the driver return a time.Time.
	var lastWorkout time.Time
	err = db.sql.QueryRowContext(ctx,
		`SELECT started_at FROM workouts WHERE completed_at IS NOT NULL
		 ORDER BY started_at DESC LIMIT 1`,
	).Scan(&lastWorkout)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("querying last workout: %w", err)
	default:
		stats.LastWorkoutAt = &lastWorkout
	}

	err = db.sql.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM personal_records`,
	).Scan(&stats.PersonalRecordCount)
	if err != nil {
		return nil, fmt.Errorf("counting personal records: %w", err)
	}

	streak, err := db.Streak(ctx, now)
	if err != nil {
		return nil, err
	}
	stats.CurrentStreak = streak

	return stats, nil
}

// Streak counts consecutive calendar days with at least one completed
// workout, anchored at today or yesterday in local time. A most-recent
// workout older than yesterday breaks the streak to 0; any anchored streak
// is at least 1.
func (db *DB) Streak(ctx context.Context, now time.Time) (int, error) {
	if err := db.ready(); err != nil {
		return 0, err
	}

	rows, err := db.sql.QueryContext(ctx,
		`SELECT started_at FROM workouts WHERE completed_at IS NOT NULL`)
	if err != nil {
		return 0, fmt.Errorf("querying workout dates: %w", err)
	}
	defer rows.Close()

	seen := map[time.Time]bool{}
	for rows.Next() {
		var startedAt time.Time
		if err := rows.Scan(&startedAt); err != nil {
			return 0, fmt.Errorf("scanning workout date: %w", err)
		}
		seen[dateOf(startedAt.In(now.Location()))] = true
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	if len(seen) == 0 {
		return 0, nil
	}

	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	today := dateOf(now)
	yesterday := today.AddDate(0, 0, -1)
	if !dates[0].Equal(today) && !dates[0].Equal(yesterday) {
		return 0, nil
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Equal(dates[i-1].AddDate(0, 0, -1)) {
			streak++
			continue
		}
		break
	}
	return streak, nil
}

// dateOf truncates a timestamp to its calendar date, keeping the location.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
