package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetWorkoutStats = mcp.NewTool("get_workout_stats",
	mcp.WithDescription("Aggregate workout statistics: total workouts, total volume (kg), total sets, average duration in minutes, personal record count, current daily streak, and the most recent workout time."),
)

var toolGetRecentWorkouts = mcp.NewTool("get_recent_workouts",
	mcp.WithDescription("List recently completed workouts, newest first. Each entry includes name, start time, duration, total volume, and total sets."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of workouts to return. Defaults to 10.")),
)

var toolGetWorkoutDetail = mcp.NewTool("get_workout_detail",
	mcp.WithDescription("Full detail for one workout: every exercise in order with its completed sets (weight, reps, RPE, warmup/drop-set flags)."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Workout ID")),
)

var toolGetPersonalRecords = mcp.NewTool("get_personal_records",
	mcp.WithDescription("Personal records, newest first. Optionally filter to one exercise."),
	mcp.WithString("exercise", mcp.Description("Filter by exercise ID")),
	mcp.WithNumber("limit", mcp.Description("Maximum number of records to return. Defaults to 20.")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("The exercise catalog (built-in and custom). Optionally filter by muscle group."),
	mcp.WithString("muscle", mcp.Description("Filter by muscle group (e.g. 'quads', 'chest', 'back')")),
)

// --- Tool handlers ---

func (h *handlers) getWorkoutStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := h.db.WorkoutStats(ctx, statsNow())
	if err != nil {
		h.log.Error("mcp get_workout_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(stats)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getRecentWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 10)

	workouts, err := h.db.RecentWorkouts(ctx, limit)
	if err != nil {
		h.log.Error("mcp get_recent_workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutDetail(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	detail, err := h.db.WorkoutDetail(ctx, id)
	if err != nil {
		h.log.Error("mcp get_workout_detail", "error", err)
		return mcp.NewToolResultError("workout not found: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(detail)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPersonalRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise := req.GetString("exercise", "")
	limit := req.GetInt("limit", 20)

	records, err := h.db.PersonalRecords(ctx, exercise, limit)
	if err != nil {
		h.log.Error("mcp get_personal_records", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(records)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	muscle := req.GetString("muscle", "")

	var (
		exercises any
		err       error
	)
	if muscle != "" {
		exercises, err = h.db.ExercisesByMuscle(ctx, muscle)
	} else {
		exercises, err = h.db.AllExercises(ctx)
	}
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func resourceJSON(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
