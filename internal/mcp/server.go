// Package mcp exposes workout history and statistics to MCP clients.
package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/claude/ironlog/internal/storage"
)

// New creates an MCP server with all tools and resources registered.
func New(db *storage.DB, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("IronLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("IronLog workout tracker. Query workout history, per-workout set details, aggregate statistics (volume, streak), personal records, and the exercise catalog."),
	)

	h := &handlers{db: db, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGetWorkoutStats, Handler: h.getWorkoutStats},
		server.ServerTool{Tool: toolGetRecentWorkouts, Handler: h.getRecentWorkouts},
		server.ServerTool{Tool: toolGetWorkoutDetail, Handler: h.getWorkoutDetail},
		server.ServerTool{Tool: toolGetPersonalRecords, Handler: h.getPersonalRecords},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
	)

	s.AddResources(
		server.ServerResource{Resource: resRecentWorkouts, Handler: h.recentWorkoutsResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	db  *storage.DB
	log *slog.Logger
}

var resRecentWorkouts = mcp.NewResource(
	"ironlog://recent_workouts",
	"Recent Workouts",
	mcp.WithResourceDescription("The 14 most recently completed workouts with totals"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) recentWorkoutsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	workouts, err := h.db.RecentWorkouts(ctx, 14)
	if err != nil {
		return nil, err
	}
	contents, err := resourceJSON(resRecentWorkouts.URI, workouts)
	if err != nil {
		return nil, err
	}
	return contents, nil
}

// statsNow is the reference time for streak computation; a variable so
// tests can pin it.
var statsNow = time.Now
