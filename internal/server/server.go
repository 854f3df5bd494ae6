package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/claude/ironlog/internal/session"
	"github.com/claude/ironlog/internal/storage"
	"github.com/claude/ironlog/internal/workout"
)

// Server holds dependencies for HTTP handlers. It is the boundary the UI
// layer calls into; all session mutations go through the manager, all
// history reads through the store.
type Server struct {
	db        *storage.DB
	manager   *session.Manager
	committer *workout.Committer
	notify    session.Notifier
	log       *slog.Logger
	apiKey    string
	router    chi.Router
}

// New creates a new Server with all routes configured. A nil notifier
// disables side-effect triggers.
func New(db *storage.DB, manager *session.Manager, committer *workout.Committer, notify session.Notifier, apiKey string, log *slog.Logger) *Server {
	if notify == nil {
		notify = session.NopNotifier{}
	}
	s := &Server{
		db:        db,
		manager:   manager,
		committer: committer,
		notify:    notify,
		log:       log,
		apiKey:    apiKey,
		router:    chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Catalog and history (read-only)
	s.router.Get("/api/v1/exercises", s.handleListExercises)
	s.router.Get("/api/v1/exercises/{id}", s.handleGetExercise)
	s.router.Get("/api/v1/templates", s.handleListTemplates)
	s.router.Get("/api/v1/templates/{id}", s.handleGetTemplate)
	s.router.Get("/api/v1/workouts", s.handleRecentWorkouts)
	s.router.Get("/api/v1/workouts/{id}", s.handleWorkoutDetail)
	s.router.Get("/api/v1/stats", s.handleStats)
	s.router.Get("/api/v1/records", s.handleRecords)

	// Mutations (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))

		r.Post("/api/v1/exercises", s.handleCreateCustomExercise)
		r.Get("/api/v1/settings/{key}", s.handleGetSetting)
		r.Put("/api/v1/settings/{key}", s.handlePutSetting)

		r.Route("/api/v1/session", func(r chi.Router) {
			r.Post("/", s.handleStartSession)
			r.Get("/", s.handleGetSession)
			r.Post("/finish", s.handleFinishSession)
			r.Post("/cancel", s.handleCancelSession)

			r.Post("/exercises", s.handleAddExercise)
			r.Post("/exercises/reorder", s.handleReorderExercises)
			r.Delete("/exercises/{id}", s.handleRemoveExercise)
			r.Post("/exercises/{id}/notes", s.handleExerciseNotes)
			r.Post("/exercises/{id}/sets", s.handleAddSet)
			r.Patch("/exercises/{id}/sets/{setID}", s.handleUpdateSet)
			r.Delete("/exercises/{id}/sets/{setID}", s.handleRemoveSet)
			r.Post("/exercises/{id}/sets/{setID}/complete", s.handleCompleteSet)

			r.Post("/superset", s.handleSetSuperset)
			r.Delete("/superset/{id}", s.handleRemoveSuperset)

			r.Get("/rest", s.handleRestState)
			r.Post("/rest", s.handleStartRest)
			r.Post("/rest/adjust", s.handleAdjustRest)
			r.Post("/rest/pause", s.handlePauseRest)
			r.Post("/rest/reset", s.handleResetRest)
			r.Post("/rest/skip", s.handleSkipRest)
		})
	})
}
