package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/hr-console/hr-console-gateway/internal/config"
)

func NewRouter(
	cfg *config.Config,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-console-gateway"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Get("/{id}", employeeHandler.GetEmployee)
			r.Delete("/{id}", employeeHandler.DeleteEmployee)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.GetAttendance)
			r.Post("/", attendanceHandler.MarkAttendance)
			r.Get("/stats", attendanceHandler.GetAttendanceStats)
			r.Get("/employee/{employeeId}", attendanceHandler.GetEmployeeAttendance)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", dashboardHandler.GetDashboardStats)
		})
	})

	return r
}
