package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/echal/gembira-sub001/internal/handler/http/middleware"
	"github.com/echal/gembira-sub001/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	rankingHandler RankingHandler,
	statisticsHandler StatisticsHandler,
	gamificationHandler GamificationHandler,
	directoryHandler DirectoryHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "gembira"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/my", attendanceHandler.GetMyAttendance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", attendanceHandler.List)
				})
			})

			r.Get("/units", directoryHandler.ListUnits)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/employees", directoryHandler.ListEmployees)
				r.Get("/employees/{employeeID}", directoryHandler.GetEmployee)
			})

			r.Route("/rankings", func(r chi.Router) {
				r.Get("/daily", rankingHandler.Daily)
				r.Get("/monthly", rankingHandler.Monthly)
				r.Get("/units", rankingHandler.Units)
			})

			r.Route("/statistics", func(r chi.Router) {
				r.Get("/my/percentage", statisticsHandler.GetMyPercentage)
				r.Get("/my/overview", statisticsHandler.GetMyOverview)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/employees/{employeeID}/percentage", statisticsHandler.GetPercentage)
					r.Get("/employees/{employeeID}/overview", statisticsHandler.GetOverview)
				})
			})

			r.Route("/gamification", func(r chi.Router) {
				r.Get("/leaderboard", gamificationHandler.Leaderboard)
				r.Get("/my/xp", gamificationHandler.GetMyXp)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/employees/{employeeID}/xp", gamificationHandler.GetEmployeeXp)
					r.Get("/levels/distribution", gamificationHandler.LevelDistribution)
					r.Get("/overview", gamificationHandler.Overview)
				})
			})
		})
	})
	return r
}
