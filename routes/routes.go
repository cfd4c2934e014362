package routes

import (
	"net/http"

	_ "github.com/Dosada05/tournament-engine/docs" // Swagger docs
	"github.com/Dosada05/tournament-engine/handlers"
	"github.com/Dosada05/tournament-engine/middleware"
	"github.com/Dosada05/tournament-engine/services"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	JWTSecret          string
	CORSAllowedOrigins []string
}

func SetupRoutes(
	router chi.Router,
	opts Options,
	authHandler *handlers.AuthHandler,
	tournamentHandler *handlers.TournamentHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// WebSocket без префикса /api/v1
	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", tournamentHandler.HealthHandler)
		r.Post("/auth/token", authHandler.Login)

		r.Route("/tournament", func(r chi.Router) {
			// Публичные маршруты для наблюдателей
			r.Get("/", tournamentHandler.GetHandler)
			r.Get("/schedule", tournamentHandler.ScheduleHandler)
			r.Get("/standings", tournamentHandler.StandingsHandler)
			r.Get("/bracket", tournamentHandler.BracketHandler)
			r.Get("/champion", tournamentHandler.ChampionHandler)
			r.Get("/ranking", tournamentHandler.RankingHandler)
			r.Get("/report", tournamentHandler.ReportHandler)
			r.Get("/matches/{matchID}", tournamentHandler.GetMatchHandler)

			// Защищенные маршруты только для организатора
			r.Group(func(r chi.Router) {
				r.Use(middleware.Authenticate(opts.JWTSecret))
				r.Use(middleware.Authorize(services.RoleOrganizer))

				r.Post("/reset", tournamentHandler.ResetHandler)
				r.Post("/draw", tournamentHandler.DrawHandler)
				r.Post("/matches/{matchID}/result", tournamentHandler.RecordResultHandler)
				r.Post("/playoffs", tournamentHandler.AdvanceToPlayoffsHandler)
				r.Post("/simulate", tournamentHandler.SimulateHandler)
				r.Post("/report/publish", tournamentHandler.PublishReportHandler)
			})
		})
	})
}
