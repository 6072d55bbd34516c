package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tiku/config"
	"github.com/lshigami/Tiku/database"
	_ "github.com/lshigami/Tiku/docs" // Swagger docs
	adminctrl "github.com/lshigami/Tiku/internal/controller/admin"
	userctrl "github.com/lshigami/Tiku/internal/controller/user"
	"github.com/lshigami/Tiku/internal/repository"
	"github.com/lshigami/Tiku/internal/router"
	"github.com/lshigami/Tiku/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// @title Tiku Question Bank API
// @version 1.0
// @description Spreadsheet question import, randomized mock exams, scoring and a per-user wrong-question ledger.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewExamSessionRepository,
			repository.NewAnswerRecordRepository,
			repository.NewWrongQuestionRepository,
		),

		fx.Provide(
			service.NewRandomSource,
			service.NewQuestionSelector,
			service.NewGeminiGenerator,
			service.NewExplanationService,
			service.NewImportService,
			service.NewQuestionService,
			service.NewWrongQuestionService,
			service.NewExamService,
		),

		fx.Provide(
			func(
				is service.ImportService,
				qs service.QuestionService,
				es service.ExplanationService,
				cfg *config.Config,
			) *adminctrl.AdminQuestionController {
				return adminctrl.NewAdminQuestionController(is, qs, es, cfg.Server.MaxUploadMB<<20)
			},
			userctrl.NewUserExamController,
			userctrl.NewUserQuestionController,
			userctrl.NewUserWrongQuestionController,
		),

		fx.Invoke(database.AutoMigrate),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Log.Pretty {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	return router.NewEngine()
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, ctrls router.Controllers) {
	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set. Every authenticated request will be rejected.")
	}
	router.Register(engine, cfg.JWTSecret, ctrls)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Tiku API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return server.Shutdown(ctx)
		},
	})
}
