package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"fitmitra/internal/auth"
	"fitmitra/internal/calculator"
	"fitmitra/internal/coach"
	"fitmitra/internal/config"
	"fitmitra/internal/db"
	"fitmitra/internal/handlers"
	"fitmitra/internal/meals"
	mw "fitmitra/internal/middleware"
	"fitmitra/internal/profile"
	"fitmitra/internal/progress"
	"fitmitra/internal/store"
	"fitmitra/internal/workout"
	"fitmitra/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New().Fatal("config", zap.Error(err))
	}

	log := logger.New()
	if cfg.Env == "development" {
		log = logger.NewDevelopment()
	}
	defer log.Sync()

	var st store.Store
	switch cfg.Storage.Mode {
	case "file":
		fileStore, err := store.NewFile(cfg.Storage.DataDir)
		if err != nil {
			log.Fatal("failed to open file store", zap.Error(err))
		}
		st = fileStore
		log.Info("using flat-file store", zap.String("dir", cfg.Storage.DataDir))
	default:
		dbConn, err := sqlx.Open("pgx", cfg.DB.URL)
		if err != nil {
			log.Fatal("failed to open db", zap.Error(err))
		}
		dbConn.SetMaxOpenConns(cfg.DB.MaxOpenConns)
		dbConn.SetConnMaxLifetime(cfg.DB.ConnLifetime)
		if err := dbConn.Ping(); err != nil {
			log.Fatal("failed to ping db", zap.Error(err))
		}
		if err := db.RunMigrations(dbConn); err != nil {
			log.Fatal("failed migrations", zap.Error(err))
		}
		st = store.NewPostgres(dbConn)
	}

	if cfg.Coach.APIKey == "" {
		log.Warn("COACH_API_KEY not set; coach replies with setup instructions")
	}

	profileSvc := profile.NewService(st)
	wizard := profile.NewWizard(profileSvc)
	predictor := calculator.NewPredictor(cfg.BodyFat.WeightsPath)
	tracker := progress.NewTracker(st)
	aiCoach := coach.New(cfg.Coach.APIKey, cfg.Coach.Model)

	authHandler := handlers.NewAuthHandler(auth.NewManager(st), []byte(cfg.Auth.JWTSecret), log)
	profileHandler := handlers.NewProfileHandler(profileSvc, wizard, predictor, log)
	planHandler := handlers.NewPlanHandler(workout.NewGenerator(), meals.NewPlanner(), log)
	progressHandler := handlers.NewProgressHandler(tracker, profileSvc, log)
	coachHandler := handlers.NewCoachHandler(aiCoach, profileSvc, cfg.Coach.Timeout, log)
	authMW := mw.NewAuthMiddleware([]byte(cfg.Auth.JWTSecret))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(mw.RequestLogger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", authHandler.Register)
		api.Post("/auth/login", authHandler.Login)
		api.Group(func(pr chi.Router) {
			pr.Use(authMW.RequireAuth)
			pr.Get("/profile", profileHandler.Get)
			pr.Put("/profile", profileHandler.Put)
			pr.Post("/profile/wizard/basic-info", profileHandler.WizardBasicInfo)
			pr.Post("/profile/wizard/body-metrics", profileHandler.WizardBodyMetrics)
			pr.Post("/profile/wizard/goals", profileHandler.WizardGoalPrefs)
			pr.Post("/profile/body-fat", profileHandler.BodyFat)
			pr.Post("/workouts/generate", planHandler.GenerateWorkout)
			pr.Post("/meals/generate", planHandler.GenerateMealPlan)
			pr.Post("/progress", progressHandler.Add)
			pr.Get("/progress", progressHandler.History)
			pr.Get("/progress/summary", progressHandler.Summary)
			pr.Post("/coach/chat", coachHandler.Chat)
		})
	})

	srv := &http.Server{Addr: ":" + cfg.Server.Port, Handler: r}
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown initiated")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("server stopped")
}
