package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/learnflow/learnflow/internal/api/http"
	"github.com/learnflow/learnflow/internal/assess"
	auth "github.com/learnflow/learnflow/internal/auth/middleware"
	"github.com/learnflow/learnflow/internal/catalog"
	"github.com/learnflow/learnflow/internal/config"
	"github.com/learnflow/learnflow/internal/db"
	"github.com/learnflow/learnflow/internal/eventlog"
	"github.com/learnflow/learnflow/internal/progress"
	"github.com/learnflow/learnflow/internal/rbac"
	"github.com/learnflow/learnflow/internal/session"
)

func main() {
	cfg := config.FromEnv()

	// --- Catalog (static, read-only) ---
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("catalog load failed: %v", err)
	}

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	events := eventlog.NewRepo(dbh)

	// --- Progress store over the selected KV ---
	var kv progress.KV
	switch cfg.ProgressStore {
	case "file":
		fkv, err := progress.NewFileKV(cfg.ProgressDir)
		if err != nil {
			log.Fatalf("file kv: %v", err)
		}
		kv = fkv
	case "memory":
		kv = progress.NewMemoryKV()
	default:
		kv = progress.NewSQLKV(dbh)
	}
	store := progress.NewStore(kv)

	// --- Engine ---
	ctrl := session.NewController(cat)
	mgr := assess.NewManager(time.Now, func(a assess.Attempt) {
		if err := events.Append(context.Background(), eventlog.TypeAttemptSubmitted, a.ID, a); err != nil {
			log.Printf("eventlog: append attempt failed: %v", err)
		}
	})

	// --- Auth ---
	authSvc := auth.NewAuthService(cfg.AuthHMACSecret, cfg.AdminUser, cfg.AdminPassHash)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc))

	// Protected API (JWT -> role in context -> RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require("catalog:view")).Get("/paths", api.ListPathsHandler(cat))
		pr.With(rbac.Require("catalog:view")).Get("/paths/{pathID}", api.GetPathHandler(cat))
		pr.With(rbac.Require("catalog:view")).Get("/paths/{pathID}/tests", api.ListPathTestsHandler(cat))
		pr.With(rbac.Require("catalog:view")).Post("/paths/{pathID}/unlocked", api.ComputeUnlockedHandler(cat, ctrl))

		pr.With(rbac.Require("progress:view")).Get("/progress", api.ListProgressHandler(store))
		pr.With(rbac.Require("progress:view")).Get("/progress/{videoID}", api.GetProgressHandler(store))
		pr.With(rbac.Require("progress:save")).Put("/progress/{videoID}", api.SaveProgressHandler(store, events))
		pr.With(rbac.Require("progress:save")).Post("/progress/{videoID}/complete", api.MarkCompletedHandler(store, events))
		pr.With(rbac.Require("progress:remove")).Delete("/progress/{videoID}", api.RemoveProgressHandler(store, events))
		pr.With(rbac.Require("progress:remove")).Post("/progress/cleanup", api.CleanupProgressHandler(store))

		pr.With(rbac.Require("attempt:create")).Post("/attempts", api.StartAttemptHandler(cat, mgr))
		pr.With(rbac.Require("attempt:save")).Put("/attempts/{attemptID}/answers", api.SaveAnswerHandler(mgr))
		pr.With(rbac.Require("attempt:submit")).Post("/attempts/{attemptID}/submit", api.SubmitAttemptHandler(mgr, ctrl))
		pr.With(rbac.Require("attempt:save")).Delete("/attempts/{attemptID}", api.AbandonAttemptHandler(mgr))
		pr.With(rbac.Require("attempt:view")).Get("/attempts/{attemptID}", api.GetAttemptHandler(mgr))

		pr.With(rbac.Require("events:view")).Get("/events", api.RecentEventsHandler(events))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s, progress=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver, cfg.ProgressStore)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
