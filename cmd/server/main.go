// Command server runs the newsdesk API: the article workflow, the
// lifecycle sweeps, and the audit trail behind one HTTP listener.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"newsdesk/internal/article/cache"
	articlehandler "newsdesk/internal/article/handler"
	articlemetrics "newsdesk/internal/article/metrics"
	articleservice "newsdesk/internal/article/service"
	articlestore "newsdesk/internal/article/store"
	"newsdesk/internal/audit"
	audithandler "newsdesk/internal/audit/handler"
	auditmetrics "newsdesk/internal/audit/metrics"
	"newsdesk/internal/homepage"
	nhttp "newsdesk/internal/http"
	jwttoken "newsdesk/internal/jwt_token"
	lifecyclehandler "newsdesk/internal/lifecycle/handler"
	lifecyclemetrics "newsdesk/internal/lifecycle/metrics"
	"newsdesk/internal/lifecycle/scheduler"
	lifecycleservice "newsdesk/internal/lifecycle/service"
	lifecyclestore "newsdesk/internal/lifecycle/store"
	"newsdesk/internal/platform/config"
	"newsdesk/internal/platform/database"
	"newsdesk/internal/platform/httpserver"
	"newsdesk/internal/platform/logger"
	platformredis "newsdesk/internal/platform/redis"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	var (
		articles   articleservice.ArticleStore
		stages     lifecycleservice.ArticleStageStore
		slotFinder homepage.ArticleFinder
		configs    lifecycleservice.ConfigStore
		slots      homepage.Store
		auditStore audit.Store
	)
	health := map[string]nhttp.HealthChecker{}

	if cfg.DatabaseURL != "" {
		if err := database.Migrate(cfg.DatabaseURL); err != nil {
			return err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		// The audit store runs on database/sql; its queries are simple
		// appends and the outbox-style writer predates the pgx pool.
		auditDB, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer auditDB.Close()

		health["database"] = func(ctx context.Context) error {
			return database.HealthCheck(ctx, pool)
		}

		pgArticles := articlestore.NewPostgres(pool)
		articles, stages, slotFinder = pgArticles, pgArticles, pgArticles
		configs = lifecyclestore.NewPostgres(pool)
		slots = homepage.NewPostgresStore(pool)
		auditStore = audit.NewPostgresStore(auditDB)
	} else {
		log.Warn("DATABASE_URL not set, running on in-memory stores")
		memArticles := articlestore.NewInMemory()
		articles, stages, slotFinder = memArticles, memArticles, memArticles
		configs = lifecyclestore.NewInMemory()
		slots = homepage.NewMemoryStore()
		auditStore = audit.NewMemoryStore()
	}

	auditM := auditmetrics.New()
	recorderOpts := []audit.Option{
		audit.WithLogger(log),
		audit.WithMetrics(auditM),
	}

	var kafka *audit.KafkaPublisher
	if len(cfg.KafkaBrokers) > 0 {
		var err error
		kafka, err = audit.NewKafkaPublisher(ctx, cfg.KafkaBrokers,
			audit.WithKafkaTopic(cfg.AuditTopic),
			audit.WithKafkaLogger(log),
			audit.WithKafkaMetrics(auditM),
		)
		if err != nil {
			return err
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = kafka.Close(flushCtx)
		}()
		recorderOpts = append(recorderOpts, audit.WithPublisher(kafka))
	}
	recorder := audit.NewRecorder(auditStore, recorderOpts...)

	purger := audit.NewPurger(auditStore,
		audit.WithPurgerLogger(log),
		audit.WithRetention(cfg.AuditRetention),
		audit.WithPurgerMetrics(auditM),
	)

	homepageSvc := homepage.NewService(slots, slotFinder,
		homepage.WithLogger(log),
		homepage.WithRecorder(recorder),
	)

	articleOpts := []articleservice.Option{
		articleservice.WithLogger(log),
		articleservice.WithMetrics(articlemetrics.New()),
		articleservice.WithRecorder(recorder),
		articleservice.WithHomepageCleaner(homepageSvc),
	}

	redisClient, err := platformredis.New(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		articleOpts = append(articleOpts,
			articleservice.WithRelatedCache(cache.NewRedisRelated(redisClient.Client, cache.WithLogger(log))))
	}

	articleSvc := articleservice.New(articles, articleOpts...)

	lifecycleSvc := lifecycleservice.New(configs, stages,
		lifecycleservice.WithLogger(log),
		lifecycleservice.WithMetrics(lifecyclemetrics.New()),
		lifecycleservice.WithRecorder(recorder),
	)

	jwtSvc := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)

	if redisClient != nil {
		health["redis"] = redisClient.Health
	}

	router := nhttp.NewRouter(nhttp.Deps{
		Articles:  articlehandler.New(articleSvc, log),
		Lifecycle: lifecyclehandler.New(lifecycleSvc, log),
		Audit:     audithandler.New(auditStore, log),
		Auth:      jwtSvc,
		Logger:    log,
		Health:    health,
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return recorder.Run(gctx)
	})
	g.Go(func() error {
		return purger.Run(gctx)
	})
	if cfg.SchedulerEnabled {
		sched := scheduler.New(lifecycleSvc,
			scheduler.WithInterval(cfg.SchedulerInterval),
			scheduler.WithLogger(log),
		)
		g.Go(func() error {
			return sched.Start(gctx)
		})
	}

	g.Go(func() error {
		log.Info("starting newsdesk api", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("newsdesk api stopped")
	return nil
}
