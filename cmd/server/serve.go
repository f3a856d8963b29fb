package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tammam101/temox/backend/internal/auth"
	"github.com/tammam101/temox/backend/internal/catalog"
	"github.com/tammam101/temox/backend/internal/config"
	"github.com/tammam101/temox/backend/internal/contact"
	"github.com/tammam101/temox/backend/internal/middleware"
	"github.com/tammam101/temox/backend/internal/server"
	"github.com/tammam101/temox/backend/internal/store"
	"github.com/tammam101/temox/backend/internal/validation"
	"github.com/tammam101/temox/backend/internal/web"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(load loader) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply database migrations before serving")
	return cmd
}

// backends are the optional stores opened for one serve run.
type backends struct {
	users    auth.UserStore
	contacts contact.Store
	limiter  middleware.Limiter
	assets   web.AssetStore
	closers  []func()
}

func (b *backends) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

func openBackends(ctx context.Context, cfg *config.Config, log *slog.Logger, migrate bool) (*backends, error) {
	b := &backends{}

	// ── PostgreSQL ────────────────────────────────────────────
	if cfg.PostgresDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return b, fmt.Errorf("postgres connect: %w", err)
		}
		b.closers = append(b.closers, pool.Close)
		if err := pool.Ping(ctx); err != nil {
			return b, fmt.Errorf("postgres ping: %w", err)
		}
		if migrate {
			if err := store.Migrate(ctx, pool); err != nil {
				return b, err
			}
		}
		b.users = store.NewPostgresStore(pool)
	} else {
		log.Warn("POSTGRES_DSN not set, registered users are kept in memory")
		b.users = store.NewMemoryUserStore()
	}

	// ── MongoDB ──────────────────────────────────────────────
	if cfg.MongoURI != "" {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return b, fmt.Errorf("mongo connect: %w", err)
		}
		b.closers = append(b.closers, func() { client.Disconnect(context.Background()) })
		if err := client.Ping(ctx, nil); err != nil {
			return b, fmt.Errorf("mongo ping: %w", err)
		}
		ms := store.NewMongoStore(client.Database(cfg.MongoDB))
		if err := ms.EnsureIndexes(ctx); err != nil {
			return b, err
		}
		b.contacts = ms
	} else {
		log.Warn("MONGO_URI not set, contact requests are kept in memory")
		b.contacts = store.NewMemoryContactStore()
	}

	// ── Redis ────────────────────────────────────────────────
	if cfg.RedisAddr != "" && cfg.RateLimit > 0 {
		rdb, err := store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return b, err
		}
		b.closers = append(b.closers, func() { rdb.Close() })
		b.limiter = store.NewRateLimiter(rdb, cfg.RateLimit, cfg.RateWindow)
	} else {
		log.Info("rate limiting disabled")
	}

	// ── MinIO ────────────────────────────────────────────────
	if cfg.MinioEndpoint != "" {
		ms, err := openMinio(ctx, cfg)
		if err != nil {
			return b, err
		}
		b.assets = ms
	}

	return b, nil
}

func openMinio(ctx context.Context, cfg *config.Config) (*store.MinioStore, error) {
	return store.NewMinioStore(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey,
		cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
}

func serve(ctx context.Context, cfg *config.Config, log *slog.Logger, migrate bool) error {
	b, err := openBackends(ctx, cfg, log, migrate)
	defer b.close()
	if err != nil {
		return err
	}

	views := web.NewViews()
	cat := catalog.Default()
	v := validation.New(cat)

	handler := server.NewRouter(server.Deps{
		Catalog:     cat,
		Validator:   v,
		Users:       auth.NewService(b.users, v, log, auth.WithTimeout(cfg.RegisterTimeout)),
		Contacts:    contact.NewService(b.contacts, v, log),
		Views:       views,
		Limiter:     b.limiter,
		Assets:      b.assets,
		CORSOrigins: cfg.CORSOrigins,
		TrustProxy:  cfg.TrustProxy,
		Log:         log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutCtx)
}
