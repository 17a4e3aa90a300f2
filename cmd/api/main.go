package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"paksupply/internal/adapter/api"
	"paksupply/internal/adapter/api/handler"
	apimiddleware "paksupply/internal/adapter/api/middleware"
	"paksupply/internal/adapter/api/router"
	"paksupply/internal/adapter/repository"
	domainrepo "paksupply/internal/domain/repository"
	"paksupply/internal/infrastructure/catalog"
	"paksupply/internal/infrastructure/notification"
	"paksupply/internal/infrastructure/ratelimit"
	"paksupply/internal/infrastructure/recordstore"
	"paksupply/internal/infrastructure/remote"
	"paksupply/internal/infrastructure/session"
	"paksupply/internal/usecase"
	"paksupply/pkg/config"
	"paksupply/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open record store: %v", err)
	}
	defer closeStore()

	mirror, closeMirror, err := openMirror(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize remote mirror: %v", err)
	}
	defer closeMirror()

	manufacturerSource, productSource := repository.LocalOnly(), repository.LocalOnly()
	if mirror != nil {
		manufacturerSource = repository.RemoteBacked(mirror, domainrepo.KindManufacturers, cfg.RemoteTimeout)
		productSource = repository.RemoteBacked(mirror, domainrepo.KindProducts, cfg.RemoteTimeout)
	}

	manufacturerRepo := repository.NewManufacturerRepository(store, manufacturerSource, cat.SeedManufacturers)
	productRepo := repository.NewProductRepository(store, productSource, cat.SeedProducts, manufacturerRepo)
	shopkeeperRepo := repository.NewShopkeeperRepository(store, cat.SeedShops)
	inventoryRepo := repository.NewShopInventoryRepository(store)
	orderRepo := repository.NewConsumerOrderRepository(store)

	sessions := session.NewManager(cfg.SessionTTL)
	links := notification.NewWhatsAppLinker()

	authUseCase := usecase.NewAuthUseCase(manufacturerRepo, shopkeeperRepo, sessions, usecase.AdminCredentials{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	manufacturerUseCase := usecase.NewManufacturerUseCase(manufacturerRepo, authUseCase, cat)
	productUseCase := usecase.NewProductUseCase(productRepo, manufacturerRepo, cat, links, cfg.AdminWhatsApp)
	shopUseCase := usecase.NewShopUseCase(shopkeeperRepo, inventoryRepo, productRepo, sessions)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, shopkeeperRepo, inventoryRepo, links)

	handler.Setup(authUseCase, manufacturerUseCase, productUseCase, shopUseCase, orderUseCase, cat, cfg.PublicBaseURL)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	limiter := ratelimit.NewRateLimiter(cfg.WriteRatePerMinute)
	limiter.StartCleanupRoutine(5*time.Minute, ctx.Done())
	go sweepSessions(ctx, sessions, time.Minute)

	authMiddleware := apimiddleware.NewAuthMiddleware(sessions)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	router.Setup(e, authMiddleware, adminMiddleware, limiter)

	go func() {
		logger.Info("Starting server on port %s (store=%s, remote=%s)", cfg.ServerPort, cfg.StoreDriver, cfg.RemoteDriver)
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Info("Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed: %v", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (domainrepo.RecordStore, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		logger.Warn("Using in-memory record store; data is lost on restart")
		return recordstore.NewMemoryStore(), func() {}, nil
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		return recordstore.NewRedisStore(client, cfg.RedisPrefix), func() { client.Close() }, nil
	default:
		s, err := recordstore.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}
}

// openMirror returns a nil mirror when no remote is configured.
func openMirror(ctx context.Context, cfg *config.Config) (domainrepo.RemoteMirror, func(), error) {
	switch cfg.RemoteDriver {
	case config.RemoteSupabase:
		return remote.NewSupabaseMirror(cfg.SupabaseURL, cfg.SupabaseAnonKey), func() {}, nil

	case config.RemotePostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres pool: %w", err)
		}
		m := remote.NewPostgresMirror(pool)
		// An unreachable database at startup is a remote outage like any other.
		if err := m.EnsureSchema(ctx); err != nil {
			logger.LogRemoteFallback("schema", "ensure", err)
		}
		return m, pool.Close, nil

	case config.RemoteFirestore:
		var opts []option.ClientOption
		if cfg.FirebaseServiceAccountJSON != "" {
			opts = append(opts, option.WithCredentialsJSON([]byte(cfg.FirebaseServiceAccountJSON)))
		} else if cfg.FirebaseServiceAccountPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.FirebaseServiceAccountPath))
		}
		client, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("firestore client: %w", err)
		}
		return remote.NewFirestoreMirror(client), func() { client.Close() }, nil

	default:
		return nil, func() {}, nil
	}
}

func sweepSessions(ctx context.Context, sessions *session.Manager, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Sweep(); n > 0 {
				logger.Debug("Swept %d expired sessions", n)
			}
		}
	}
}
