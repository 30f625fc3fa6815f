// Package app wires configuration, storage and transport into a runnable site.
package app

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wanderlust/tourism-site/internal/api"
	"github.com/wanderlust/tourism-site/internal/api/handler"
	"github.com/wanderlust/tourism-site/internal/api/middleware"
	"github.com/wanderlust/tourism-site/internal/core/ports"
	"github.com/wanderlust/tourism-site/internal/core/service"
	"github.com/wanderlust/tourism-site/internal/core/validation"
	"github.com/wanderlust/tourism-site/internal/infrastructure/db/memory"
	mongostore "github.com/wanderlust/tourism-site/internal/infrastructure/db/mongo"
	redisstore "github.com/wanderlust/tourism-site/internal/infrastructure/db/redis"
	"github.com/wanderlust/tourism-site/internal/infrastructure/queue"
	"github.com/wanderlust/tourism-site/internal/infrastructure/security"
	"github.com/wanderlust/tourism-site/internal/infrastructure/session"
	"github.com/wanderlust/tourism-site/internal/pkg/config"
	"github.com/wanderlust/tourism-site/pkg/logger"
)

type App struct {
	cfg    *config.Config
	log    zerolog.Logger
	mongo  *mongostore.Store
	redis  *redisstore.Client
	queue  *queue.Dispatcher
	stop   context.CancelFunc
	router *echo.Echo
}

type stores struct {
	users    ports.UserRepository
	bookings ports.BookingRepository
	contacts ports.ContactRepository
}

// New connects to the configured backends and builds the router. The contact
// dispatcher is running when New returns; Close stops it.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}
	readiness := map[string]handler.Pinger{}

	st, err := a.openStores(ctx, readiness)
	if err != nil {
		return nil, err
	}

	var (
		revocations ports.RevocationList = memory.NewRevocationList()
		sink        ports.ContactSink    = queue.NewLogSink(logger.Component(log, "contact_sink"))
	)
	if cfg.UseRedis() {
		rdb, err := redisstore.Open(ctx, cfg.Redis)
		if err != nil {
			a.closeStores(ctx)
			return nil, err
		}
		a.redis = rdb
		revocations = rdb.Revocations()
		sink = rdb.ContactInbox()
		readiness["redis"] = rdb.Ping
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	}

	a.queue = queue.NewDispatcher(cfg.Contact.Workers, sink, logger.Component(log, "contact_dispatcher"))
	queueCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
	a.stop = stop
	a.queue.Start(queueCtx)

	v := validation.New()
	a.router = api.NewRouter(api.Dependencies{
		Auth: service.NewAuthService(st.users, security.NewBcryptHasher(cfg.Session.BcryptCost), revocations,
			v, cfg.Session.TTL, logger.Component(log, "auth")),
		Bookings: service.NewBookingService(st.bookings, v,
			service.BookingPolicy{RequireLogin: cfg.Booking.RequireLogin},
			logger.Component(log, "bookings")),
		Contacts: service.NewContactService(st.contacts, a.queue, v,
			logger.Component(log, "contact")),
		Sessions:     session.NewTokenManager(cfg.Session.Secret),
		Revocations:  revocations,
		Cookie:       middleware.SessionCookie{Name: cfg.Session.CookieName, Secure: cfg.Session.SecureCookies},
		CSRF:         cfg.Session.CSRFEnabled,
		Destinations: service.Destinations,
		Readiness:    readiness,
		Log:          log,
	})
	return a, nil
}

func (a *App) openStores(ctx context.Context, readiness map[string]handler.Pinger) (stores, error) {
	if a.cfg.StorageDriver != config.StorageMongo {
		a.log.Info().Msg("using in-memory storage")
		return stores{
			users:    memory.NewUserRepository(),
			bookings: memory.NewBookingRepository(),
			contacts: memory.NewContactRepository(),
		}, nil
	}

	store, err := mongostore.Open(ctx, a.cfg.Mongo)
	if err != nil {
		return stores{}, err
	}
	a.mongo = store
	readiness["mongodb"] = store.Ping
	a.log.Info().Str("database", a.cfg.Mongo.Database).Msg("mongodb connected")

	return stores{
		users:    store.Users(),
		bookings: store.Bookings(),
		contacts: store.Contacts(),
	}, nil
}

func (a *App) Router() *echo.Echo {
	return a.router
}

// Close drains the contact queue, then releases backend connections.
func (a *App) Close(ctx context.Context) error {
	if a.stop != nil {
		a.stop()
		done := make(chan struct{})
		go func() {
			a.queue.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-ctx.Done():
			a.log.Warn().Msg("contact queue did not drain before shutdown deadline")
		}
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	a.closeStores(ctx)
	return nil
}

func (a *App) closeStores(ctx context.Context) {
	if a.mongo != nil {
		if err := a.mongo.Close(ctx); err != nil {
			a.log.Warn().Err(err).Msg("mongo disconnect")
		}
	}
}
