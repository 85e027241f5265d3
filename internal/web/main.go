// Package web wires the fiber application: access logging, static upload
// serving, the ops surface and the resource handlers.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/config"
	accesslog "github.com/barangay-is/barangay-is/internal/logger/adapter/fiber"
	"github.com/barangay-is/barangay-is/internal/token"
	"github.com/barangay-is/barangay-is/internal/upload"
	authhandler "github.com/barangay-is/barangay-is/internal/web/handler/auth"
	"github.com/barangay-is/barangay-is/internal/web/handler/household"
	"github.com/barangay-is/barangay-is/internal/web/handler/incident"
	"github.com/barangay-is/barangay-is/internal/web/handler/official"
	"github.com/barangay-is/barangay-is/internal/web/handler/profile"
	"github.com/barangay-is/barangay-is/internal/web/handler/resident"
	svchandler "github.com/barangay-is/barangay-is/internal/web/handler/service"
	"github.com/barangay-is/barangay-is/internal/web/handler/settings"
	authmw "github.com/barangay-is/barangay-is/internal/web/middleware/auth"
)

// CheckAliveURI is the liveness endpoint, excluded from access logging.
const CheckAliveURI = "/healthz"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for SIGINT/SIGTERM and stops the http server.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: fail the liveness endpoint first
	// so a load balancer can drain this instance.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 for %d seconds to let the LB remove this instance from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates the web service with the given configuration and wiring.
func New(cfg *config.Config, db *gorm.DB, store *upload.Store, signer *token.Signer) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAliveURI,
	}))

	// uploaded files are public by design
	app.Static(cfg.Uploads.URLPrefix, store.Dir())

	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}
	service.alive.Store(true)

	app.Get(CheckAliveURI, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("ok")
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	protect := authmw.New(signer)

	// init handlers (they register their own routes)
	authhandler.Handler.Init(app, cfg, db, signer)
	settings.Handler.Init(app, cfg, db, store, protect)
	profile.Handler.Init(app, cfg, db, protect)
	resident.Handler.Init(app, cfg, db, protect)
	household.Handler.Init(app, cfg, db, protect)
	incident.Handler.Init(app, cfg, db, protect)
	svchandler.Handler.Init(app, cfg, db, protect)
	official.Handler.Init(app, cfg, db, store, protect)

	return service
}
