package app

import (
	"context"
	"fmt"
	"net/http"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy11/internal/config"
	"github.com/riskibarqy/fantasy11/internal/domain/wallet"
	"github.com/riskibarqy/fantasy11/internal/infrastructure/auth"
	"github.com/riskibarqy/fantasy11/internal/infrastructure/events"
	"github.com/riskibarqy/fantasy11/internal/infrastructure/jobqueue"
	"github.com/riskibarqy/fantasy11/internal/interfaces/httpapi"
	"github.com/riskibarqy/fantasy11/internal/platform/id"
	"github.com/riskibarqy/fantasy11/internal/platform/logging"
	"github.com/riskibarqy/fantasy11/internal/usecase"
)

// App owns the http server and every connection opened to back it.
type App struct {
	Server *http.Server

	logger  *logging.Logger
	closers []closer
}

type closer struct {
	name string
	fn   func(context.Context) error
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{logger: logger}

	repos, err := a.openStorage(ctx, cfg)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}
	if err := a.wrapCache(ctx, cfg, &repos); err != nil {
		_ = a.Close(ctx)
		return nil, err
	}
	ledgerEvents, err := a.openLedgerEvents(cfg)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecretKey, cfg.JWTExpiration, cfg.JWTIssuer)
	if err != nil {
		_ = a.Close(ctx)
		return nil, fmt.Errorf("build token service: %w", err)
	}
	hasher := auth.NewArgon2Hasher(auth.DefaultArgon2Params)
	ids := id.NewUUIDGenerator()

	walletSvc := usecase.NewWalletService(repos.wallets, ids, ledgerEvents, logger)
	authSvc := usecase.NewAuthService(repos.users, walletSvc, hasher, tokens, ids, logger)
	userSvc := usecase.NewUserService(repos.users)
	matchSvc := usecase.NewMatchService(repos.matches, repos.teams)
	leagueSvc := usecase.NewLeagueService(repos.leagues, walletSvc, logger)
	scoringSvc := usecase.NewScoringService(repos.matches, repos.leagues, repos.teams, repos.stats, ids, cfg.ScoringWorkers, logger)
	if cfg.QStashEnabled {
		scheduler, err := jobqueue.NewQStashPublisher(jobqueue.QStashConfig{
			BaseURL:          cfg.QStashBaseURL,
			Token:            cfg.QStashToken,
			TargetBaseURL:    cfg.QStashTargetBaseURL,
			Retries:          cfg.QStashRetries,
			InternalJobToken: cfg.InternalJobToken,
			FinalizeDelay:    cfg.QStashFinalizeDelay,
		}, logger)
		if err != nil {
			_ = a.Close(ctx)
			return nil, fmt.Errorf("build qstash publisher: %w", err)
		}
		scoringSvc.SetFinalizeScheduler(scheduler)
	}

	handler := httpapi.NewHandler(authSvc, userSvc, matchSvc, leagueSvc, walletSvc, scoringSvc, logger)
	router := httpapi.NewRouter(handler, tokens, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("app wired",
		"storage", cfg.StorageDriver,
		"cache_enabled", cfg.CacheEnabled,
		"cache_driver", cfg.CacheDriver,
		"nats_enabled", cfg.NATSEnabled,
		"qstash_enabled", cfg.QStashEnabled,
	)
	return a, nil
}

func (a *App) openLedgerEvents(cfg config.Config) (wallet.EventPublisher, error) {
	if !cfg.NATSEnabled {
		return nil, nil
	}

	conn, err := events.Connect(cfg.NATSURL, cfg.ServiceName)
	if err != nil {
		return nil, err
	}
	a.onClose("nats", func(context.Context) error {
		return conn.Drain()
	})

	publisher := events.NewLedgerPublisher(conn, cfg.NATSSubjectPrefix)
	a.logger.Info("ledger events enabled", "subject", publisher.Subject())
	return publisher, nil
}

func (a *App) onClose(name string, fn func(context.Context) error) {
	a.closers = append(a.closers, closer{name: name, fn: fn})
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close(ctx context.Context) error {
	var combined error
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.fn(ctx); err != nil {
			a.logger.Error("close resource failed", "resource", c.name, "error", err)
			combined = crerr.CombineErrors(combined, crerr.Wrapf(err, "close %s", c.name))
		}
	}
	a.closers = nil
	return combined
}
