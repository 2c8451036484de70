package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/fantasy11/internal/config"
	"github.com/riskibarqy/fantasy11/internal/domain/league"
	"github.com/riskibarqy/fantasy11/internal/domain/match"
	"github.com/riskibarqy/fantasy11/internal/domain/scoring"
	"github.com/riskibarqy/fantasy11/internal/domain/user"
	"github.com/riskibarqy/fantasy11/internal/domain/wallet"
	"github.com/riskibarqy/fantasy11/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy11/internal/infrastructure/repository/postgres"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const dbPingTimeout = 5 * time.Second

type repositories struct {
	users   user.Repository
	wallets wallet.Store
	matches match.Repository
	leagues league.Repository
	teams   scoring.TeamRepository
	stats   scoring.StatsRepository
}

func (a *App) openStorage(ctx context.Context, cfg config.Config) (repositories, error) {
	if cfg.StorageDriver != config.StoragePostgres {
		return memoryRepositories(), nil
	}

	db, err := openPostgres(ctx, cfg)
	if err != nil {
		return repositories{}, err
	}
	a.onClose("postgres", func(context.Context) error {
		return db.Close()
	})

	return repositories{
		users:   postgres.NewUserRepository(db),
		wallets: postgres.NewWalletStore(db),
		matches: postgres.NewMatchRepository(db),
		leagues: postgres.NewLeagueRepository(db),
		teams:   postgres.NewTeamRepository(db),
		stats:   postgres.NewStatsRepository(db),
	}, nil
}

func memoryRepositories() repositories {
	return repositories{
		users:   memory.NewUserRepository(),
		wallets: memory.NewWalletStore(),
		matches: memory.NewMatchRepository(memory.SeedMatches()),
		leagues: memory.NewLeagueRepository(memory.SeedLeagues()),
		teams:   memory.NewTeamRepository(),
		stats:   memory.NewStatsRepository(),
	}
}

func openPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromDSN(cfg.DBURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open("postgres", postgresDSN(cfg.DBURL, cfg.ServiceName, cfg.DBDisablePreparedBinary), opts...)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns / 2)
	db.SetConnMaxIdleTime(5 * time.Minute)
	otelsql.ReportDBStatsMetrics(db.DB)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
