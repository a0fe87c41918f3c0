package app

import (
	"context"
	"net/http"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	replayAPI "slot_backend/internal/api/replay"
	spinAPI "slot_backend/internal/api/spin"
	"slot_backend/internal/config"
	"slot_backend/internal/config/env"
	"slot_backend/internal/repository"
	"slot_backend/internal/repository/player_repo"
	"slot_backend/internal/repository/round_repo"
	"slot_backend/internal/service"
	"slot_backend/internal/service/replay"
	"slot_backend/internal/service/spin"
	"slot_backend/internal/wallet"
	"slot_backend/pkg/logger"
	"slot_backend/pkg/resp"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Wallet bits
	walletCfg config.WalletConfig
	wallet    wallet.Wallet

	// Game bits
	gameCfg config.GameConfig

	// Ledger bits
	playerRepo repository.PlayerRepository
	roundRepo  repository.RoundRepository

	// Spin bits
	spinServ service.SpinService
	spinHand *spinAPI.Handler

	// Replay bits
	replayServ service.ReplayService
	replayHand *replayAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) WalletCfg() config.WalletConfig {
	if sp.walletCfg == nil {
		cfg, err := env.NewWalletConfig()
		if err != nil {
			panic("failed to get wallet config: " + err.Error())
		}
		sp.walletCfg = cfg
	}
	return sp.walletCfg
}

func (sp *ServiceProvider) Wallet() wallet.Wallet {
	if sp.wallet == nil {
		cfg := sp.WalletCfg()
		sp.wallet = wallet.NewHTTPWallet(cfg.BaseURL(), cfg.Secret(), cfg.Timeout())
	}
	return sp.wallet
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}

		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) PlayerRepository(ctx context.Context) repository.PlayerRepository {
	if sp.playerRepo == nil {
		sp.playerRepo = player_repo.NewPlayerRepository(sp.DBClient(ctx))
	}
	return sp.playerRepo
}

func (sp *ServiceProvider) RoundRepository(ctx context.Context) repository.RoundRepository {
	if sp.roundRepo == nil {
		sp.roundRepo = round_repo.NewRoundRepository(sp.DBClient(ctx))
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) SpinService(ctx context.Context) service.SpinService {
	if sp.spinServ == nil {
		sp.spinServ = spin.NewSpinService(
			sp.GameCfg(),
			sp.WalletCfg(),
			sp.Wallet(),
			sp.PlayerRepository(ctx),
			sp.RoundRepository(ctx),
			sp.TXManager(ctx),
			logger.L(),
		)
	}
	return sp.spinServ
}

func (sp *ServiceProvider) SpinHandler(ctx context.Context) *spinAPI.Handler {
	if sp.spinHand == nil {
		sp.spinHand = spinAPI.NewHandler(spinAPI.HandlerDeps{
			Serv: sp.SpinService(ctx),
		})
	}
	return sp.spinHand
}

func (sp *ServiceProvider) ReplayService(ctx context.Context) service.ReplayService {
	if sp.replayServ == nil {
		sp.replayServ = replay.NewReplayService(sp.RoundRepository(ctx))
	}
	return sp.replayServ
}

func (sp *ServiceProvider) ReplayHandler(ctx context.Context) *replayAPI.Handler {
	if sp.replayHand == nil {
		sp.replayHand = replayAPI.NewHandler(replayAPI.HandlerDeps{Serv: sp.ReplayService(ctx)})
	}
	return sp.replayHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			resp.WriteJSONResponse(w, http.StatusOK, map[string]bool{"ok": true})
		})

		// Spin endpoints
		spinHandler := sp.SpinHandler(ctx)
		r.Get("/config", spinHandler.Config)
		r.Get("/player", spinHandler.Player)
		r.Post("/spin", spinHandler.Spin)

		// Replay endpoints
		replayHandler := sp.ReplayHandler(ctx)
		r.Get("/player/{token}/rounds", replayHandler.PlayerRounds)
		r.Route("/replay", func(rr chi.Router) {
			rr.Get("/{roundID}", replayHandler.Round)
			rr.Get("/{roundID}/transactions", replayHandler.Transactions)
		})

		// Prometheus
		r.Handle("/metrics", promhttp.Handler())

		sp.router = r
	}

	return sp.router
}
