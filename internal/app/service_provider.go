package app

import (
	"context"
	authAPI "lotto_backend/internal/api/auth"
	betAPI "lotto_backend/internal/api/bet"
	calcAPI "lotto_backend/internal/api/calc"
	drawAPI "lotto_backend/internal/api/draw"
	historyAPI "lotto_backend/internal/api/history"
	"lotto_backend/internal/client/pilio"
	"lotto_backend/internal/config"
	"lotto_backend/internal/config/env"
	cronrunner "lotto_backend/internal/cron"
	"lotto_backend/internal/logger"
	"lotto_backend/internal/middleware"
	"lotto_backend/internal/model"
	"lotto_backend/internal/repository"
	"lotto_backend/internal/repository/auth_repo"
	"lotto_backend/internal/repository/draw_repo"
	"lotto_backend/internal/repository/history_repo"
	"lotto_backend/internal/repository/slip_repo"
	"lotto_backend/internal/repository/user_repo"
	"lotto_backend/internal/service"
	"lotto_backend/internal/service/auth"
	"lotto_backend/internal/service/calc"
	"lotto_backend/internal/service/draw"
	"lotto_backend/internal/service/history"
	"lotto_backend/internal/service/slip"
	"lotto_backend/internal/service/wager"
	"net/http"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const ratesConfigPath = "config.yaml"

type ServiceProvider struct {
	// Logging
	logCfg config.LogConfig
	log    *zap.Logger

	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	userRepo repository.UserRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// Rates and the engine built from them
	ratesCfg config.RatesConfig
	engine   *wager.Engine

	// Draw bits
	scraperCfg  config.ScraperConfig
	drawClient  *pilio.Client
	drawRepo    repository.DrawRepository
	drawServ    service.DrawService
	drawHand    *drawAPI.Handler
	historyRepo repository.HistoryRepository
	historyServ service.HistoryService
	historyHand *historyAPI.Handler

	// Slip bits
	slipRepo repository.SlipRepository
	slipServ service.SlipService
	betHand  *betAPI.Handler

	// Calculator bits
	calcServ service.CalcService
	calcHand *calcAPI.Handler

	// Background jobs
	cronCfg config.CronConfig
	cron    *cronrunner.Runner

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		l, err := logger.New(sp.LogCfg())
		if err != nil {
			panic("failed to build logger: " + err.Error())
		}
		sp.log = l
	}
	return sp.log
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

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:       sp.AuthService(ctx),
			Log:        sp.Logger(),
			SessionTTL: sp.JWTCfg().RefreshTokenDuration(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) RatesCfg() config.RatesConfig {
	if sp.ratesCfg == nil {
		cfg, err := env.NewRatesConfigFromYAML(ratesConfigPath)
		if err != nil {
			panic("failed to get rates config: " + err.Error())
		}
		sp.ratesCfg = cfg
	}
	return sp.ratesCfg
}

func (sp *ServiceProvider) Engine() *wager.Engine {
	if sp.engine == nil {
		e, err := wager.NewEngine(sp.RatesCfg().RateTable())
		if err != nil {
			panic("failed to create wager engine: " + err.Error())
		}
		sp.engine = e
	}
	return sp.engine
}

func (sp *ServiceProvider) ScraperCfg() config.ScraperConfig {
	if sp.scraperCfg == nil {
		cfg, err := env.NewScraperConfig()
		if err != nil {
			panic("failed to get scraper config: " + err.Error())
		}
		sp.scraperCfg = cfg
	}
	return sp.scraperCfg
}

func (sp *ServiceProvider) DrawClient() *pilio.Client {
	if sp.drawClient == nil {
		sp.drawClient = pilio.NewClient(sp.ScraperCfg())
	}
	return sp.drawClient
}

func (sp *ServiceProvider) DrawRepo(ctx context.Context) repository.DrawRepository {
	if sp.drawRepo == nil {
		sp.drawRepo = draw_repo.NewDrawRepository(sp.DBClient(ctx))
	}
	return sp.drawRepo
}

func (sp *ServiceProvider) DrawService(ctx context.Context) service.DrawService {
	if sp.drawServ == nil {
		sp.drawServ = draw.NewDrawService(sp.DrawRepo(ctx), sp.DrawClient(), sp.Logger())
	}
	return sp.drawServ
}

func (sp *ServiceProvider) DrawHandler(ctx context.Context) *drawAPI.Handler {
	if sp.drawHand == nil {
		sp.drawHand = drawAPI.NewHandler(drawAPI.HandlerDeps{Serv: sp.DrawService(ctx), Log: sp.Logger()})
	}
	return sp.drawHand
}

func (sp *ServiceProvider) HistoryRepo(ctx context.Context) repository.HistoryRepository {
	if sp.historyRepo == nil {
		sp.historyRepo = history_repo.NewHistoryRepository(sp.DBClient(ctx))
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) HistoryService(ctx context.Context) service.HistoryService {
	if sp.historyServ == nil {
		sp.historyServ = history.NewHistoryService(sp.HistoryRepo(ctx))
	}
	return sp.historyServ
}

func (sp *ServiceProvider) HistoryHandler(ctx context.Context) *historyAPI.Handler {
	if sp.historyHand == nil {
		sp.historyHand = historyAPI.NewHandler(historyAPI.HandlerDeps{Serv: sp.HistoryService(ctx), Log: sp.Logger()})
	}
	return sp.historyHand
}

func (sp *ServiceProvider) SlipRepo() repository.SlipRepository {
	if sp.slipRepo == nil {
		sp.slipRepo = slip_repo.NewSlipRepository()
	}
	return sp.slipRepo
}

func (sp *ServiceProvider) SlipService(ctx context.Context) service.SlipService {
	if sp.slipServ == nil {
		sp.slipServ = slip.NewSlipService(
			sp.TXManager(ctx),
			sp.SlipRepo(),
			sp.HistoryRepo(ctx),
			sp.DrawService(ctx),
			sp.Engine(),
			sp.Logger(),
		)
	}
	return sp.slipServ
}

func (sp *ServiceProvider) BetHandler(ctx context.Context) *betAPI.Handler {
	if sp.betHand == nil {
		sp.betHand = betAPI.NewHandler(betAPI.HandlerDeps{Serv: sp.SlipService(ctx), Log: sp.Logger()})
	}
	return sp.betHand
}

func (sp *ServiceProvider) CalcService() service.CalcService {
	if sp.calcServ == nil {
		sp.calcServ = calc.NewCalcService(sp.Engine())
	}
	return sp.calcServ
}

func (sp *ServiceProvider) CalcHandler() *calcAPI.Handler {
	if sp.calcHand == nil {
		sp.calcHand = calcAPI.NewHandler(calcAPI.HandlerDeps{Serv: sp.CalcService(), Log: sp.Logger()})
	}
	return sp.calcHand
}

func (sp *ServiceProvider) CronCfg() config.CronConfig {
	if sp.cronCfg == nil {
		cfg, err := env.NewCronConfig()
		if err != nil {
			panic("failed to get cron config: " + err.Error())
		}
		sp.cronCfg = cfg
	}
	return sp.cronCfg
}

// Cron returns the job runner with the draw prefetch scheduled.
func (sp *ServiceProvider) Cron(ctx context.Context) *cronrunner.Runner {
	if sp.cron == nil {
		r := cronrunner.New(sp.Logger(), ctx, model.DrawZone)
		_, err := r.Add("draw-prefetch", sp.CronCfg().DrawPrefetch(), sp.DrawService(ctx).Prefetch)
		if err != nil {
			panic("failed to schedule draw prefetch: " + err.Error())
		}
		sp.cron = r
	}
	return sp.cron
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

		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           60 * 15,
		}))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Calculator endpoints store nothing and need no login.
		calcHandler := sp.CalcHandler()
		r.Get("/rates", calcHandler.Rates)
		r.Route("/calc", func(rr chi.Router) {
			rr.Post("/quote", calcHandler.Quote)
			rr.Post("/check", calcHandler.Check)
		})

		betHandler := sp.BetHandler(ctx)
		drawHandler := sp.DrawHandler(ctx)
		historyHandler := sp.HistoryHandler(ctx)
		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))

			rr.Route("/bets", func(b chi.Router) {
				b.Get("/", betHandler.List)
				b.Post("/", betHandler.Add)
				b.Delete("/", betHandler.Clear)
				b.Delete("/{id}", betHandler.Remove)
				b.Post("/settle", betHandler.Settle)
			})

			rr.Get("/draws/{date}", drawHandler.Get)
			rr.Put("/draws/{date}", drawHandler.Set)

			rr.Get("/history", historyHandler.List)
		})

		sp.router = r
	}
	return sp.router
}

// Close releases what the provider opened.
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.log != nil {
		_ = sp.log.Sync()
	}
}
