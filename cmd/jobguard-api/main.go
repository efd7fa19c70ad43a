// @title         JobGuard API
// @version       0.1.0
// @description   Duplicate posting and suspicious pattern screening for job boards
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"jobguard/internal/core/thresholds"
	"jobguard/internal/platform/config"
	"jobguard/internal/platform/logger"
	phttp "jobguard/internal/platform/net/http"
	"jobguard/internal/platform/store"

	"jobguard/internal/services/api"
)

func main() {
	// a missing .env is fine, the environment wins anyway
	_ = godotenv.Load()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")
	rdsCfg := root.Prefix("SERVICE_REDIS_")

	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chOn := chCfg.MayBool("ENABLED", false)
	rdsOn := rdsCfg.MayBool("ENABLED", false)

	st, err := store.Open(ctx, store.Config{
		AppName: "jobguard-api",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 8)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
		CH: store.CHConfig{
			Enabled:    chOn,
			URL:        chCfg.MayString("DBURL", ""),
			ClientName: "jobguard",
			ClientTag:  "api",
		},
		RDS: store.RedisConfig{
			Enabled: rdsOn,
			URL:     rdsCfg.MayString("URL", ""),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if apiCfg.MayBool("AUTO_MIGRATE", false) {
		if err := st.Migrate(ctx); err != nil {
			l.Panic().Err(err).Msg("migrate failed")
		}
		l.Info().Msg("schema migrated")
	}

	th := thresholds.MustLoad(root)
	l.Info().Str("thresholds", th.String()).Bool("clickhouse", chOn).Bool("redis", rdsOn).Msg("engine configured")

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(ctx, srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		Logger:         l,
		Thresholds:     th,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			l.Error().Err(err).Msg("http shutdown")
		}
	}()

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
