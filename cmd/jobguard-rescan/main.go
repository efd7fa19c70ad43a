package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"jobguard/internal/core/thresholds"
	"jobguard/internal/modkit"
	"jobguard/internal/modkit/module"
	"jobguard/internal/platform/config"
	"jobguard/internal/platform/logger"
	"jobguard/internal/platform/store"

	alertsmod "jobguard/internal/services/alerts/module"
	dupmod "jobguard/internal/services/duplicates/module"
	postingsmod "jobguard/internal/services/postings/module"
	rescandom "jobguard/internal/services/rescan/domain"
	rescanmod "jobguard/internal/services/rescan/module"
)

func main() {
	_ = godotenv.Load()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	rdsCfg := root.Prefix("SERVICE_REDIS_")

	fEvery := flag.String("every", "", `schedule, e.g. "6h" or a cron expression; empty runs once (falls back to CORE_RESCAN_SCHEDULE)`)
	flag.Parse()

	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.Config{
		AppName: "jobguard-rescan",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
		RDS: store.RedisConfig{
			Enabled: rdsCfg.MayBool("ENABLED", false),
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

	deps := modkit.Deps{
		Log: *l,
		Cfg: root,
		PG:  st.PG,
		RDS: st.RDS,
	}
	th := thresholds.MustLoad(root)

	posts := postingsmod.New(deps, nil)
	pp := module.MustPortsOf[postingsmod.Ports](posts)
	matcher := module.MustPortsOf[dupmod.Ports](dupmod.New(deps, th, pp.Reader)).Matcher
	manager := module.MustPortsOf[alertsmod.Ports](alertsmod.New(deps, th, nil, pp.Binder)).Manager

	rs := rescanmod.New(deps, th, pp.Reader, matcher, manager)
	runner := module.MustPortsOf[rescanmod.Ports](rs).Runner

	sched := scheduleSpec(*fEvery, rs.Options().Schedule)
	if sched == "" {
		if err := runOnce(ctx, runner); err != nil {
			l.Fatal().Err(err).Msg("rescan failed")
		}
		return
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(sched, func() {
		if err := runOnce(ctx, runner); err != nil {
			l.Error().Err(err).Msg("rescan failed")
		}
	}); err != nil {
		l.Fatal().Err(err).Str("schedule", sched).Msg("bad rescan schedule")
	}
	c.Start()
	l.Info().Str("schedule", sched).Msg("rescan scheduled")

	<-ctx.Done()
	// wait for a running pass to finish before the store closes
	<-c.Stop().Done()
	l.Info().Msg("rescan stopped")
}

func runOnce(ctx context.Context, r rescandom.RunnerPort) error {
	rep, err := r.RunOnce(ctx)
	if err != nil {
		return err
	}
	logger.Named("rescan").Info().
		Bool("skipped", rep.Skipped).
		Int("employers", rep.Employers).
		Int("postings", rep.Postings).
		Int("matched", rep.Matched).
		Int("raised", rep.Raised).
		Int("failed", rep.Failed).
		Dur("took", rep.Took).
		Msg("rescan pass done")
	return nil
}
