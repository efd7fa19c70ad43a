// Package api provides the HTTP API for the application
package api

//go:generate swag init --v3.1 -d ../../../ -g cmd/jobguard-api/main.go -o internal/services/api/docs --parseInternal

import (
	"context"

	"jobguard/internal/core/thresholds"
	"jobguard/internal/core/version"
	"jobguard/internal/platform/config"
	"jobguard/internal/platform/logger"
	phttp "jobguard/internal/platform/net/http"
	"jobguard/internal/platform/store"

	"jobguard/internal/modkit"
	"jobguard/internal/modkit/httpkit"
	"jobguard/internal/modkit/module"
	"jobguard/internal/modkit/swaggerkit"

	alertsmod "jobguard/internal/services/alerts/module"
	metamod "jobguard/internal/services/api/meta/module"
	dupmod "jobguard/internal/services/duplicates/module"
	patternsmod "jobguard/internal/services/patterns/module"
	postingsmod "jobguard/internal/services/postings/module"
	screeningmod "jobguard/internal/services/screening/module"
	screeningsvc "jobguard/internal/services/screening/service"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Thresholds     thresholds.Config
	EnableSwagger  bool
	EnableProfiler bool
}

func init() { swaggerkit.Register(stampVersion) }

// stampVersion reports the running build in the served document
func stampVersion(spec map[string]any) {
	info, ok := spec["info"].(map[string]any)
	if !ok {
		return
	}
	if v := version.Info().Version; v != "dev" {
		info["version"] = v
	}
	info["x-service"] = version.Info().Service
}

// Modules builds every engine module over the store, in dependency order
// the rescan binary reuses this without mounting routes
func Modules(ctx context.Context, opt Options) []module.Module {
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
		RDS: opt.Store.RDS,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	th := opt.Thresholds

	posts := postingsmod.New(deps, nil)
	pp := module.MustPortsOf[postingsmod.Ports](posts)

	dups := dupmod.New(deps, th, pp.Reader)
	matcher := module.MustPortsOf[dupmod.Ports](dups).Matcher

	pats := patternsmod.New(deps, th, nil)
	alerts := alertsmod.New(deps, th, nil, pp.Binder)

	screen := screeningmod.New(ctx, deps, th, screeningsvc.Deps{
		Postings: pp.Reader,
		Matcher:  matcher,
		Patterns: module.MustPortsOf[patternsmod.Ports](pats).Tracker,
		Alerts:   module.MustPortsOf[alertsmod.Ports](alerts).Manager,
	})

	return []module.Module{
		metamod.New(deps),
		posts,
		dups,
		pats,
		alerts,
		screen,
	}
}

// Mount mounts the API service onto the given router
func Mount(ctx context.Context, r phttp.Router, opt Options) {
	mods := Modules(ctx, opt)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			if opt.Logger != nil {
				opt.Logger.Debug().Str("module", m.Name()).Msg("api: mounting module")
			}
			m.MountRoutes(api)
		}
	})
}
