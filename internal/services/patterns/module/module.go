// Package module wires posting patterns into the API using modkit
package module

import (
	"jobguard/internal/core/thresholds"
	"jobguard/internal/modkit"
	"jobguard/internal/modkit/httpkit"
	"jobguard/internal/modkit/repokit"
	str "jobguard/internal/platform/strings"
	"jobguard/internal/services/patterns/domain"
	patternshttp "jobguard/internal/services/patterns/http"
	patternsrepo "jobguard/internal/services/patterns/repo"
	patternssvc "jobguard/internal/services/patterns/service"
)

// Ports exposed by the patterns module
type Ports struct {
	Tracker domain.ServicePort
}

// Module implements module.Module for posting patterns
type Module struct {
	b     modkit.Built
	svc   *patternssvc.Service
	opts  Options
	ports Ports
}

// New constructs the patterns module
// binder may be nil for the postgres repo
func New(deps modkit.Deps, th thresholds.Config, binder repokit.Binder[domain.Repo], opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("patterns"),
		modkit.WithPrefix("/patterns"),
	}, opts...)...)

	if binder == nil {
		binder = patternsrepo.NewPG()
	}
	o := FromConfig(deps.Cfg)
	svc := patternssvc.New(deps.PG, binder, patternssvc.Config{
		Timeout:   o.Timeout,
		Attempts:  o.Attempts,
		ListLimit: o.ListLimit,
		ListMax:   o.ListMax,
		Suspicion: th.Suspicion,
	})

	m := &Module{b: b, svc: svc, opts: o}
	m.ports = Ports{Tracker: svc}
	return m
}

// MountRoutes mounts the module routes under its prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		patternshttp.Register(rr, m.svc, m.opts.Threshold)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "patterns") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
