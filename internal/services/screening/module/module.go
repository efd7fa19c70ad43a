// Package module wires screening into the API using modkit
package module

import (
	"context"

	"jobguard/internal/core/thresholds"
	"jobguard/internal/modkit"
	"jobguard/internal/modkit/httpkit"
	str "jobguard/internal/platform/strings"
	"jobguard/internal/services/screening/domain"
	"jobguard/internal/services/screening/events"
	screeninghttp "jobguard/internal/services/screening/http"
	screeningsvc "jobguard/internal/services/screening/service"
)

// Ports exposed by the screening module
type Ports struct {
	Screener domain.ServicePort
}

// Module implements module.Module for screening
type Module struct {
	b     modkit.Built
	svc   *screeningsvc.Service
	ports Ports
}

// New constructs the screening module over the other modules' ports
// the check event log is on when deps.CH is set
func New(ctx context.Context, deps modkit.Deps, th thresholds.Config, ports screeningsvc.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("screening"),
		modkit.WithPrefix("/screening"),
	}, opts...)...)

	o := FromConfig(deps.Cfg)
	if ports.Events == nil && deps.CH != nil {
		sink := events.NewCH(deps.CH)
		if o.EnsureEvents {
			if err := sink.EnsureSchema(ctx); err != nil {
				deps.Log.Warn().Err(err).Msg("screening: check event table unavailable")
			}
		}
		ports.Events = sink
	}

	svc := screeningsvc.New(ports, screeningsvc.Config{
		EnrichTimeout: o.EnrichTimeout,
		EventTimeout:  o.EventTimeout,
		Risk:          th.Risk,
	})
	m := &Module{b: b, svc: svc}
	m.ports = Ports{Screener: svc}
	return m
}

// MountRoutes mounts the module routes under its prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		screeninghttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "screening") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
