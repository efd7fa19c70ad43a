// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"jobguard/internal/modkit"
	"jobguard/internal/modkit/httpkit"
	"jobguard/internal/modkit/module"
	str "jobguard/internal/platform/strings"

	metahttp "jobguard/internal/services/api/meta/http"
)

// ServiceName is reported by health and service endpoints
const ServiceName = "jobguard-api"

// Module implements module.Module for meta endpoints
type Module struct {
	b         modkit.Built
	deps      modkit.Deps
	startedAt time.Time
}

var _ module.Module = (*Module)(nil)

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)
	return &Module{b: b, deps: deps, startedAt: time.Now()}
}

// MountRoutes implements module.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		d := metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.startedAt,
			PG:          m.deps.PG,
			CH:          m.deps.CH,
			RDS:         m.deps.RDS,
		}
		metahttp.Register(rr, d)
	})
}

// Name implements module.Module
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports implements module.Module
func (m *Module) Ports() any { return nil }
