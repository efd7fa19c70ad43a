// Package module wires the alert manager into the API using modkit
package module

import (
	"jobguard/internal/core/thresholds"
	"jobguard/internal/modkit"
	"jobguard/internal/modkit/httpkit"
	"jobguard/internal/modkit/repokit"
	str "jobguard/internal/platform/strings"
	"jobguard/internal/services/alerts/domain"
	alertshttp "jobguard/internal/services/alerts/http"
	alertsrepo "jobguard/internal/services/alerts/repo"
	alertssvc "jobguard/internal/services/alerts/service"
	postings "jobguard/internal/services/postings/domain"
)

// Ports exposed by the alerts module
type Ports struct {
	Manager domain.ServicePort
}

// Module implements module.Module for duplicate alerts
type Module struct {
	b     modkit.Built
	svc   *alertssvc.Service
	ports Ports
}

// New constructs the alerts module
// binder may be nil for the postgres repo, which also gets a review lock timeout
func New(deps modkit.Deps, th thresholds.Config, binder repokit.Binder[domain.Repo], posts repokit.Binder[postings.Repo], opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("alerts"),
		modkit.WithPrefix("/alerts"),
	}, opts...)...)

	o := FromConfig(deps.Cfg)
	db := deps.PG
	if binder == nil {
		binder = alertsrepo.NewPG()
		db = repokit.WithBeginHooks(db, repokit.LockTimeout(o.LockTimeout))
	}

	var pub domain.Publisher
	if deps.RDS != nil {
		pub = deps.RDS
	}
	svc := alertssvc.New(db, binder, posts, pub, alertssvc.Config{
		AutoFlag:       th.Matcher.AutoFlag,
		ListLimit:      o.ListLimit,
		ListMax:        o.ListMax,
		Channel:        o.Channel,
		PublishTimeout: o.PublishTimeout,
	})

	m := &Module{b: b, svc: svc}
	m.ports = Ports{Manager: svc}
	return m
}

// MountRoutes mounts the module routes under its prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		alertshttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "alerts") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
