// Package module wires the re-scan runner as a modkit module without routes
package module

import (
	"jobguard/internal/core/thresholds"
	"jobguard/internal/modkit"
	"jobguard/internal/modkit/httpkit"
	alerts "jobguard/internal/services/alerts/domain"
	dupdomain "jobguard/internal/services/duplicates/domain"
	postings "jobguard/internal/services/postings/domain"
	"jobguard/internal/services/rescan/domain"
	"jobguard/internal/services/rescan/guardrails"
	rescansvc "jobguard/internal/services/rescan/service"
)

// Ports exported by the rescan module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements module.Module for re-scans
type Module struct {
	opts  Options
	ports Ports
}

// New constructs the runner, the lease is on when deps.RDS is set
func New(deps modkit.Deps, th thresholds.Config, posts postings.Reader, matcher dupdomain.ServicePort, al alerts.ServicePort) *Module {
	o := FromConfig(deps.Cfg)

	var lease *guardrails.Lease
	if deps.RDS != nil {
		lease = guardrails.NewLease(deps.RDS, o.LeaseKey, "rescan", o.LeaseTTL)
	} else {
		deps.Log.Warn().Msg("rescan: redis disabled, running without a lease")
	}

	run := rescansvc.New(posts, matcher, al, lease, rescansvc.Config{
		PageSize: o.PageSize,
		AutoFlag: th.Matcher.AutoFlag,
	})
	return &Module{opts: o, ports: Ports{Runner: run}}
}

// Options returns the resolved settings
func (m *Module) Options() Options { return m.opts }

// Name returns the module name
func (m *Module) Name() string { return "rescan" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// MountRoutes is a no-op, re-scans run from cmd/jobguard-rescan
func (m *Module) MountRoutes(httpkit.Router) {}
