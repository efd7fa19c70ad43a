// Package module exposes the duplicate matcher to other modules
package module

import (
	"jobguard/internal/core/similarity"
	"jobguard/internal/core/thresholds"
	"jobguard/internal/modkit"
	"jobguard/internal/modkit/httpkit"
	"jobguard/internal/services/duplicates/domain"
	dupsvc "jobguard/internal/services/duplicates/service"
	postings "jobguard/internal/services/postings/domain"
)

// Ports exposed by the duplicates module
type Ports struct {
	Matcher domain.ServicePort
}

// Module has no routes, screening fronts the matcher
type Module struct {
	ports Ports
}

// New constructs the matcher over a posting reader
func New(deps modkit.Deps, th thresholds.Config, reader postings.Reader) *Module {
	o := FromConfig(deps.Cfg)
	svc := dupsvc.New(reader, similarity.New(th.Similarity), dupsvc.Config{
		Floor: th.Matcher.Floor,
		Limit: o.Limit,
	})
	return &Module{ports: Ports{Matcher: svc}}
}

// Name satisfies module.Module
func (m *Module) Name() string { return "duplicates" }

// Ports satisfies module.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies module.Module
func (m *Module) MountRoutes(httpkit.Router) {}
