// Package module exposes job posting storage to the other modules
package module

import (
	"jobguard/internal/modkit"
	"jobguard/internal/modkit/httpkit"
	"jobguard/internal/modkit/repokit"
	"jobguard/internal/services/postings/domain"
	"jobguard/internal/services/postings/repo"
)

// Ports exposed by the postings module
type Ports struct {
	// Binder binds the repo to a queryer so writers can join a caller's tx
	Binder repokit.Binder[domain.Repo]
	// Reader reads outside any tx
	Reader domain.Reader
}

// Module owns no routes, job storage lives elsewhere
type Module struct {
	ports Ports
}

// New constructs the postings module over deps.PG
// a non nil binder replaces the postgres one
func New(deps modkit.Deps, binder repokit.Binder[domain.Repo]) *Module {
	if binder == nil {
		binder = repo.NewPG()
	}
	return &Module{ports: Ports{
		Binder: binder,
		Reader: binder.Bind(deps.PG),
	}}
}

// Name satisfies module.Module
func (m *Module) Name() string { return "postings" }

// Ports satisfies module.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies module.Module
func (m *Module) MountRoutes(httpkit.Router) {}
