// Package modkit provides module wiring and core deps
package modkit

import (
	"jobguard/internal/modkit/repokit"
	"jobguard/internal/platform/config"
	"jobguard/internal/platform/logger"
	"jobguard/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	// CH and RDS are optional, nil when the backend is disabled
	CH  store.Clickhouse
	RDS store.KV
}
