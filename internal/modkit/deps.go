// Package modkit provides module wiring and core deps
package modkit

import (
	"seekdomains/internal/modkit/repokit"
	"seekdomains/internal/platform/config"
	"seekdomains/internal/platform/logger"
	"seekdomains/internal/platform/metrics"
	"seekdomains/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	DB      repokit.TxRunner
	Dialect store.Dialect
	Metrics *metrics.Metrics
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional stores
func (d Deps) ZeroOK() bool { return true }
