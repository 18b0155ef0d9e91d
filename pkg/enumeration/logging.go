package enumeration

import (
	"sync"

	"github.com/bft-labs/domainkit/pkg/log"
)

var (
	loggerMu  sync.RWMutex
	pkgLogger log.Logger = log.NewNoopLogger()
)

// SetLogger routes set diagnostics (index builds, rejected declarations)
// to the given logger. The default discards everything. Passing nil
// restores the default. Safe to call concurrently with lookups.
func SetLogger(l log.Logger) {
	if l == nil {
		l = log.NewNoopLogger()
	}
	loggerMu.Lock()
	pkgLogger = l
	loggerMu.Unlock()
}

func logger() log.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return pkgLogger
}
