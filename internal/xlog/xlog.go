// Package xlog scopes github.com/tliron/commonlog to the "tubex.network"
// logger, the way cmd/kanso-lsp scopes glsp's server logging, so
// network.Network can report contractors pushed on its stack, contractor
// runs that shrank a domain, and fixed-point-ratio crossings without
// every caller wiring up its own logger.
package xlog

import "github.com/tliron/commonlog"

// Name is the commonlog logger name network.Network logs under.
const Name = "tubex.network"

// Get returns the shared "tubex.network" commonlog.Logger.
func Get() commonlog.Logger {
	return commonlog.GetLogger(Name)
}
