// Package network implements Network, the propagation engine: a
// bipartite collection of contractor.Record entities and the
// domain.Domain values they act on, driven to a fixed point by
// Contract. Domains are deduplicated by storage identity
// (domain.Domain.Same), and records are re-enqueued only when a
// contraction they triggered shrank a shared domain by at least
// FixedpointRatio, mirroring the tubex-lib CtcStack / Ctc::isInStack
// bookkeeping this package generalizes beyond tubes.
package network
