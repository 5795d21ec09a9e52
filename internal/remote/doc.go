// Package remote defines the seam to the remote folder store and the
// retrying accessor every scan goes through.
//
// The store itself (a cloud drive, an export, a fake in tests) stays behind
// the Store interface: list children of a folder by identifier, fetch single
// item metadata. Errors cross the seam as StatusError values carrying an
// HTTP-like status code so the accessor can tell transient overload apart
// from permanent failures.
//
// Accessor wraps a Store with bounded exponential-backoff retry on transient
// codes and a TTL cache of folder metadata. Both the cache and the retry
// policy are scoped to one accessor instance, which is in turn scoped to one
// scan invocation.
package remote
