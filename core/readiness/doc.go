// Package readiness decides whether an object client can back the host's
// file storage.
//
// # Evaluation order
//
// Evaluate is a pure function of the client and its configuration. It runs
// the following checks in order and returns at the first failure:
//
//  1. the host declares a filesystem (host_config)
//  2. the declared filesystem equals the selected provider (provider_mismatch)
//  3. the provider SDK is available (availability)
//  4. a connection can be established (connection)
//  5. the permission test passes without delete (permissions)
//
// Nothing is cached. Every call repeats the checks that are reached.
//
// # Observers
//
// Checker wraps Evaluate and hands each Decision to its observers. The
// LogObserver writes "Object client is not ready" at debug level; the
// metrics package provides a Prometheus observer.
//
//	checker := readiness.NewChecker(readiness.NewLogObserver(log), metrics.New(reg))
//	if checker.IsReady(ctx, client, client.Config()) { ... }
package readiness
