// Package input is the input-binding and dispatch engine.
//
// The engine's life runs in phases: bindings are registered while the
// configuration is parsed, resolved and grabbed once at startup, then
// matched against incoming events for the life of the process. A
// restart removes the grabs, releases the table, and re-enters
// registration with a fresh parse; resolved codes and grabs are
// re-derived, never carried over.
//
// Everything runs on the goroutine that services the server event
// queue. Once the event loop starts the table is read-only until the
// next restart or teardown.
package input
