// Package binding holds the registered key and button bindings and
// matches incoming input events against them.
//
// The table preserves a "last registration wins" override semantic:
// records are kept in registration order and matched newest-first,
// which lets layered configuration replace earlier bindings without
// removing them.
//
// Lifecycle: registration during configuration parsing, one resolution
// pass at startup (symbol to keycode, cached in place), read-only
// matching while the event loop runs, Release at teardown or before a
// restart-driven re-parse.
package binding
