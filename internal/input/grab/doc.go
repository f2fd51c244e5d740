// Package grab derives the process-wide lock-modifier mask and manages
// the passive grabs that make global bindings fire regardless of input
// focus and lock-key state.
//
// The combinatorial part: with k lock modifiers there are 2^k
// lock-state combinations, and an eligible binding gets one grab per
// combination. The configuration author never enumerates lock states;
// the manager does it here, once, at startup.
package grab
