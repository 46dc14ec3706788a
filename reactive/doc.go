// Package reactive is a small fine-grained reactive runtime: signals hold
// values, effects re-run when the signals they read change, and scopes own
// effects and cleanups so whole subtrees can be torn down at once.
//
// Effects run one at a time. A signal write made while effects are
// running is queued and drained before the outermost batch returns.
// Signals read outside an effect are not tracked.
package reactive
