// Package engine provides the reference composition context and engine
// consumed by the composer: named boolean options, a segment-based
// composition with confirm/commit semantics, a bounded commit history,
// and a single-callback update notifier.
//
// The engine belongs to exactly one session and is mutated only on that
// session's synchronous event path; it is not safe for concurrent use.
// Update callbacks fire synchronously within the mutation that changed
// the composition state.
package engine
