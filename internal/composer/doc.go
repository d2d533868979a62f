// Package composer implements the ascii-mode decision core of the
// input method: given each physical key event, it decides whether the
// event toggles between native composition and literal ASCII input,
// whether the transient ascii sub-mode engages or disengages, and what
// happens to an in-progress composition when the mode changes.
//
// # Processing cascade
//
// Every key event flows through Process in a fixed priority order:
//
//  1. Forced-exit modifier combos (Shift+Ctrl, Alt, Super)
//  2. Caps Lock handling (when a Caps Lock switch style is configured)
//  3. The dedicated alphanumeric-toggle key
//  4. Solitary Shift/Ctrl chord detection
//  5. Literal inline editing while ascii mode is active
//  6. The temporary-ascii heuristic
//
// Each stage returns Accepted, Rejected or Deferred; the first definite
// verdict stops the cascade and Deferred hands the event to the next
// stage.
//
// # Ownership
//
// A Composer belongs to exactly one session and is mutated only on that
// session's synchronous event path. One event is fully resolved before
// the next is accepted; no locking is used or needed. The chord-toggle
// deadline is the only temporal element and is checked lazily against
// the clock at the next relevant event, never by a background timer.
package composer
