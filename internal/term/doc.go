// Package term implements the fake-terminal core as an explicit state
// machine driven by a frame tick instead of a render loop.
//
// A [Terminal] holds the presentation state (colors, font sizes, the
// reflowed message, the input line) and moves through the states
//
//	Idle -> Typing -> AwaitingContinue -> Idle
//	Idle -> Typing -> AwaitingInput    -> Idle
//	Idle -> Typing -> Idle (timed show)
//	Idle -> ArtDisplay -> Idle
//
// with [StateClosed] absorbing every operation. The terminal never
// blocks and never reads a clock: callers thread the current time
// through [Terminal.Advance] and [Terminal.FrameAt], which makes every
// transition deterministic and testable.
//
// [Terminal.FrameAt] computes what is visible at a given instant — the
// typewriter progress of the current message, the blink phase of the
// input cursor and continue prompt — as a pure function of elapsed time.
// The surrounding event loop owns pacing, input events and cancellation.
package term
