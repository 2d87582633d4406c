// Package ui contains the Bubble Tea program that drives the key/value editor.
// The Model owns one editor.State and is its only caller; every mutation of
// the pairs, buffers, and modes happens synchronously inside Model.Update.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry. Key presses
//     are dispatched by the current editor screen: the main listing, the pair
//     editing panel, the load prompt, or the exit confirmation.
//   - The load prompt is a small form wrapping a Bubbles text input
//     (internal/ui/load.go). When it completes, the file is loaded in place
//     and the screen returns to the listing.
//
// State ownership:
//   - editor.State holds everything that is part of the document: committed
//     pairs, the key/value buffers, and the screen/edit/load modes.
//   - internal/ui/state.List holds view-only state for the listing: the fuzzy
//     filter, the cursor, and the viewport offset. It is refreshed from the
//     editor pairs after every commit or load.
//
// The Harness type drives a Model without a terminal so flows can be tested
// end to end.
package ui
