// Package anubis implements the interaction model of a game-launcher home
// screen: a single shared focus state addressed by string identifiers, an
// activation dispatcher that hands typed notifications to the host
// application, a fixed-column grid layout policy for the scrollable tile
// area, and a directional navigation controller for keyboard and game
// controller input.
//
// The package renders nothing itself. A host supplies the event loop and
// presentation; the included Bubble Tea Model is the reference host
// frontend used by cmd/anubis.
//
// Everything here runs on a single logical thread: the host serializes
// input events, every state change propagates to subscribers synchronously,
// and no operation blocks.
package anubis
