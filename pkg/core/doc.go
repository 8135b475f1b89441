// Package core defines the contract every yalem widget implements and the
// values that flow through a widget tree.
//
// # Two passes
//
// A frame walks the tree twice, driven from the root:
//
//   - Measure(ctx) asks a widget how much space it would occupy inside the
//     box described by ctx. It is a pure query with no side effects.
//   - Draw(surface, ctx) renders the widget into ctx and recursively draws
//     its children, each with a Context the parent derives from its own.
//
// Containers derive child contexts only from their incoming Context and
// their configuration, so the same Context always produces the same child
// layout in both passes.
//
// # Events
//
// Dispatch(event) is a broadcast: a container forwards the event to every
// child before reacting itself, and there is no way to stop propagation.
// Every node in the subtree sees every event.
//
// # Ownership
//
// A container owns its children exclusively. Trees are assembled once
// through the builders in package widgets and are not mutated afterwards,
// except by a Stateful widget producing a fresh subtree on each call.
package core
