// Package render mounts virtual trees into host roots and keeps them in sync.
//
// The first Render for a host root realizes the whole tree and appends it
// under the root. Every later Render for the same root diffs the new tree
// against the last rendered one and applies only the resulting patches:
//
//	r := render.New()
//	root := host.NewElement("div")
//	r.Render(view(0), root) // mounts
//	r.Render(view(1), root) // patches
//
// Rendering nil unmounts the tree; the next Render mounts from scratch.
//
// # State
//
// A Renderer records, per host root, the last rendered tree and the host
// node realized for it. Roots are independent of each other. A Renderer does
// no locking: callers serialize renders, and a live session owns its own
// Renderer.
//
// # Observability
//
// WithLogger, WithMetrics and WithTracer attach structured logging,
// Prometheus collectors and OpenTelemetry spans. All three are optional.
//
// # Failure
//
// If the host tree under a root was changed behind the Renderer's back,
// patch application panics with a coded error (see package patch). The
// panic propagates out of Render and patches already applied stay applied.
package render
