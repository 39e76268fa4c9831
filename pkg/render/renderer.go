package render

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vdiff/pkg/host"
	"github.com/vango-dev/vdiff/pkg/metrics"
	"github.com/vango-dev/vdiff/pkg/patch"
	"github.com/vango-dev/vdiff/pkg/vdom"
)

const tracerName = "github.com/vango-dev/vdiff/pkg/render"

// Renderer keeps host roots in sync with the trees rendered into them.
type Renderer struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	mounts  map[*host.Node]*mount
}

// mount is the state recorded for one host root.
type mount struct {
	tree *vdom.VNode
	node *host.Node
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// WithMetrics records renders and patches in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Renderer) {
		r.metrics = m
	}
}

// WithTracer sets the tracer. Default: the global provider's tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Renderer) {
		r.tracer = tracer
	}
}

// New creates a Renderer with no mounted roots.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		mounts: make(map[*host.Node]*mount),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer(tracerName)
	}
	return r
}

// Result describes what one render did.
type Result struct {
	// Mounted is set when the tree was realized from scratch.
	Mounted bool

	// Unmounted is set when rendering nil removed the tree.
	Unmounted bool

	// Patches is the script applied to the host tree. It is nil on mount
	// and empty when nothing changed.
	Patches vdom.Script
}

// Render renders node into root. See RenderContext.
func (r *Renderer) Render(node *vdom.VNode, root *host.Node) {
	r.RenderContext(context.Background(), node, root)
}

// RenderContext renders node into root and reports what changed. ctx only
// carries the trace parent; rendering is not cancellable.
func (r *Renderer) RenderContext(ctx context.Context, node *vdom.VNode, root *host.Node) (result Result) {
	_, span := r.tracer.Start(ctx, "vdiff.render",
		trace.WithAttributes(attribute.String("vdiff.root", root.Tag)),
	)
	defer func() {
		if rec := recover(); rec != nil {
			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.End()
			panic(rec)
		}
		span.SetAttributes(
			attribute.Bool("vdiff.mounted", result.Mounted),
			attribute.Int("vdiff.patch_count", result.Patches.Len()),
		)
		span.SetStatus(codes.Ok, "")
		span.End()
	}()

	m := r.mounts[root]
	if m == nil {
		if node == nil {
			return Result{}
		}
		return r.mount(node, root)
	}

	start := time.Now()
	script := vdom.Diff(m.tree, node)
	r.metrics.ObserveDiff(time.Since(start))

	if script.Empty() {
		m.tree = node
		r.metrics.ObserveRender(metrics.ModeNoop)
		r.logger.Debug("render unchanged", "root", root.Tag)
		return Result{Patches: script}
	}

	start = time.Now()
	m.node = patch.Apply(m.node, script)
	r.metrics.ObserveApply(time.Since(start))
	r.metrics.ObservePatches(script)

	if node == nil {
		delete(r.mounts, root)
		r.metrics.ObserveRender(metrics.ModeUnmount)
		r.logger.Debug("render unmounted", "root", root.Tag)
		return Result{Unmounted: true, Patches: script}
	}

	m.tree = node
	r.metrics.ObserveRender(metrics.ModePatch)
	r.logger.Debug("render patched", "root", root.Tag, "patches", script.Len())
	return Result{Patches: script}
}

func (r *Renderer) mount(node *vdom.VNode, root *host.Node) Result {
	created := patch.Create(node)
	if err := root.AppendChild(created); err != nil {
		panic(err)
	}
	r.mounts[root] = &mount{tree: node, node: created}
	r.metrics.ObserveRender(metrics.ModeMount)
	r.logger.Debug("render mounted", "root", root.Tag, "nodes", node.Count())
	return Result{Mounted: true}
}

// LastRendered returns the tree last rendered into root, or nil.
func (r *Renderer) LastRendered(root *host.Node) *vdom.VNode {
	if m := r.mounts[root]; m != nil {
		return m.tree
	}
	return nil
}

// Mounted returns the host node realized under root for the last rendered
// tree, or nil.
func (r *Renderer) Mounted(root *host.Node) *host.Node {
	if m := r.mounts[root]; m != nil {
		return m.node
	}
	return nil
}

// Roots returns the number of mounted roots.
func (r *Renderer) Roots() int {
	return len(r.mounts)
}

var defaultRenderer = New()

// Render renders node into root with the process-wide default Renderer.
func Render(node *vdom.VNode, root *host.Node) {
	defaultRenderer.Render(node, root)
}

// LastRendered returns the tree last rendered into root by the default
// Renderer.
func LastRendered(root *host.Node) *vdom.VNode {
	return defaultRenderer.LastRendered(root)
}
