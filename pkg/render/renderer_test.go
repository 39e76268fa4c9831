package render

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/vango-dev/vdiff/internal/errors"
	"github.com/vango-dev/vdiff/pkg/host"
	"github.com/vango-dev/vdiff/pkg/metrics"
	"github.com/vango-dev/vdiff/pkg/patch"
	"github.com/vango-dev/vdiff/pkg/vdom"
)

var h = vdom.H

func TestRenderMountsNestedElements(t *testing.T) {
	r := New()
	container := host.NewElement("div")

	res := r.RenderContext(context.Background(), h("div", nil, h("span", nil, "Text")), container)

	if !res.Mounted {
		t.Error("first render should mount")
	}
	if got := container.InnerHTML(); got != "<div><span>Text</span></div>" {
		t.Errorf("InnerHTML() = %q", got)
	}
}

func TestRenderUpdatesInPlace(t *testing.T) {
	r := New()
	container := host.NewElement("div")

	r.Render(h("div", nil, h("h1", nil, "Initial")), container)
	if got := container.InnerHTML(); got != "<div><h1>Initial</h1></div>" {
		t.Fatalf("InnerHTML() = %q", got)
	}
	mounted := container.FirstChild()
	heading := mounted.FirstChild()

	res := r.RenderContext(context.Background(), h("div", nil, h("h1", nil, "Updated")), container)

	if res.Mounted || res.Patches.Len() != 1 {
		t.Errorf("result = %+v, want one patch", res)
	}
	if got := container.InnerHTML(); got != "<div><h1>Updated</h1></div>" {
		t.Errorf("InnerHTML() = %q", got)
	}
	if container.ChildCount() != 1 {
		t.Errorf("ChildCount() = %d, want 1", container.ChildCount())
	}
	if container.FirstChild() != mounted || mounted.FirstChild() != heading {
		t.Error("host nodes should be patched, not replaced")
	}
}

func TestRenderLargeIdenticalTree(t *testing.T) {
	paragraphs := func() *vdom.VNode {
		children := make([]any, 1000)
		for i := range children {
			children[i] = h("p", nil, fmt.Sprintf("Paragraph %d", i))
		}
		return h("div", nil, children...)
	}

	r := New()
	container := host.NewElement("div")
	r.Render(paragraphs(), container)

	if n := container.FirstChild().ChildCount(); n != 1000 {
		t.Fatalf("ChildCount() = %d, want 1000", n)
	}

	res := r.RenderContext(context.Background(), paragraphs(), container)
	if !res.Patches.Empty() {
		t.Errorf("identical re-render produced %d patches", res.Patches.Len())
	}
	if n := container.FirstChild().ChildCount(); n != 1000 {
		t.Errorf("ChildCount() = %d after re-render, want 1000", n)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	x := h("div", nil, h("ul", nil, h("li", nil, "a"), h("li", nil, "b")), "tail")
	y := h("div", nil, h("ul", nil, h("li", nil, "A")), h("p", nil, "tail"), h("hr", nil))

	r := New()
	root := host.NewElement("main")
	r.Render(x, root)

	if !vdom.Diff(r.LastRendered(root), x).Empty() {
		t.Error("diff against the last rendered tree should be empty")
	}

	r.Render(y, root)

	fresh := host.NewElement("main")
	fresh.AppendChild(patch.Create(y))
	if root.InnerHTML() != fresh.InnerHTML() {
		t.Errorf("patched %q, fresh %q", root.InnerHTML(), fresh.InnerHTML())
	}
	if r.LastRendered(root) != y {
		t.Error("LastRendered should be the latest tree")
	}
}

func TestRenderReplacesRootElement(t *testing.T) {
	r := New()
	root := host.NewElement("div")
	r.Render(h("p", nil, "Hello"), root)

	r.Render(h("span", nil, "Goodbye"), root)

	if got := root.InnerHTML(); got != "<span>Goodbye</span>" {
		t.Errorf("InnerHTML() = %q", got)
	}
	if r.Mounted(root) != root.FirstChild() {
		t.Error("Mounted should follow a replaced root element")
	}

	r.Render(h("span", nil, "Again"), root)
	if got := root.InnerHTML(); got != "<span>Again</span>" {
		t.Errorf("InnerHTML() = %q", got)
	}
}

func TestRenderNilUnmounts(t *testing.T) {
	r := New()
	root := host.NewElement("div")
	r.Render(h("p", nil, "x"), root)

	res := r.RenderContext(context.Background(), nil, root)

	if !res.Unmounted || root.ChildCount() != 0 {
		t.Errorf("result = %+v, ChildCount() = %d", res, root.ChildCount())
	}
	if r.LastRendered(root) != nil || r.Mounted(root) != nil || r.Roots() != 0 {
		t.Error("unmounted root should have no recorded state")
	}

	if res := r.RenderContext(context.Background(), nil, root); res.Mounted || res.Unmounted {
		t.Errorf("nil render of an empty root = %+v", res)
	}

	r.Render(h("p", nil, "y"), root)
	if got := root.InnerHTML(); got != "<p>y</p>" {
		t.Errorf("remount InnerHTML() = %q", got)
	}
}

func TestRenderIndependentRoots(t *testing.T) {
	r := New()
	a, b := host.NewElement("div"), host.NewElement("div")

	r.Render(h("p", nil, "a1"), a)
	r.Render(h("p", nil, "b1"), b)
	r.Render(h("p", nil, "a2"), a)

	if a.InnerHTML() != "<p>a2</p>" || b.InnerHTML() != "<p>b1</p>" {
		t.Errorf("a = %q, b = %q", a.InnerHTML(), b.InnerHTML())
	}
	if r.Roots() != 2 {
		t.Errorf("Roots() = %d, want 2", r.Roots())
	}

	other := New()
	other.Render(h("p", nil, "mine"), a)
	if a.ChildCount() != 2 {
		t.Errorf("separate renderers keep separate state; ChildCount() = %d", a.ChildCount())
	}
}

func TestRenderDesyncPanics(t *testing.T) {
	r := New()
	root := host.NewElement("div")
	r.Render(h("ul", nil, h("li", nil, "a"), h("li", nil, "b")), root)

	// Someone else removes a child behind the renderer's back.
	root.FirstChild().RemoveChildAt(1)

	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok || errors.Code(err) != "E201" {
			t.Errorf("recovered %v, want an E201 error", rec)
		}
	}()
	r.Render(h("ul", nil, h("li", nil, "a"), h("li", nil, "B")), root)
}

func TestDefaultRenderer(t *testing.T) {
	root := host.NewElement("div")
	Render(h("p", nil, "one"), root)
	Render(h("p", nil, "two"), root)

	if root.InnerHTML() != "<p>two</p>" {
		t.Errorf("InnerHTML() = %q", root.InnerHTML())
	}
	if LastRendered(root) == nil {
		t.Error("default renderer should record the root")
	}
}

func TestRenderMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(WithMetrics(metrics.New(metrics.WithRegistry(reg))))
	root := host.NewElement("div")

	r.Render(h("ul", nil, h("li", nil, "a")), root)
	r.Render(h("ul", nil, h("li", nil, "b"), h("li", nil, "c")), root)
	r.Render(h("ul", nil, h("li", nil, "b"), h("li", nil, "c")), root)
	r.Render(nil, root)

	n, err := testutil.GatherAndCount(reg, "vdiff_renders_total")
	if err != nil || n != 4 {
		t.Errorf("render modes = %d (%v), want 4", n, err)
	}
	n, err = testutil.GatherAndCount(reg, "vdiff_patches_applied_total")
	if err != nil || n != 3 {
		t.Errorf("patch types = %d, want 3 (TEXT, ADD, REMOVE)", n)
	}
}

func TestRenderSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	r := New(WithTracer(provider.Tracer("test")))
	root := host.NewElement("div")

	r.Render(h("p", nil, "a"), root)
	r.Render(h("p", nil, "b"), root)

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("spans = %d, want 2", len(spans))
	}
	attrs := map[string]any{}
	for _, kv := range spans[1].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	if spans[1].Name() != "vdiff.render" {
		t.Errorf("span name = %q", spans[1].Name())
	}
	if attrs["vdiff.mounted"] != false || attrs["vdiff.patch_count"] != int64(1) {
		t.Errorf("attributes = %v", attrs)
	}
}

func BenchmarkRenderCounter(b *testing.B) {
	view := func(n int) *vdom.VNode {
		return h("div", nil, h("h1", nil, fmt.Sprintf("Counter: %d", n)), h("button", nil, "Increment"))
	}
	r := New()
	root := host.NewElement("div")
	r.Render(view(0), root)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(view(i+1), root)
	}
}
