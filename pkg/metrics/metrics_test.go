package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vango-dev/vdiff/pkg/vdom"
)

func TestObservePatchesByType(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(WithRegistry(reg))

	m.ObservePatches(vdom.Script{
		vdom.At(0, vdom.SetText("a"), vdom.At(1, vdom.Remove())),
		vdom.At(2, vdom.Remove()),
		vdom.At(3, vdom.Add(vdom.Text("x"))),
	})

	tests := map[string]float64{"TEXT": 1, "REMOVE": 2, "ADD": 1, "REPLACE": 0}
	for typ, want := range tests {
		if got := testutil.ToFloat64(m.patchesApplied.WithLabelValues(typ)); got != want {
			t.Errorf("patches_applied_total{type=%q} = %v, want %v", typ, got, want)
		}
	}
}

func TestObserveRender(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(WithRegistry(reg), WithNamespace("test"))

	m.ObserveRender(ModeMount)
	m.ObserveRender(ModePatch)
	m.ObserveRender(ModePatch)

	expected := `
# HELP test_renders_total Total number of renders by mode
# TYPE test_renders_total counter
test_renders_total{mode="mount"} 1
test_renders_total{mode="patch"} 2
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_renders_total"); err != nil {
		t.Error(err)
	}
}

func TestDurationsAndSessions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(WithRegistry(reg))

	m.ObserveDiff(time.Millisecond)
	m.ObserveApply(2 * time.Millisecond)
	m.ObserveApply(time.Microsecond)
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()
	m.ObserveEvent("click", "success")
	m.ObserveFrame("patches")
	m.WebSocketError("read")

	if n := testutil.CollectAndCount(m.diffDuration); n != 1 {
		t.Errorf("diff histogram series = %d, want 1", n)
	}
	if got := testutil.ToFloat64(m.activeSessions); got != 1 {
		t.Errorf("active_sessions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.eventsTotal.WithLabelValues("click", "success")); got != 1 {
		t.Errorf("events_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.framesSent.WithLabelValues("patches")); got != 1 {
		t.Errorf("frames_sent_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.wsErrors.WithLabelValues("read")); got != 1 {
		t.Errorf("websocket_errors_total = %v, want 1", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, f := range families {
		if f.GetName() == "vdiff_apply_duration_seconds" {
			if c := f.GetMetric()[0].GetHistogram().GetSampleCount(); c != 2 {
				t.Errorf("apply samples = %d, want 2", c)
			}
			return
		}
	}
	t.Error("vdiff_apply_duration_seconds not gathered")
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveRender(ModeMount)
	m.ObservePatches(vdom.Script{vdom.Remove()})
	m.ObserveDiff(time.Second)
	m.ObserveApply(time.Second)
	m.SessionOpened()
	m.SessionClosed()
	m.ObserveEvent("click", "error")
	m.ObserveFrame("mount")
	m.WebSocketError("write")
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(WithRegistry(reg))

	defer func() {
		if recover() == nil {
			t.Error("second registration should panic")
		}
	}()
	New(WithRegistry(reg))
}
