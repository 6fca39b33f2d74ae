package device

import (
	"sync"
	"testing"

	"github.com/devprop-protocol/devprop-go/pkg/log"
	"github.com/devprop-protocol/devprop-go/pkg/property"
)

// recorder captures trace events for assertions.
type recorder struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *recorder) Log(event log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) byOp(op log.Op) []log.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []log.Event
	for _, e := range r.events {
		if e.Op == op {
			out = append(out, e)
		}
	}
	return out
}

func TestAccessorTracing(t *testing.T) {
	dev := newFakeDevice()
	rec := &recorder{}
	acc := Accessor{Device: dev, Logger: rec, TraceID: "trace-1"}

	acc.Has(property.New("temperature"))
	if _, err := acc.Get(property.New("temperature")); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if _, err := acc.Set(property.New("samples"), int64(5), 2); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := acc.Bind(property.New("samples")); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if _, err := acc.Extent(property.New("samples")); err != nil {
		t.Fatalf("Extent failed: %v", err)
	}
	_, _ = acc.Get(property.New("pressure")) // fails, still traced

	probes := rec.byOp(log.OpProbe)
	if len(probes) != 1 {
		t.Errorf("probe events = %d, want 1", len(probes))
	}

	reads := rec.byOp(log.OpRead)
	if len(reads) != 2 {
		t.Fatalf("read events = %d, want 2", len(reads))
	}
	ok, failed := reads[0], reads[1]
	if ok.Value != 21.5 || ok.Failed() {
		t.Errorf("successful read event = %+v", ok)
	}
	if !failed.Failed() || failed.Property != "pressure" {
		t.Errorf("failed read event = %+v", failed)
	}

	writes := rec.byOp(log.OpWrite)
	if len(writes) != 1 {
		t.Fatalf("write events = %d, want 1", len(writes))
	}
	if writes[0].Value != int64(5) || len(writes[0].Indices) != 1 || writes[0].Indices[0] != 2 {
		t.Errorf("write event = %+v", writes[0])
	}

	if len(rec.byOp(log.OpBind)) != 1 {
		t.Error("bind event missing")
	}
	if len(rec.byOp(log.OpExtent)) != 1 {
		t.Error("extent event missing")
	}

	for _, e := range rec.events {
		if e.TraceID != "trace-1" {
			t.Errorf("event missing trace ID: %+v", e)
		}
		if e.DeviceID != "fake-1" {
			t.Errorf("event missing device ID: %+v", e)
		}
		if !e.Checked {
			t.Errorf("checked accessor must emit Checked events: %+v", e)
		}
	}
}

func TestAccessorNilLogger(t *testing.T) {
	dev := newFakeDevice()
	acc := Accessor{Device: dev}

	// Must not panic without a logger.
	acc.Has(property.New("temperature"))
	if _, err := acc.Get(property.New("temperature")); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
}
