package device

import (
	"errors"
	"testing"

	"github.com/devprop-protocol/devprop-go/pkg/property"
)

func TestBindMissingProperty(t *testing.T) {
	dev := newFakeDevice()

	_, err := Bind(property.New("pressure"), dev)
	if !errors.Is(err, property.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBoundPropertyScalar(t *testing.T) {
	dev := newFakeDevice()

	bp, err := Bind(property.New("temperature"), dev)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	if bp.Rank() != 0 {
		t.Errorf("Rank = %d, want 0", bp.Rank())
	}
	if bp.ElementType() != property.DataTypeFloat64 {
		t.Errorf("ElementType = %s, want float64", bp.ElementType())
	}
	if bp.Key().Name() != "temperature" {
		t.Errorf("Key = %q, want temperature", bp.Key())
	}

	extent, err := bp.Extent()
	if err != nil {
		t.Fatalf("Extent failed: %v", err)
	}
	if len(extent) != 0 {
		t.Errorf("extent = %v, want empty", extent)
	}
	if dev.extentCalls != 0 {
		t.Error("rank-0 Extent must not touch the device")
	}

	size, err := bp.Size()
	if err != nil || size != 1 {
		t.Errorf("Size = (%d, %v), want (1, nil)", size, err)
	}

	v, err := bp.Get()
	if err != nil || v != 21.5 {
		t.Errorf("Get = (%v, %v), want (21.5, nil)", v, err)
	}

	if _, err := bp.Get(0); !errors.Is(err, property.ErrRankMismatch) {
		t.Errorf("indexed scalar read: expected ErrRankMismatch, got %v", err)
	}
	if _, err := bp.Set(20.0); !errors.Is(err, property.ErrWriteNotSupported) {
		t.Errorf("read-only write: expected ErrWriteNotSupported, got %v", err)
	}
}

func TestBoundPropertyVector(t *testing.T) {
	dev := newFakeDevice()

	bp, err := BindName("samples", dev)
	if err != nil {
		t.Fatalf("BindName failed: %v", err)
	}

	if _, err := bp.Set(int64(42), 3); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, err := bp.Get(3)
	if err != nil || v != int64(42) {
		t.Errorf("Get(3) = (%v, %v), want (42, nil)", v, err)
	}

	if _, err := bp.Get(8); !errors.Is(err, property.ErrIndexOutOfRange) {
		t.Errorf("Get(8): expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := bp.Get(-1); !errors.Is(err, property.ErrIndexOutOfRange) {
		t.Errorf("Get(-1): expected ErrIndexOutOfRange, got %v", err)
	}

	extent, err := bp.Extent()
	if err != nil {
		t.Fatalf("Extent failed: %v", err)
	}
	if len(extent) != 1 || extent[0] != 8 {
		t.Errorf("extent = %v, want [8]", extent)
	}

	size, err := bp.Size()
	if err != nil || size != 8 {
		t.Errorf("Size = (%d, %v), want (8, nil)", size, err)
	}
}

func TestBoundPropertyShapeCachedExtentLive(t *testing.T) {
	dev := newFakeDevice()

	bp, err := Bind(property.New("samples"), dev)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	// The device grows the buffer after binding. The cached shape stays
	// fixed; the extent is read live.
	dev.extents["samples"] = []int{16}
	dev.vectors["samples"] = make([]any, 16)

	if bp.Rank() != 1 {
		t.Errorf("Rank = %d, want 1 (cached at bind)", bp.Rank())
	}
	extent, err := bp.Extent()
	if err != nil {
		t.Fatalf("Extent failed: %v", err)
	}
	if len(extent) != 1 || extent[0] != 16 {
		t.Errorf("extent = %v, want [16] (live)", extent)
	}

	// Even if the device's reported shape changes (a contract breach on
	// the device side), the bound property never re-queries it.
	dev.shapes["samples"] = property.Shape{Type: property.DataTypeInt64, Rank: 2}
	if bp.Rank() != 1 {
		t.Errorf("Rank = %d, want 1 after device shape change", bp.Rank())
	}
	if bp.ElementType() != property.DataTypeInt64 {
		t.Errorf("ElementType = %s, want int64", bp.ElementType())
	}
}

func TestBoundPropertyInheritsUnchecked(t *testing.T) {
	dev := newFakeDevice()
	acc := Accessor{Device: dev, Unchecked: true}

	bp, err := acc.Bind(property.New("samples"))
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	before := dev.shapeCalls
	if _, err := bp.Get(0); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if dev.shapeCalls != before {
		t.Error("unchecked bound access must not re-query Shape")
	}
}
