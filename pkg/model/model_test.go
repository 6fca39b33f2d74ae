package model

import (
	"errors"
	"testing"

	"github.com/devprop-protocol/devprop-go/pkg/property"
)

func newTestDevice(t *testing.T) *Device {
	t.Helper()
	dev, err := NewDevice("dev-1",
		Metadata{
			Name:    "temperature",
			Type:    property.DataTypeFloat64,
			Access:  AccessReadOnly,
			Default: 21.5,
			Unit:    "°C",
		},
		Metadata{
			Name:    "samples",
			Type:    property.DataTypeInt64,
			Rank:    1,
			Extent:  []int{8},
			Access:  AccessReadWrite,
			Default: int64(0),
		},
		Metadata{
			Name:   "calibration",
			Type:   property.DataTypeFloat64,
			Access: AccessWriteOnly,
		},
		Metadata{
			Name:    "grid",
			Type:    property.DataTypeFloat64,
			Rank:    2,
			Extent:  []int{3, 4},
			Access:  AccessReadWrite,
			Default: 0.0,
		},
	)
	if err != nil {
		t.Fatalf("NewDevice failed: %v", err)
	}
	return dev
}

func TestDeclarationValidation(t *testing.T) {
	tests := []struct {
		name string
		meta Metadata
	}{
		{"empty name", Metadata{Type: property.DataTypeBool}},
		{"negative rank", Metadata{Name: "x", Rank: -1}},
		{"rank without extent", Metadata{Name: "x", Rank: 1}},
		{"extent without rank", Metadata{Name: "x", Extent: []int{4}}},
		{"zero extent size", Metadata{Name: "x", Rank: 1, Extent: []int{0}}},
		{"default type mismatch", Metadata{Name: "x", Type: property.DataTypeInt32, Default: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDevice("d", tt.meta)
			if !errors.Is(err, ErrBadDeclaration) {
				t.Errorf("expected ErrBadDeclaration, got %v", err)
			}
		})
	}
}

func TestDuplicateProperty(t *testing.T) {
	dev := newTestDevice(t)
	err := dev.AddProperty(Metadata{Name: "temperature", Type: property.DataTypeFloat64})
	if !errors.Is(err, ErrDuplicateProperty) {
		t.Errorf("expected ErrDuplicateProperty, got %v", err)
	}
}

func TestGeneratedDeviceID(t *testing.T) {
	dev, err := NewDevice("")
	if err != nil {
		t.Fatalf("NewDevice failed: %v", err)
	}
	if dev.DeviceID() == "" {
		t.Error("empty id must be replaced with a generated one")
	}
}

func TestShapeAndExtent(t *testing.T) {
	dev := newTestDevice(t)

	shape, err := dev.Shape(property.New("samples"))
	if err != nil {
		t.Fatalf("Shape failed: %v", err)
	}
	if shape.Rank != 1 || shape.Type != property.DataTypeInt64 {
		t.Errorf("shape = %v, want int64[1]", shape)
	}

	extent, err := dev.Extent(property.New("samples"))
	if err != nil {
		t.Fatalf("Extent failed: %v", err)
	}
	if len(extent) != 1 || extent[0] != 8 {
		t.Errorf("extent = %v, want [8]", extent)
	}

	_, err = dev.Shape(property.New("pressure"))
	if !errors.Is(err, property.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestScalarDefaults(t *testing.T) {
	dev := newTestDevice(t)

	v, err := dev.Get(property.New("temperature"))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v != 21.5 {
		t.Errorf("default = %v, want 21.5", v)
	}
}

func TestAccessEnforcement(t *testing.T) {
	dev := newTestDevice(t)

	err := dev.Set(property.New("temperature"), 25.0)
	if !errors.Is(err, property.ErrWriteNotSupported) {
		t.Errorf("read-only write: expected ErrWriteNotSupported, got %v", err)
	}

	_, err = dev.Get(property.New("calibration"))
	if !errors.Is(err, property.ErrReadNotSupported) {
		t.Errorf("write-only read: expected ErrReadNotSupported, got %v", err)
	}
	if err := dev.Set(property.New("calibration"), 1.5); err != nil {
		t.Errorf("write-only write failed: %v", err)
	}
}

func TestTypeEnforcement(t *testing.T) {
	dev := newTestDevice(t)

	err := dev.Set(property.New("samples"), "text", 0)
	if !errors.Is(err, property.ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch, got %v", err)
	}

	// Integer family is interchangeable.
	if err := dev.Set(property.New("samples"), int32(7), 0); err != nil {
		t.Errorf("int32 into int64 property failed: %v", err)
	}
}

func TestRankAndBounds(t *testing.T) {
	dev := newTestDevice(t)

	_, err := dev.Get(property.New("temperature"), 0)
	if !errors.Is(err, property.ErrRankMismatch) {
		t.Errorf("indexed scalar: expected ErrRankMismatch, got %v", err)
	}
	_, err = dev.Get(property.New("samples"))
	if !errors.Is(err, property.ErrRankMismatch) {
		t.Errorf("unindexed vector: expected ErrRankMismatch, got %v", err)
	}
	_, err = dev.Get(property.New("samples"), 8)
	if !errors.Is(err, property.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	_, err = dev.Get(property.New("samples"), -1)
	if !errors.Is(err, property.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	dev := newTestDevice(t)

	for i := 0; i < 8; i++ {
		if err := dev.Set(property.New("samples"), int64(i*10), i); err != nil {
			t.Fatalf("Set(%d) failed: %v", i, err)
		}
	}
	for i := 0; i < 8; i++ {
		v, err := dev.Get(property.New("samples"), i)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", i, err)
		}
		if v != int64(i*10) {
			t.Errorf("Get(%d) = %v, want %d", i, v, i*10)
		}
	}
}

func TestGridRowMajor(t *testing.T) {
	dev := newTestDevice(t)
	key := property.New("grid")

	if err := dev.Set(key, 1.25, 2, 3); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, err := dev.Get(key, 2, 3)
	if err != nil || v != 1.25 {
		t.Errorf("Get(2,3) = (%v, %v), want (1.25, nil)", v, err)
	}

	// Neighbors untouched.
	v, err = dev.Get(key, 2, 2)
	if err != nil || v != 0.0 {
		t.Errorf("Get(2,2) = (%v, %v), want (0, nil)", v, err)
	}

	_, err = dev.Get(key, 2, 4)
	if !errors.Is(err, property.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	_, err = dev.Get(key, 2)
	if !errors.Is(err, property.ErrRankMismatch) {
		t.Errorf("expected ErrRankMismatch, got %v", err)
	}
}

func TestSetInternal(t *testing.T) {
	dev := newTestDevice(t)

	if err := dev.SetInternal("temperature", 23.75); err != nil {
		t.Fatalf("SetInternal failed: %v", err)
	}
	v, err := dev.Get(property.New("temperature"))
	if err != nil || v != 23.75 {
		t.Errorf("Get = (%v, %v), want (23.75, nil)", v, err)
	}

	// Type is still enforced.
	err = dev.SetInternal("temperature", "hot")
	if !errors.Is(err, property.ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestResize(t *testing.T) {
	dev := newTestDevice(t)
	key := property.New("samples")

	for i := 0; i < 8; i++ {
		if err := dev.Set(key, int64(i), i); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	t.Run("GrowPreserves", func(t *testing.T) {
		if err := dev.Resize("samples", []int{12}); err != nil {
			t.Fatalf("Resize failed: %v", err)
		}
		for i := 0; i < 8; i++ {
			v, err := dev.Get(key, i)
			if err != nil || v != int64(i) {
				t.Errorf("Get(%d) = (%v, %v), want (%d, nil)", i, v, err, i)
			}
		}
		// New cells take the default.
		v, err := dev.Get(key, 10)
		if err != nil || v != int64(0) {
			t.Errorf("Get(10) = (%v, %v), want (0, nil)", v, err)
		}
	})

	t.Run("ShrinkClips", func(t *testing.T) {
		if err := dev.Resize("samples", []int{4}); err != nil {
			t.Fatalf("Resize failed: %v", err)
		}
		v, err := dev.Get(key, 3)
		if err != nil || v != int64(3) {
			t.Errorf("Get(3) = (%v, %v), want (3, nil)", v, err)
		}
		_, err = dev.Get(key, 4)
		if !errors.Is(err, property.ErrIndexOutOfRange) {
			t.Errorf("expected ErrIndexOutOfRange after shrink, got %v", err)
		}
	})

	t.Run("RankIsFixed", func(t *testing.T) {
		err := dev.Resize("samples", []int{4, 2})
		if !errors.Is(err, property.ErrRankMismatch) {
			t.Errorf("expected ErrRankMismatch, got %v", err)
		}
		err = dev.Resize("temperature", []int{4})
		if !errors.Is(err, property.ErrRankMismatch) {
			t.Errorf("scalar resize: expected ErrRankMismatch, got %v", err)
		}
	})
}

func TestResizeGridPreservesOverlap(t *testing.T) {
	dev := newTestDevice(t)
	key := property.New("grid")

	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			if err := dev.Set(key, float64(i*10+j), i, j); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
		}
	}

	// Grow rows, shrink columns: overlap is [0,3)x[0,2).
	if err := dev.Resize("grid", []int{5, 2}); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			v, err := dev.Get(key, i, j)
			if err != nil || v != float64(i*10+j) {
				t.Errorf("Get(%d,%d) = (%v, %v), want %d", i, j, v, err, i*10+j)
			}
		}
	}
	v, err := dev.Get(key, 4, 1)
	if err != nil || v != 0.0 {
		t.Errorf("new cell Get(4,1) = (%v, %v), want (0, nil)", v, err)
	}
}

func TestPropertiesOrder(t *testing.T) {
	dev := newTestDevice(t)

	keys := dev.Properties()
	want := []string{"temperature", "samples", "calibration", "grid"}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(keys), len(want))
	}
	for i, name := range want {
		if keys[i].Name() != name {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], name)
		}
	}
}

func TestAccessModeString(t *testing.T) {
	tests := []struct {
		mode AccessMode
		want string
	}{
		{AccessReadOnly, "R"},
		{AccessWriteOnly, "W"},
		{AccessReadWrite, "RW"},
		{AccessMode(0), "-"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("AccessMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
