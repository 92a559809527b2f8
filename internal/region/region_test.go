package region

import (
	"testing"

	"github.com/1broseidon/showimg/internal/config"
	"github.com/1broseidon/showimg/internal/geometry"
	"github.com/google/go-cmp/cmp"
)

func TestCompute_PassthroughAlwaysEmpty(t *testing.T) {
	rects := []geometry.Rect{
		{},
		{X: 0, Y: 0, Width: 800, Height: 400},
		{X: 200, Y: 150, Width: 400, Height: 100},
	}
	for _, r := range rects {
		spec, ok := Compute(config.MousePassthrough, r)
		if !ok {
			t.Fatalf("expected passthrough update to be installed for %+v", r)
		}
		if spec.Kind != Empty {
			t.Fatalf("expected empty region, got %v", spec)
		}
	}
}

func TestCompute_NoneAndDragMatchImageRect(t *testing.T) {
	r := geometry.ImageRect(800, 400, 1.0)
	for _, mode := range []config.MouseBehavior{config.MouseNone, config.MouseDrag} {
		spec, ok := Compute(mode, r)
		if !ok {
			t.Fatalf("%s: expected update", mode)
		}
		if diff := cmp.Diff(Rectangle(r), spec); diff != "" {
			t.Fatalf("%s: region mismatch (-want +got):\n%s", mode, diff)
		}
	}
}

func TestCompute_EmptyRectSkipsUpdate(t *testing.T) {
	for _, mode := range []config.MouseBehavior{config.MouseNone, config.MouseDrag} {
		if _, ok := Compute(mode, geometry.Rect{}); ok {
			t.Fatalf("%s: expected degenerate rect to skip the update", mode)
		}
	}
}

func TestCompute_TracksSurfaceChanges(t *testing.T) {
	a, _ := Compute(config.MouseDrag, geometry.ImageRect(100, 100, 1))
	b, _ := Compute(config.MouseDrag, geometry.ImageRect(200, 100, 1))
	if a == b {
		t.Fatalf("expected region to change with surface size, both %v", a)
	}
	want := Rectangle(geometry.Rect{X: 50, Y: 0, Width: 100, Height: 100})
	if b != want {
		t.Fatalf("expected %v, got %v", want, b)
	}
}

func TestSpec_String(t *testing.T) {
	if got := Rectangle(geometry.Rect{X: 1, Y: 2, Width: 3, Height: 4}).String(); got != "rect(1,2 3x4)" {
		t.Fatalf("unexpected string %q", got)
	}
	if got := None().String(); got != "empty" {
		t.Fatalf("unexpected string %q", got)
	}
	if got := Kind(7).String(); got != "Kind(7)" {
		t.Fatalf("unexpected string %q", got)
	}
}
