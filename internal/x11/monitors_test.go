package x11

import (
	"testing"

	"github.com/1broseidon/showimg/internal/geometry"
)

func TestIntersect(t *testing.T) {
	mon := geometry.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}
	tests := []struct {
		name string
		work geometry.Rect
		want geometry.Rect
	}{
		{"panel on top", geometry.Rect{X: 0, Y: 32, Width: 3840, Height: 1048}, geometry.Rect{X: 1920, Y: 32, Width: 1920, Height: 1048}},
		{"other monitor", geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, geometry.Rect{}},
		{"inside", geometry.Rect{X: 2000, Y: 10, Width: 100, Height: 100}, geometry.Rect{X: 2000, Y: 10, Width: 100, Height: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := intersect(mon, tt.work); got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
