package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestImageRect_EqualRatioTakesWiderBranch(t *testing.T) {
	got := ImageRect(800, 400, 2.0)
	want := Rect{X: 0, Y: 0, Width: 800, Height: 400}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ImageRect mismatch (-want +got):\n%s", diff)
	}
	if o := OrientationOf(800, 400, 2.0); o != Wider {
		t.Fatalf("expected tie to resolve to wider, got %v", o)
	}
}

func TestImageRect_SurfaceTallerThanImage(t *testing.T) {
	// 800/400 = 2 < 4: the image fills the width and is centered vertically.
	got := ImageRect(800, 400, 4.0)
	want := Rect{X: 0, Y: 100, Width: 800, Height: 200}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ImageRect mismatch (-want +got):\n%s", diff)
	}
}

func TestImageRect_SurfaceWiderThanImage(t *testing.T) {
	got := ImageRect(1000, 300, 1.5)
	want := Rect{X: 275, Y: 0, Width: 450, Height: 300}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ImageRect mismatch (-want +got):\n%s", diff)
	}
}

func TestImageRect_OddRemainderFloors(t *testing.T) {
	// width = 100, remainder 101 -> x = 50
	got := ImageRect(201, 100, 1.0)
	if got.X != 50 || got.Width != 100 {
		t.Fatalf("expected x=50 width=100, got x=%d width=%d", got.X, got.Width)
	}
}

func TestImageRect_DegenerateInputIsEmpty(t *testing.T) {
	cases := []struct {
		name  string
		w, h  int
		ratio float64
	}{
		{"zero width", 0, 100, 1},
		{"zero height", 100, 0, 1},
		{"negative width", -5, 100, 1},
		{"negative height", 100, -1, 1},
		{"zero ratio", 100, 100, 0},
		{"nan ratio", 100, 100, math.NaN()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ImageRect(tc.w, tc.h, tc.ratio)
			if !got.Empty() {
				t.Fatalf("expected empty rect, got %+v", got)
			}
			if got != (Rect{}) {
				t.Fatalf("expected zero rect, got %+v", got)
			}
		})
	}
}

func TestImageRect_Idempotent(t *testing.T) {
	a := ImageRect(1366, 768, 4.0/3.0)
	b := ImageRect(1366, 768, 4.0/3.0)
	if a != b {
		t.Fatalf("expected identical results, got %+v and %+v", a, b)
	}
}

func TestImageRect_ContainedAndKeepsRatio(t *testing.T) {
	ratios := []float64{0.1, 0.5, 0.75, 1, 4.0 / 3.0, 16.0 / 9.0, 2.39, 10}
	for w := 1; w <= 257; w += 16 {
		for h := 1; h <= 257; h += 12 {
			for _, ratio := range ratios {
				r := ImageRect(w, h, ratio)
				if r.X < 0 || r.Y < 0 || r.X+r.Width > w || r.Y+r.Height > h {
					t.Fatalf("rect %+v escapes surface %dx%d (ratio %v)", r, w, h, ratio)
				}
				if r.Empty() {
					// Extreme ratios on tiny surfaces can round an extent to zero.
					continue
				}
				// One rounding unit on the derived side.
				if OrientationOf(w, h, ratio) == Wider {
					if math.Abs(float64(r.Width)-float64(r.Height)*ratio) > 1 {
						t.Fatalf("width %d too far from %v*%d", r.Width, ratio, r.Height)
					}
				} else {
					if math.Abs(float64(r.Height)-float64(r.Width)/ratio) > 1 {
						t.Fatalf("height %d too far from %d/%v", r.Height, r.Width, ratio)
					}
				}
			}
		}
	}
}

func TestOrientation_Alignment(t *testing.T) {
	h, v := Wider.Alignment()
	if h != AlignCenter || v != AlignFill {
		t.Fatalf("expected wider -> (center, fill), got (%v, %v)", h, v)
	}
	h, v = Taller.Alignment()
	if h != AlignFill || v != AlignCenter {
		t.Fatalf("expected taller -> (fill, center), got (%v, %v)", h, v)
	}
}

func TestFitWithin(t *testing.T) {
	work := Rect{X: 100, Y: 30, Width: 1000, Height: 500}
	tests := []struct {
		name string
		w, h int
		want Rect
	}{
		{"natural size", 200, 100, Rect{X: 500, Y: 230, Width: 200, Height: 100}},
		{"too wide", 4000, 1000, Rect{X: 100, Y: 155, Width: 1000, Height: 250}},
		{"too tall", 100, 1000, Rect{X: 575, Y: 30, Width: 50, Height: 500}},
		{"empty image", 0, 10, Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, FitWithin(work, tt.w, tt.h)); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
