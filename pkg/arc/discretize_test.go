package arc

import (
	"errors"
	"math"
	"testing"
)

func TestDiscretizeOpen(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		scale  float64
	}{
		{"unit semicircle", []Point{{1, 0}, {0, 1}, {-1, 0}}, 1.0},
		{"large arc", []Point{{1, 0}, {0, 1}, {0, -1}}, 1.0},
		{"small span", []Point{{1, 0}, {0.9952, 0.0980}, {0.9801, 0.1987}}, 1.0},
		{"scaled", []Point{{10, 0}, {0, 10}, {-10, 0}}, 10.0},
		{"planar 3D", []Point{{1, 0, 2}, {0, 1, 2}, {-1, 0, 2}}, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := DefaultResolution
			discrete, err := Discretize(tt.points, false, tt.scale, res)
			if err != nil {
				t.Fatalf("Discretize() error = %v", err)
			}
			if len(discrete) < 4 {
				t.Fatalf("got %d points, want >= 4", len(discrete))
			}
			if d := dist(discrete[0], tt.points[0]); d > res.Merge {
				t.Errorf("first point deviates from input by %g", d)
			}
			if d := dist(discrete[len(discrete)-1], tt.points[2]); d > res.Merge {
				t.Errorf("last point deviates from input by %g", d)
			}

			// Every sample must lie on the fitted circle and the
			// facet count must respect the angular density bound.
			a, err := Center(tt.points, res)
			if err != nil {
				t.Fatalf("Center() error = %v", err)
			}
			if got := float64(len(discrete)); got < a.Span/res.SegAngle {
				t.Errorf("got %g points for span %g, want at least %g", got, a.Span, a.Span/res.SegAngle)
			}
			// Samples are linearly spaced in angle, so chords are
			// uniform up to floating error.
			step := a.Span / float64(len(discrete)-1)
			wantChord := 2 * a.Radius * math.Sin(step/2)
			for i, p := range discrete {
				if d := dist(p, a.Center); !near(d, a.Radius, 1e-9*a.Radius+1e-12) {
					t.Fatalf("sample %d is off the circle: distance %g, radius %g", i, d, a.Radius)
				}
				if i > 0 {
					if c := dist(discrete[i-1], p); !near(c, wantChord, 1e-9*a.Radius+1e-12) {
						t.Fatalf("chord %d length %g, want uniform %g", i, c, wantChord)
					}
				}
			}
		})
	}
}

func TestDiscretizeClosed(t *testing.T) {
	res := DefaultResolution
	discrete, err := Discretize([]Point{{1, 0}, {0, 1}, {-1, 0}}, true, 1.0, res)
	if err != nil {
		t.Fatalf("Discretize() error = %v", err)
	}

	// Full 2*pi span regardless of the solver's computed sweep.
	wantCount := int(math.Ceil(math.Max(2*math.Pi/res.SegAngle, 2*math.Pi/res.SegFrac)))
	if len(discrete) != wantCount {
		t.Errorf("got %d points, want %d for a full circle", len(discrete), wantCount)
	}
	if d := dist(discrete[0], discrete[len(discrete)-1]); d > res.Merge {
		t.Errorf("closed polyline endpoints %g apart, want coincident", d)
	}
	for i, p := range discrete {
		if d := dist(p, Point{0, 0}); !near(d, 1.0, 1e-9) {
			t.Fatalf("sample %d at distance %g from origin, want 1", i, d)
		}
	}
}

func TestDiscretizeDegenerate(t *testing.T) {
	_, err := Discretize([]Point{{0, 0}, {1, 0}, {2, 0}}, false, 1.0, DefaultResolution)
	if !errors.Is(err, ErrDegenerate) {
		t.Fatalf("Discretize() error = %v, want ErrDegenerate", err)
	}
}

func TestDiscretizeDiverging(t *testing.T) {
	// An absurdly tight merge tolerance forces the divergence check to
	// trip even on a clean analytic arc: the final sample lands at
	// cos(pi), off the exact endpoint by a rounding error.
	res := DefaultResolution
	res.Merge = 1e-300
	points := []Point{{1, 0}, {0, 1}, {-1, 0}}
	_, err := Discretize(points, false, 1.0, res)
	if !errors.Is(err, ErrDiverging) {
		t.Fatalf("Discretize() error = %v, want ErrDiverging", err)
	}

	// The closed case never runs the endpoint check.
	if _, err := Discretize(points, true, 1.0, res); err != nil {
		t.Fatalf("closed Discretize() error = %v, want nil", err)
	}
}

func TestDiscretizeResolutionScaling(t *testing.T) {
	coarse := Resolution{SegAngle: 0.5, SegFrac: 0.5, Zero: 1e-12, Merge: 1e-5}
	fine := Resolution{SegAngle: 0.01, SegFrac: 0.01, Zero: 1e-12, Merge: 1e-5}
	points := []Point{{1, 0}, {0, 1}, {-1, 0}}

	a, err := Discretize(points, false, 1.0, coarse)
	if err != nil {
		t.Fatalf("coarse Discretize() error = %v", err)
	}
	b, err := Discretize(points, false, 1.0, fine)
	if err != nil {
		t.Fatalf("fine Discretize() error = %v", err)
	}
	if len(b) <= len(a) {
		t.Errorf("fine resolution produced %d points, coarse %d; want more", len(b), len(a))
	}
}
