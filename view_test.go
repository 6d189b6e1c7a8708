package mandel

import "testing"

func TestDefaultView(t *testing.T) {
	want := View{XMin: -1.5, XMax: 0.5, YMin: -1.0, YMax: 1.0}
	if DefaultView != want {
		t.Errorf("DefaultView = %+v, want %+v", DefaultView, want)
	}
}

func TestPixelToPoint_Corners(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1}, {2, 2}, {512, 512}, {640, 480}, {3, 1000},
	}

	for _, s := range sizes {
		if got := DefaultView.PixelToPoint(0, 0, s.w, s.h); got != complex(-1.5, -1.0) {
			t.Errorf("PixelToPoint(0, 0, %d, %d) = %v, want (-1.5-1i)", s.w, s.h, got)
		}
		if got := DefaultView.PixelToPoint(s.w, s.h, s.w, s.h); got != complex(0.5, 1.0) {
			t.Errorf("PixelToPoint(%d, %d, %d, %d) = %v, want (0.5+1i)", s.w, s.h, s.w, s.h, got)
		}
	}
}

func TestPixelToPoint_MatchesFixedFormula(t *testing.T) {
	const w, h = 37, 23
	for i := range w + 1 {
		for j := range h + 1 {
			want := complex(
				(float64(i)/float64(w))*2.0-1.5,
				(float64(j)/float64(h))*2.0-1.0,
			)
			if got := DefaultView.PixelToPoint(i, j, w, h); got != want {
				t.Fatalf("PixelToPoint(%d, %d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestPixelToPoint_Center(t *testing.T) {
	tests := []struct {
		name string
		i, j int
		w, h int
		want complex128
	}{
		{"square center", 256, 256, 512, 512, complex(-0.5, 0)},
		{"origin column", 3, 2, 4, 4, complex(0, 0)},
		// Non-square rasters stretch; the window is the same.
		{"wide center", 400, 100, 800, 200, complex(-0.5, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultView.PixelToPoint(tt.i, tt.j, tt.w, tt.h); got != tt.want {
				t.Errorf("PixelToPoint(%d, %d, %d, %d) = %v, want %v", tt.i, tt.j, tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestView_CustomWindow(t *testing.T) {
	v := View{XMin: -2, XMax: 2, YMin: -1, YMax: 1}
	if got := v.PixelToPoint(2, 1, 4, 2); got != complex(0, 0) {
		t.Errorf("PixelToPoint(2, 1, 4, 2) = %v, want (0+0i)", got)
	}
}

func TestView_String(t *testing.T) {
	want := "re [-1.5, 0.5]  im [-1, 1]"
	if got := DefaultView.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
