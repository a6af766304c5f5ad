package canvas

import "testing"

func TestNewCanvasFilled(t *testing.T) {
	cv := New(4, 3, White)

	if cv.Width() != 4 || cv.Height() != 3 {
		t.Errorf("expected 4x3 canvas, got %dx%d", cv.Width(), cv.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if cv.PixelAt(x, y) != White {
				t.Errorf("pixel (%d,%d) = %v, expected white", x, y, cv.PixelAt(x, y))
			}
		}
	}
}

func TestCanvasBoundsClipping(t *testing.T) {
	cv := New(5, 5, Black)

	tests := []struct {
		name     string
		x, y     int
		inBounds bool
	}{
		{"top-left corner", 0, 0, true},
		{"bottom-right corner", 4, 4, true},
		{"center", 2, 2, true},
		{"left of grid", -1, 0, false},
		{"above grid", 0, -1, false},
		{"right of grid", 5, 0, false},
		{"below grid", 0, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cv.InBounds(tc.x, tc.y); got != tc.inBounds {
				t.Errorf("InBounds(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.inBounds)
			}

			before := cv.Clone()
			cv.SetPixel(tc.x, tc.y, Red)
			if tc.inBounds {
				if cv.PixelAt(tc.x, tc.y) != Red {
					t.Errorf("SetPixel(%d, %d) did not stick", tc.x, tc.y)
				}
				cv.SetPixel(tc.x, tc.y, Black)
			} else {
				// Out-of-bounds writes must leave the canvas untouched
				if !cv.Equal(before) {
					t.Errorf("SetPixel(%d, %d) out of bounds mutated the canvas", tc.x, tc.y)
				}
				if cv.PixelAt(tc.x, tc.y) != (Color{}) {
					t.Errorf("PixelAt(%d, %d) out of bounds = %v, expected zero color", tc.x, tc.y, cv.PixelAt(tc.x, tc.y))
				}
			}
		})
	}
}

func TestCanvasCloneIndependence(t *testing.T) {
	cv := New(3, 3, White)
	clone := cv.Clone()

	if !cv.Equal(clone) {
		t.Fatal("clone differs from original")
	}

	clone.SetPixel(1, 1, Red)
	if cv.PixelAt(1, 1) != White {
		t.Error("mutating the clone leaked into the original")
	}
	if cv.Equal(clone) {
		t.Error("Equal() = true after divergence")
	}
}

func TestCanvasEqualDimensionMismatch(t *testing.T) {
	a := New(3, 3, White)
	b := New(3, 4, White)
	if a.Equal(b) {
		t.Error("canvases with different dimensions reported equal")
	}
}

func TestCanvasBlit(t *testing.T) {
	dst := New(5, 5, White)
	src := New(2, 2, Red)
	src.SetPixel(1, 1, Transparent)

	dst.Blit(src, 3, 3)

	if dst.PixelAt(3, 3) != Red || dst.PixelAt(4, 3) != Red || dst.PixelAt(3, 4) != Red {
		t.Error("opaque source pixels were not copied")
	}
	// Transparent pixel skipped
	if dst.PixelAt(4, 4) != White {
		t.Errorf("transparent source pixel overwrote destination: %v", dst.PixelAt(4, 4))
	}

	// Clipped blit must not panic and must clip silently
	dst.Blit(src, 4, 4)
	if dst.PixelAt(4, 4) != Red {
		t.Error("clipped blit did not write the in-bounds pixel")
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	tests := []struct {
		color Color
		hex   string
	}{
		{Red, "#ff0000"},
		{RGB(18, 52, 86), "#123456"},
		{Black, "#000000"},
	}

	for _, tc := range tests {
		if got := tc.color.Hex(); got != tc.hex {
			t.Errorf("%v.Hex() = %q, expected %q", tc.color, got, tc.hex)
		}
		parsed, err := ParseColor(tc.hex)
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", tc.hex, err)
		}
		if parsed != tc.color {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.hex, parsed, tc.color)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, s := range []string{"", "red", "#fff", "#gggggg"} {
		if _, err := ParseColor(s); err == nil {
			t.Errorf("ParseColor(%q) succeeded, expected error", s)
		}
	}
}
