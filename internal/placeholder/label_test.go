package placeholder

import "testing"

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		in      string
		want    Placement
		wantErr bool
	}{
		{"", Center, false},
		{"center", Center, false},
		{"Centre", Center, false},
		{" BOTTOM ", Bottom, false},
		{"top", Center, true},
	}
	for _, tc := range tests {
		got, err := ParsePlacement(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePlacement(%q) error = %v; wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePlacement(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestLabelOrigin(t *testing.T) {
	x, y := labelOrigin(800, 600, 200, 40, Center)
	if x != 300 || y != 280 {
		t.Errorf("center: got (%v, %v); want (300, 280)", x, y)
	}

	x, y = labelOrigin(800, 600, 200, 40, Bottom)
	if x != 300 || y != 550 {
		t.Errorf("bottom: got (%v, %v); want (300, 550)", x, y)
	}

	// Labels wider than the frame start left of the origin.
	x, _ = labelOrigin(100, 100, 300, 40, Center)
	if x != -100 {
		t.Errorf("overflow: got x=%v; want -100", x)
	}
}

func TestPlacementString(t *testing.T) {
	if Center.String() != "center" || Bottom.String() != "bottom" {
		t.Errorf("unexpected names: %s, %s", Center, Bottom)
	}
}
