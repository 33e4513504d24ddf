package units

import "testing"

func TestParseKnownSuffixes(t *testing.T) {
	cases := []struct {
		in   string
		unit Unit
		val  float64
	}{
		{"12pt", Pt, 12},
		{"2.5cm", Cm, 2.5},
		{"1in", In, 1},
		{"10mm", Mm, 10},
		{"5", Pt, 5},
	}
	for _, c := range cases {
		l, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if l.Unit != c.unit || l.Value != c.val {
			t.Errorf("Parse(%q) = %+v, want {%v %v}", c.in, l, c.val, c.unit)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Fatalf("expected error for empty input")
	}
	if _, err := Parse("abcpt"); err == nil {
		t.Fatalf("expected error for non-numeric length")
	}
}

func TestPointsConversion(t *testing.T) {
	in, _ := Parse("1in")
	if got := in.Points(); got < 71 || got > 73 {
		t.Fatalf("1in in points = %v, want ~72", got)
	}
	pt, _ := Parse("10pt")
	if got := pt.Points(); got != 10 {
		t.Fatalf("10pt in points = %v, want 10", got)
	}
}

func TestParsePointsConvenience(t *testing.T) {
	v, err := ParsePoints("2cm")
	if err != nil {
		t.Fatalf("ParsePoints: %v", err)
	}
	want := Length{Value: 2, Unit: Cm}.Points()
	if v != want {
		t.Fatalf("ParsePoints(2cm) = %v, want %v", v, want)
	}
}
