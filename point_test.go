package graphview

import "testing"

func TestPointArithmetic(t *testing.T) {
	p, q := Pt(3, 4), Pt(1, -2)

	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"Add", p.Add(q), Pt(4, 2)},
		{"Sub", p.Sub(q), Pt(2, 6)},
		{"Mul", p.Mul(2), Pt(6, 8)},
		{"Div", p.Div(2), Pt(1.5, 2)},
		{"Normalize", p.Normalize(), Pt(0.6, 0.8)},
		{"Normalize zero", Point{}.Normalize(), Point{}},
		{"Lerp", p.Lerp(q, 0.5), Pt(2, 1)},
	}
	for _, tt := range tests {
		if !nearPoint(tt.got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if p.Length() != 5 {
		t.Errorf("Length() = %v, want 5", p.Length())
	}
	if d := Pt(0, 0).Distance(Pt(6, 8)); d != 10 {
		t.Errorf("Distance() = %v, want 10", d)
	}
}
