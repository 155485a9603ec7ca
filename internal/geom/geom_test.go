package geom

import (
	"encoding/json"
	"testing"
)

func TestCoord_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Coord
		want Coord
	}{
		{"add", C(1, 2).Add(C(3, 4)), C(4, 6)},
		{"sub", C(5, 7).Sub(C(2, 3)), C(3, 4)},
		{"sub negative", C(0, 0).Sub(C(2, 3)), C(-2, -3)},
		{"mul", C(2, -3).Mul(4), C(8, -12)},
		{"mul zero", C(2, 3).Mul(0), C(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestCoords(t *testing.T) {
	got := Coords([2]int{0, 0}, [2]int{10, 0}, [2]int{5, 10})
	want := []Coord{{0, 0}, {10, 0}, {5, 10}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Coords()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBounds(t *testing.T) {
	b := B(10, 20, 110, 220)
	if !b.Valid() {
		t.Errorf("%v should be valid", b)
	}
	if B(5, 0, 4, 10).Valid() {
		t.Error("inverted x should be invalid")
	}
	if B(0, 5, 10, 4).Valid() {
		t.Error("inverted y should be invalid")
	}
	if b.Dx() != 100 || b.Dy() != 200 {
		t.Errorf("Dx, Dy = %d, %d, want 100, 200", b.Dx(), b.Dy())
	}

	tests := []struct {
		p    Coord
		want bool
	}{
		{C(110, 220), false},
		{C(111, 220), true},
		{C(110, 221), true},
		{C(0, 0), false},
	}
	for _, tt := range tests {
		if got := b.Exceeds(tt.p); got != tt.want {
			t.Errorf("Exceeds(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestBounds_JSON(t *testing.T) {
	b := B(1, 2, 3, 4)
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[[1,2],[3,4]]" {
		t.Errorf("Marshal = %s", data)
	}

	var got Bounds
	if err := json.Unmarshal([]byte("[[5, 6], [70, 80]]"), &got); err != nil {
		t.Fatal(err)
	}
	if got != B(5, 6, 70, 80) {
		t.Errorf("Unmarshal = %v", got)
	}

	var c Coord
	if err := json.Unmarshal([]byte(`{"x": 1}`), &c); err == nil {
		t.Error("expected error for object-encoded coordinate")
	}
}
