package cats

import "testing"

func TestRectangleBounds_RingOrder(t *testing.T) {
	got := RectangleBounds(Point{Lng: 10, Lat: 10}, Point{Lng: 0, Lat: 0})

	want := []Point{
		{Lng: 0, Lat: 0},
		{Lng: 10, Lat: 0},
		{Lng: 10, Lat: 10},
		{Lng: 0, Lat: 10},
		{Lng: 0, Lat: 0},
	}

	if len(got.Ring) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got.Ring))
	}
	for i, p := range want {
		if got.Ring[i] != p {
			t.Fatalf("point %d: expected %+v, got %+v", i, p, got.Ring[i])
		}
	}
}

func TestRectangleBounds_ClosesRing(t *testing.T) {
	b := RectangleBounds(Point{Lng: -3.5, Lat: 60.2}, Point{Lng: -4.1, Lat: 59.9})

	if len(b.Ring) != 5 {
		t.Fatalf("expected closed 5-point ring, got %d points", len(b.Ring))
	}
	if b.Ring[0] != b.Ring[4] {
		t.Fatalf("ring not closed: first=%+v last=%+v", b.Ring[0], b.Ring[4])
	}
}

func TestRectangleBounds_InvertedCornersNotCorrected(t *testing.T) {
	// Esquinas al revés: el anillo sale degenerado y eso es aceptado.
	got := RectangleBounds(Point{Lng: 0, Lat: 0}, Point{Lng: 10, Lat: 10})

	want := []Point{
		{Lng: 10, Lat: 10},
		{Lng: 0, Lat: 10},
		{Lng: 0, Lat: 0},
		{Lng: 10, Lat: 0},
		{Lng: 10, Lat: 10},
	}
	for i, p := range want {
		if got.Ring[i] != p {
			t.Fatalf("point %d: expected %+v, got %+v", i, p, got.Ring[i])
		}
	}
}
