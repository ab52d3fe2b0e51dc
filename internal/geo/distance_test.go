package geo

import (
	"math"
	"testing"
)

func TestDistance_IdenticalPoints(t *testing.T) {
	p := Point{Lat: 55.7558, Lng: 37.6173}

	if d := Distance(p, p); d != 0 {
		t.Fatalf("expected exactly 0 for identical points, got %v", d)
	}
}

func TestDistance_KnownPair(t *testing.T) {
	// Moscow -> Saint Petersburg, great-circle distance ~634 km.
	moscow := Point{Lat: 55.7558, Lng: 37.6173}
	spb := Point{Lat: 59.9343, Lng: 30.3351}

	d := Distance(moscow, spb)
	if d < 630_000 || d > 640_000 {
		t.Fatalf("expected ~634 km, got %v m", d)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := Point{Lat: 40.7128, Lng: -74.0060}
	b := Point{Lat: 34.0522, Lng: -118.2437}

	if d1, d2 := Distance(a, b), Distance(b, a); d1 != d2 {
		t.Fatalf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestDistance_Antipodal(t *testing.T) {
	a := Point{Lat: 0, Lng: 0}
	b := Point{Lat: 0, Lng: 180}

	// Half the Earth circumference, ~20015 km. Must not be NaN.
	d := Distance(a, b)
	if math.IsNaN(d) {
		t.Fatalf("NaN for antipodal points")
	}
	if d < 20_000_000 || d > 20_040_000 {
		t.Fatalf("expected ~20015 km, got %v m", d)
	}
}

func TestMetersToMiles_Rounding(t *testing.T) {
	// 8046.7 m = 5.0 miles
	if mi := MetersToMiles(8046.7); mi != 5.0 {
		t.Fatalf("expected 5.0, got %v", mi)
	}
	if mi := MetersToMiles(0); mi != 0 {
		t.Fatalf("expected 0, got %v", mi)
	}
	// One decimal only.
	if mi := MetersToMiles(1609.34 * 1.234); mi != 1.2 {
		t.Fatalf("expected 1.2, got %v", mi)
	}
}

func TestComputeBBox_Empty(t *testing.T) {
	if bbox := ComputeBBox(nil); bbox != nil {
		t.Fatalf("expected nil bbox for empty input, got %v", bbox)
	}
}

func TestComputeBBox_Bounds(t *testing.T) {
	points := []Point{
		{Lat: 10, Lng: 20},
		{Lat: -5, Lng: 45},
		{Lat: 7, Lng: -12},
	}

	bbox := ComputeBBox(points)
	if bbox == nil {
		t.Fatalf("expected bbox, got nil")
	}

	want := BoundingBox{-12, -5, 45, 10}
	if *bbox != want {
		t.Fatalf("expected %v, got %v", want, *bbox)
	}

	// Every point inside [minLng, minLat, maxLng, maxLat].
	for _, p := range points {
		if p.Lng < bbox[0] || p.Lng > bbox[2] || p.Lat < bbox[1] || p.Lat > bbox[3] {
			t.Fatalf("point %v outside bbox %v", p, *bbox)
		}
	}
}

func TestFeatureCollection_Shape(t *testing.T) {
	fc := NewFeatureCollection()
	if fc.Type != "FeatureCollection" {
		t.Fatalf("wrong collection type %q", fc.Type)
	}
	if fc.Features == nil || len(fc.Features) != 0 {
		t.Fatalf("expected empty non-nil features")
	}

	fc.AddPoint(Point{Lat: 1, Lng: 2}, map[string]any{"name": "x"})

	f := fc.Features[0]
	if f.Type != "Feature" || f.Geometry.Type != "Point" {
		t.Fatalf("wrong feature shape: %+v", f)
	}
	// GeoJSON order is [lng, lat].
	if f.Geometry.Coordinates != [2]float64{2, 1} {
		t.Fatalf("expected [lng, lat] order, got %v", f.Geometry.Coordinates)
	}
	if f.Properties["name"] != "x" {
		t.Fatalf("missing properties")
	}
}
