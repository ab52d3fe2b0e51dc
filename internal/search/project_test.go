package search

import (
	"testing"

	"github.com/google/uuid"
)

func placed(lat, lng float64) Candidate {
	c := cand(uuid.New(), 0, 4.5, 2)
	c.Sitter.Lat = lat
	c.Sitter.Lng = lng
	c.Sitter.RateBoardingCents = cents(4500)
	return c
}

func TestProject_EmptyPage(t *testing.T) {
	bbox, fc := Project(nil)
	if bbox != nil {
		t.Fatalf("empty page must produce nil bbox, got %v", bbox)
	}
	if fc == nil || len(fc.Features) != 0 {
		t.Fatalf("expected empty feature collection")
	}
}

func TestProject_BBoxCoversPage(t *testing.T) {
	page := []Candidate{
		placed(55.70, 37.50),
		placed(55.80, 37.70),
		placed(55.75, 37.60),
	}

	bbox, fc := Project(page)
	if bbox == nil {
		t.Fatalf("expected bbox for non-empty page")
	}
	if len(fc.Features) != len(page) {
		t.Fatalf("one feature per candidate expected, got %d", len(fc.Features))
	}

	for _, f := range fc.Features {
		lng, lat := f.Geometry.Coordinates[0], f.Geometry.Coordinates[1]
		if lng < bbox[0] || lng > bbox[2] || lat < bbox[1] || lat > bbox[3] {
			t.Fatalf("feature %v outside bbox %v", f.Geometry.Coordinates, *bbox)
		}
	}
}

func TestProject_FeatureProperties(t *testing.T) {
	c := placed(55.75, 37.61)
	_, fc := Project([]Candidate{c})

	props := fc.Features[0].Properties
	for _, key := range []string{"id", "name", "rateBoarding", "rateDaycare", "avgRating", "reviewCount", "imageUrl"} {
		if _, ok := props[key]; !ok {
			t.Fatalf("missing property %q", key)
		}
	}

	// Rates converted to dollars at the boundary.
	rate := props["rateBoarding"].(*float64)
	if rate == nil || *rate != 45.0 {
		t.Fatalf("expected 45.0 dollars, got %v", rate)
	}
	// No daycare rate: stays nil, not zero.
	if props["rateDaycare"].(*float64) != nil {
		t.Fatalf("unset rate must remain nil")
	}
}
