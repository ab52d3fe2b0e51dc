package search

import (
	"testing"

	"github.com/google/uuid"

	"github.com/Leganyst/sitter-search/internal/model"
)

func withServices(c Candidate, kinds ...model.ServiceKind) Candidate {
	for _, k := range kinds {
		c.Sitter.Services = append(c.Sitter.Services, model.SitterService{
			SitterID: c.Sitter.ID,
			Service:  k,
		})
	}
	return c
}

func withRadius(c Candidate, radiusKm float64) Candidate {
	c.Sitter.RadiusKm = radiusKm
	return c
}

func TestWithinServiceRadius(t *testing.T) {
	// 5 km away, 10 km radius: included; 3 km radius: excluded.
	near := withRadius(cand(uuid.New(), 5000, 0, 0), 10)
	if !WithinServiceRadius()(near) {
		t.Fatalf("5 km within 10 km radius must pass")
	}

	tight := withRadius(cand(uuid.New(), 5000, 0, 0), 3)
	if WithinServiceRadius()(tight) {
		t.Fatalf("5 km with 3 km radius must be excluded")
	}

	// The radius is per sitter, kilometers against meters of distance.
	edge := withRadius(cand(uuid.New(), 10000, 0, 0), 10)
	if !WithinServiceRadius()(edge) {
		t.Fatalf("exactly on the radius boundary must pass")
	}
}

func TestOffersPetSizeCare_WeakRule(t *testing.T) {
	boarding := withServices(cand(uuid.New(), 0, 0, 0), model.ServiceKindBoarding)
	daycare := withServices(cand(uuid.New(), 0, 0, 0), model.ServiceKindDaycare)
	walkingOnly := withServices(cand(uuid.New(), 0, 0, 0), model.ServiceKindWalking)
	noServices := cand(uuid.New(), 0, 0, 0)

	// Any boarding-or-daycare sitter passes regardless of the size asked.
	for _, size := range []PetSize{PetSizeXS, PetSizeXL} {
		p := OffersPetSizeCare(size)
		if !p(boarding) || !p(daycare) {
			t.Fatalf("boarding/daycare sitter must pass size filter %s", size)
		}
		if p(walkingOnly) || p(noServices) {
			t.Fatalf("sitter without boarding/daycare must not pass size filter")
		}
	}
}

func TestCoversNeeds_WeakRule(t *testing.T) {
	// Any offering at all satisfies the needs filter.
	any := withServices(cand(uuid.New(), 0, 0, 0), model.ServiceKindWalking)
	none := cand(uuid.New(), 0, 0, 0)

	p := CoversNeeds([]string{"medication", "senior"})
	if !p(any) {
		t.Fatalf("sitter with any service must pass the needs filter")
	}
	if p(none) {
		t.Fatalf("sitter without services must not pass the needs filter")
	}
}

func TestQueryPredicates_Composition(t *testing.T) {
	q := Query{PetSize: PetSizeM, Needs: []string{"senior"}}
	if got := len(QueryPredicates(q)); got != 3 {
		t.Fatalf("expected radius + petSize + needs predicates, got %d", got)
	}

	q = Query{}
	if got := len(QueryPredicates(q)); got != 1 {
		t.Fatalf("radius predicate is always on, got %d", got)
	}
}

func TestApplyPredicates_AllMustHold(t *testing.T) {
	ok := withServices(withRadius(cand(uuid.New(), 1000, 0, 0), 10), model.ServiceKindBoarding)
	farAway := withServices(withRadius(cand(uuid.New(), 50000, 0, 0), 10), model.ServiceKindBoarding)

	out := ApplyPredicates([]Candidate{ok, farAway}, QueryPredicates(Query{PetSize: PetSizeS})...)

	if len(out) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(out))
	}
	if out[0].Sitter.ID != ok.Sitter.ID {
		t.Fatalf("wrong candidate kept")
	}
}
