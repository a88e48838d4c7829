package services_test

import (
	"testing"

	"brushworks/internal/domain"
	"brushworks/internal/services"
)

func sample() []domain.Painting {
	soldAt := "2026-05-01T10:00:00Z"
	return []domain.Painting{
		{ID: 1, Title: "Monsoon", IsSold: false},
		{ID: 2, Title: "Marigold", IsSold: true, SoldAt: &soldAt},
		{ID: 3, Title: "Lanes", IsSold: false},
		{ID: 4, Title: "Dusk", IsSold: true, SoldAt: &soldAt},
	}
}

func TestFilterAllIsIdentity(t *testing.T) {
	list := sample()
	got := services.FilterPaintings(services.FilterAll, list)
	if len(got) != len(list) {
		t.Fatalf("all filter dropped rows: %d != %d", len(got), len(list))
	}
	for i := range list {
		if got[i].ID != list[i].ID {
			t.Fatalf("all filter reordered rows")
		}
	}
}

func TestFilterPartitionsList(t *testing.T) {
	list := sample()
	avail := services.FilterPaintings(services.FilterAvailable, list)
	sold := services.FilterPaintings(services.FilterSold, list)

	if len(avail)+len(sold) != len(list) {
		t.Fatalf("partition incomplete: %d + %d != %d", len(avail), len(sold), len(list))
	}
	seen := map[int64]bool{}
	for _, p := range avail {
		if p.IsSold {
			t.Fatalf("sold painting %d in available set", p.ID)
		}
		seen[p.ID] = true
	}
	for _, p := range sold {
		if !p.IsSold {
			t.Fatalf("available painting %d in sold set", p.ID)
		}
		if seen[p.ID] {
			t.Fatalf("painting %d in both sets", p.ID)
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	list := sample()
	once := services.FilterPaintings(services.FilterSold, list)
	twice := services.FilterPaintings(services.FilterSold, once)
	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d != %d", len(once), len(twice))
	}
}

func TestFilterEmptyList(t *testing.T) {
	for _, f := range []services.Filter{services.FilterAll, services.FilterAvailable, services.FilterSold} {
		if got := services.FilterPaintings(f, nil); len(got) != 0 {
			t.Fatalf("filter %s invented rows from nil list", f)
		}
	}
}

func TestParseFilter(t *testing.T) {
	if services.ParseFilter("sold") != services.FilterSold {
		t.Fatal("sold not recognized")
	}
	if services.ParseFilter("available") != services.FilterAvailable {
		t.Fatal("available not recognized")
	}
	for _, junk := range []string{"", "all", "SOLD", "everything"} {
		if got := services.ParseFilter(junk); junk != "all" && got != services.FilterAll {
			t.Fatalf("ParseFilter(%q) = %s, want all", junk, got)
		}
	}
}

func TestCountPaintings(t *testing.T) {
	c := services.CountPaintings(sample())
	if c.All != 4 || c.Available != 2 || c.Sold != 2 {
		t.Fatalf("bad counts: %+v", c)
	}
}
