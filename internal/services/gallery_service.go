package services

import (
	"brushworks/internal/domain"
	"brushworks/internal/repos"
)

// Filter selects which paintings a gallery view shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterAvailable Filter = "available"
	FilterSold      Filter = "sold"
)

// ParseFilter maps a query value to a filter, defaulting to all.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterAvailable, FilterSold:
		return Filter(s)
	}
	return FilterAll
}

// FilterPaintings applies f over an already-fetched list. FilterAll is
// the identity; available and sold partition the list by is_sold.
func FilterPaintings(f Filter, list []domain.Painting) []domain.Painting {
	if f == FilterAll {
		return list
	}
	out := make([]domain.Painting, 0, len(list))
	for _, p := range list {
		if p.IsSold == (f == FilterSold) {
			out = append(out, p)
		}
	}
	return out
}

// Counts are the per-tab totals shown next to the filter buttons.
type Counts struct {
	All       int
	Available int
	Sold      int
}

func CountPaintings(list []domain.Painting) Counts {
	c := Counts{All: len(list)}
	for _, p := range list {
		if p.IsSold {
			c.Sold++
		} else {
			c.Available++
		}
	}
	return c
}

const homePageLimit = 6

type GalleryService struct {
	Paintings *repos.PaintingRepo
}

func NewGalleryService(paintings *repos.PaintingRepo) *GalleryService {
	return &GalleryService{Paintings: paintings}
}

// Home returns the newest paintings for the landing page.
func (s *GalleryService) Home() ([]domain.Painting, error) {
	return s.Paintings.ListLatest(homePageLimit)
}

// Browse fetches the full collection and applies the filter.
func (s *GalleryService) Browse(f Filter) ([]domain.Painting, Counts, error) {
	all, err := s.Paintings.ListLatest(0)
	if err != nil {
		return nil, Counts{}, err
	}
	return FilterPaintings(f, all), CountPaintings(all), nil
}

func (s *GalleryService) Get(id int64) (domain.Painting, error) {
	return s.Paintings.Get(id)
}
