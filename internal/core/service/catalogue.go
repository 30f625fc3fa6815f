package service

import (
	"sort"

	"github.com/wanderlust/tourism-site/internal/core/domain"
)

// Destinations returns the travel catalogue sorted by name.
func Destinations() []domain.Destination {
	out := domain.Catalogue()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
