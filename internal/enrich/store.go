// Package enrich provides per-item cost and description lookups against the
// pricing document store.
package enrich

import "context"

// Store is the enrichment-store capability. Both lookups are total from the
// caller's perspective: an item with no match yields the zero default, never
// an error. Errors are reserved for transport failures.
type Store interface {
	Cost(ctx context.Context, item string) (float64, error)
	Description(ctx context.Context, item string) (string, error)
}

// Static is a map-backed Store for tests and offline runs.
type Static struct {
	Costs map[string]float64
	Names map[string]string
}

func (s *Static) Cost(_ context.Context, item string) (float64, error) {
	return s.Costs[item], nil
}

func (s *Static) Description(_ context.Context, item string) (string, error) {
	return s.Names[item], nil
}
