package places

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ytget/tripwise/internal/model"
)

// Matching limits
const (
	MinQueryLength = 2
	DefaultLimit   = 8
	MaxLimit       = 20
)

//go:embed cities.toml
var defaultCitiesTOML string

// ErrEmptyCatalog is returned when a city document has no entries
var ErrEmptyCatalog = errors.New("city catalog is empty")

// SearchOptions tunes ranking and result size
type SearchOptions struct {
	// Limit caps the number of returned cities (DefaultLimit when <= 0)
	Limit int
	// Substring enables the second ranking tier: query found inside the name
	Substring bool
}

// DefaultSearchOptions returns the options used when nothing is configured
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{Limit: DefaultLimit, Substring: true}
}

// Catalog is an immutable, ordered list of reference cities
type Catalog struct {
	cities []model.City
	folded []string
}

type cityFile struct {
	City []model.City `toml:"city"`
}

// LoadDefault parses the embedded reference set
func LoadDefault() (*Catalog, error) {
	return Parse(defaultCitiesTOML)
}

// Parse decodes a TOML document with [[city]] tables
func Parse(doc string) (*Catalog, error) {
	var file cityFile
	if _, err := toml.Decode(doc, &file); err != nil {
		return nil, fmt.Errorf("failed to decode city list: %w", err)
	}
	if len(file.City) == 0 {
		return nil, ErrEmptyCatalog
	}
	return NewCatalog(file.City), nil
}

// NewCatalog builds a catalog; list order is the tie-break for equal ranks
func NewCatalog(cities []model.City) *Catalog {
	c := &Catalog{
		cities: make([]model.City, len(cities)),
		folded: make([]string, len(cities)),
	}
	copy(c.cities, cities)
	for i, city := range c.cities {
		c.folded[i] = strings.ToLower(city.Name)
	}
	return c
}

// Len returns the number of cities
func (c *Catalog) Len() int {
	return len(c.cities)
}

// Cities returns a copy of the reference list
func (c *Catalog) Cities() []model.City {
	out := make([]model.City, len(c.cities))
	copy(out, c.cities)
	return out
}

// Search ranks cities for a partial name. Prefix matches come first, then
// (optionally) names containing the query elsewhere; each tier keeps list order.
func (c *Catalog) Search(query string, opts SearchOptions) []model.City {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < MinQueryLength {
		return nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	var prefix, inner []model.City
	for i, name := range c.folded {
		switch {
		case strings.HasPrefix(name, q):
			prefix = append(prefix, c.cities[i])
			if len(prefix) == limit {
				return prefix
			}
		case opts.Substring && len(prefix)+len(inner) < limit && strings.Contains(name, q):
			inner = append(inner, c.cities[i])
		}
	}

	results := append(prefix, inner...)
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
