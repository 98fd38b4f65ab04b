package domain

// POI category tag. Open enumeration: a fixed set of known tags plus an
// explicit "other" catch-all, so weight lookups always have a total fallback.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryMuseum    Category = "museum"
	CategoryPark      Category = "park"
	CategoryViewpoint Category = "viewpoint"
	CategoryOther     Category = "other"
)

// KnownCategories lists every enumerated tag, "other" last.
func KnownCategories() []Category {
	return []Category{CategoryFood, CategoryMuseum, CategoryPark, CategoryViewpoint, CategoryOther}
}

// Known reports whether the tag belongs to the fixed enumeration.
func (c Category) Known() bool {
	switch c {
	case CategoryFood, CategoryMuseum, CategoryPark, CategoryViewpoint, CategoryOther:
		return true
	}
	return false
}

// Provenance metadata describing where a POI record was fetched from.
type POISource struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	FetchedAt string `json:"fetched_at"`
}

// A visitable place produced by an external POI provider.
// Treated as immutable input by the planning engine.
type CandidatePOI struct {
	ID         string    `json:"poi_id"`
	Name       string    `json:"name"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	Category   Category  `json:"category"`
	Popularity float64   `json:"popularity"`
	MinDwell   int       `json:"min_dwell"`
	Source     POISource `json:"source"`
}
