package domain

// A single stored travel-time estimate between two POIs.
type TravelTime struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Minutes     float64 `json:"eta_min"`
}

// Sparse symmetric travel-time matrix for one transport mode.
// Entries are unordered pairs: a lookup matches either orientation.
type DistanceMatrix struct {
	Mode    Mode         `json:"mode"`
	Entries []TravelTime `json:"entries"`
}

func NewDistanceMatrix(mode Mode, entries []TravelTime) DistanceMatrix {
	return DistanceMatrix{Mode: mode, Entries: append([]TravelTime(nil), entries...)}
}

// Lookup returns the stored travel minutes for the unordered pair {a, b},
// or def when no entry exists. Symmetric: Lookup(a, b, d) == Lookup(b, a, d).
func (m DistanceMatrix) Lookup(a, b string, def float64) float64 {
	for _, e := range m.Entries {
		if (e.Origin == a && e.Destination == b) || (e.Origin == b && e.Destination == a) {
			return e.Minutes
		}
	}
	return def
}
