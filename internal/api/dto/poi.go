package dto

import "trip-planner-service/internal/domain"

type POIResponse struct {
	POIID      string  `json:"poi_id"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Category   string  `json:"category"`
	Popularity float64 `json:"popularity"`
	MinDwell   int     `json:"min_dwell"`
}

type ListPOIsResponse struct {
	POIs []POIResponse `json:"pois"`
}

func FromPOIs(pois []domain.CandidatePOI) ListPOIsResponse {
	res := ListPOIsResponse{POIs: make([]POIResponse, 0, len(pois))}
	for _, p := range pois {
		res.POIs = append(res.POIs, POIResponse{
			POIID:      p.ID,
			Name:       p.Name,
			Lat:        p.Lat,
			Lon:        p.Lon,
			Category:   string(p.Category),
			Popularity: p.Popularity,
			MinDwell:   p.MinDwell,
		})
	}
	return res
}
