package routing

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// CachedProvider wraps a RoutingProvider with a MatrixCache so repeated
// planning runs over the same POI set skip the upstream lookup.
//
// Cache failures degrade to the inner provider; a Put failure is logged and
// otherwise ignored, since the matrix itself is still valid.
type CachedProvider struct {
	Inner ports.RoutingProvider
	Cache ports.MatrixCache
	Log   zerolog.Logger
}

func NewCachedProvider(inner ports.RoutingProvider, cache ports.MatrixCache, log zerolog.Logger) *CachedProvider {
	return &CachedProvider{Inner: inner, Cache: cache, Log: log}
}

func (p *CachedProvider) Matrix(ctx context.Context, mode domain.Mode, pois []domain.CandidatePOI) (domain.DistanceMatrix, error) {
	key := matrixKey(mode, pois)

	if cached, ok, err := p.Cache.Get(ctx, key); err != nil {
		p.Log.Warn().Err(err).Str("key", key).Msg("matrix cache get failed")
	} else if ok {
		return cached, nil
	}

	matrix, err := p.Inner.Matrix(ctx, mode, pois)
	if err != nil {
		return domain.DistanceMatrix{}, fmt.Errorf("cached routing: inner matrix: %w", err)
	}

	if err := p.Cache.Put(ctx, key, matrix); err != nil {
		p.Log.Warn().Err(err).Str("key", key).Msg("matrix cache put failed")
	}
	return matrix, nil
}

// matrixKey is stable under POI reordering: ids are sorted before joining.
func matrixKey(mode domain.Mode, pois []domain.CandidatePOI) string {
	ids := make([]string, 0, len(pois))
	for _, poi := range pois {
		ids = append(ids, poi.ID)
	}
	sort.Strings(ids)
	return string(mode) + "|" + strings.Join(ids, ",")
}
