package usecase

import (
	"context"

	"skillswap/internal/domain/discovery"

	"github.com/google/uuid"
)

type BrowseResult struct {
	Listings []discovery.Listing
	// Categories holds the distinct categories of the FULL candidate set,
	// not the filtered result, so filter choices stay stable while browsing.
	Categories []string
}

type BrowseUsecase interface {
	Browse(ctx context.Context, viewerID uuid.UUID, spec discovery.Spec) (BrowseResult, error)
}

type Browse struct {
	catalog CatalogUsecase
	cache   DiscoveryCache
}

func NewBrowseUsecase(catalog CatalogUsecase, cache DiscoveryCache) *Browse {
	return &Browse{catalog: catalog, cache: cache}
}

func (u *Browse) Browse(ctx context.Context, viewerID uuid.UUID, spec discovery.Spec) (BrowseResult, error) {
	candidates, err := u.candidates(ctx, viewerID)
	if err != nil {
		return BrowseResult{}, err
	}

	return BrowseResult{
		Listings:   discovery.Filter(candidates, spec),
		Categories: discovery.Categories(candidates),
	}, nil
}

func (u *Browse) candidates(ctx context.Context, viewerID uuid.UUID) ([]discovery.Listing, error) {
	key := BrowseCandidatesCacheKey(viewerID)

	if u.cache != nil {
		var cached []discovery.Listing
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	candidates, err := u.catalog.ListDiscoverable(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, candidates, 0)
	}

	return candidates, nil
}
