package services

import (
	"context"
	"time"

	"github.com/Toyowa5296/poliform/internal/common"
	"github.com/Toyowa5296/poliform/internal/constants"
	"github.com/Toyowa5296/poliform/internal/db/repositories"
	"github.com/Toyowa5296/poliform/internal/metrics"
	"github.com/Toyowa5296/poliform/internal/models/dtos"
)

const tagCatalogTTL = 10 * time.Minute

// TagService serves the tag catalog. The catalog is seed data and rarely
// changes, so it is answered from cache.
type TagService struct {
	tags       *repositories.TagRepository
	cache      common.CacheInterface
	metricsReg *metrics.MetricsRegistry
}

func NewTagService(tags *repositories.TagRepository, cache common.CacheInterface, metricsReg *metrics.MetricsRegistry) *TagService {
	return &TagService{
		tags:       tags,
		cache:      cache,
		metricsReg: metricsReg,
	}
}

// Catalog returns all tags grouped by category, cache-first.
func (s *TagService) Catalog(ctx context.Context) (*dtos.TagCatalog, error) {
	key := string(constants.CachePrefixTagCatalog)

	if s.cache == nil {
		return s.loadCatalog(ctx)
	}

	if s.metricsReg != nil {
		if _, found := s.cache.Get(key); found {
			s.metricsReg.CacheHitsTotal.WithLabelValues(key).Inc()
		} else {
			s.metricsReg.CacheMissesTotal.WithLabelValues(key).Inc()
		}
	}

	val, err := s.cache.GetOrSet(key, tagCatalogTTL, func() (any, error) {
		return s.loadCatalog(ctx)
	})
	if err != nil {
		return nil, err
	}
	return val.(*dtos.TagCatalog), nil
}

func (s *TagService) loadCatalog(ctx context.Context) (*dtos.TagCatalog, error) {
	tags, err := s.tags.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	catalog := &dtos.TagCatalog{Categories: []dtos.TagCategory{}}
	index := map[string]int{}

	for _, tag := range tags {
		category := "other"
		if tag.Category != nil && *tag.Category != "" {
			category = *tag.Category
		}

		i, ok := index[category]
		if !ok {
			i = len(catalog.Categories)
			index[category] = i
			catalog.Categories = append(catalog.Categories, dtos.TagCategory{Category: category})
		}
		catalog.Categories[i].Tags = append(catalog.Categories[i].Tags, dtos.TagResponse{
			ID:       tag.ID,
			Name:     tag.Name,
			Category: tag.Category,
		})
	}

	return catalog, nil
}
