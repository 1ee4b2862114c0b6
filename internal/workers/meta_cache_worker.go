package workers

import (
	"context"
	"time"

	"github.com/Toyowa5296/poliform/internal/common"
	"github.com/Toyowa5296/poliform/internal/constants"
	"github.com/Toyowa5296/poliform/internal/logging"
	"github.com/Toyowa5296/poliform/internal/services"
)

const metaRefreshInterval = 10 * time.Minute

// MetaCacheWorker keeps the tag catalog and the anonymous party-list snapshot
// warm so the public pages rarely pay the load cost.
type MetaCacheWorker struct {
	cache   common.CacheInterface
	tags    *services.TagService
	queries *services.PartyQueryService
}

func NewMetaCacheWorker(cache common.CacheInterface, tags *services.TagService, queries *services.PartyQueryService) *MetaCacheWorker {
	return &MetaCacheWorker{cache: cache, tags: tags, queries: queries}
}

func (w *MetaCacheWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(metaRefreshInterval)
	defer ticker.Stop()

	w.refill(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.refill(ctx)
		}
	}
}

func (w *MetaCacheWorker) refill(ctx context.Context) {
	if _, err := w.tags.Catalog(ctx); err != nil {
		logging.Warn("Tag catalog refresh failed", "error", err.Error())
	}

	// The cached snapshot is the anonymous, unfiltered list. Dropping the
	// key first forces the reload; List re-caches the fresh result.
	w.cache.Delete(string(constants.CachePrefixPartyList))
	if _, err := w.queries.List(ctx, "", "", nil); err != nil {
		logging.Warn("Party list refresh failed", "error", err.Error())
	}
}
