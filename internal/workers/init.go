package workers

import (
	"context"

	"github.com/Toyowa5296/poliform/internal/common"
	"github.com/Toyowa5296/poliform/internal/services"
)

type WorkersContainer struct {
	MetaCache *MetaCacheWorker
}

func InitWorkers(cache common.CacheInterface, tags *services.TagService, queries *services.PartyQueryService) *WorkersContainer {
	mcw := NewMetaCacheWorker(cache, tags, queries)

	go mcw.Start(context.Background())

	return &WorkersContainer{MetaCache: mcw}
}
