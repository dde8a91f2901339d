package cache

import "github.com/guttosm/shoplist-service/internal/domain/model"

// Cache defines the interface for comparison result caching.
// Keys are shopping-list ids.
type Cache interface {
	Get(key string) (model.ComparisonResult, bool)
	Set(key string, value model.ComparisonResult)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
