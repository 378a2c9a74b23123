// File: /jobs/cache_sweeper_job.go
package jobs

import (
	"fmt"
	"time"

	"inkwell-api/services"
)

// CacheSweeperJob periodically drops expired home feed cache entries.
// Expired entries are already invisible to readers; this only keeps the
// map from growing without bound.
type CacheSweeperJob struct {
	cache  *services.CacheService
	ticker *time.Ticker
	done   chan bool
}

// NewCacheSweeperJob creates a new cache sweeper job
func NewCacheSweeperJob(cache *services.CacheService, interval time.Duration) *CacheSweeperJob {
	return &CacheSweeperJob{
		cache:  cache,
		ticker: time.NewTicker(interval),
		done:   make(chan bool),
	}
}

// Start begins the sweep loop
func (j *CacheSweeperJob) Start() {
	fmt.Println("Cache sweeper job started")

	go func() {
		for {
			select {
			case <-j.ticker.C:
				j.sweep()
			case <-j.done:
				fmt.Println("Cache sweeper job stopped")
				return
			}
		}
	}()
}

// Stop stops the sweep loop
func (j *CacheSweeperJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *CacheSweeperJob) sweep() {
	if purged := j.cache.PurgeExpired(); purged > 0 {
		fmt.Printf("Cache sweeper removed %d expired entries\n", purged)
	}
}
