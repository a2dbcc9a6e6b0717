// Package cache keeps board column layouts in memory between queries.
package cache

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/types"
)

// DefaultLayoutTTL applies when the configured TTL is not positive.
const DefaultLayoutTTL = 5 * time.Minute

// LayoutCache maps board ids to their column layouts.
type LayoutCache struct {
	items *gocache.Cache
}

// NewLayoutCache creates a cache whose entries expire after ttl.
func NewLayoutCache(ttl time.Duration) *LayoutCache {
	if ttl <= 0 {
		ttl = DefaultLayoutTTL
	}
	return &LayoutCache{items: gocache.New(ttl, 2*ttl)}
}

func key(id types.BoardID) string {
	return strconv.FormatInt(id.ToInt64(), 10)
}

// Get returns a copy of the cached layout for the board.
func (c *LayoutCache) Get(id types.BoardID) (models.ColumnLayout, bool) {
	v, ok := c.items.Get(key(id))
	if !ok {
		return nil, false
	}
	layout := v.(models.ColumnLayout)
	return append(models.ColumnLayout(nil), layout...), true
}

// Set stores a copy of layout for the board.
func (c *LayoutCache) Set(id types.BoardID, layout models.ColumnLayout) {
	c.items.Set(key(id), append(models.ColumnLayout(nil), layout...), gocache.DefaultExpiration)
}

// Forget evicts the board's layout.
func (c *LayoutCache) Forget(id types.BoardID) {
	c.items.Delete(key(id))
}

// Len reports the number of cached layouts, expired ones included until
// the janitor runs.
func (c *LayoutCache) Len() int {
	return c.items.ItemCount()
}
