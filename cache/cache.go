package cache

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// The cache holds search results that are expensive to recompute on large
// grids, so that the shell can re-run counts against the same grid without
// scanning it again. Keys are built from a grid fingerprint and a word.

type cache struct {
	sync.Mutex
	objects map[string]any
}

type loadFunc func(key string) (any, error)

// GlobalObjectCache is shared by every caller in the process.
var GlobalObjectCache *cache

func (c *cache) load(key string, loadFunc loadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(key)
	if err != nil {
		return err
	}
	c.objects[key] = obj

	return nil
}

func (c *cache) get(key string, loadFunc loadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	if err := c.load(key, loadFunc); err != nil {
		return nil, err
	}
	return c.objects[key], nil
}

func CreateGlobalObjectCache() {
	GlobalObjectCache = &cache{objects: make(map[string]any)}
}

// Key joins a grid fingerprint and a word into a cache key.
func Key(fingerprint uint64, word string) string {
	return fmt.Sprintf("%016x:%s", fingerprint, word)
}

// Load returns the object stored under name, calling loadFunc to build it
// the first time. Failed loads are not stored.
func Load(name string, loadFunc loadFunc) (any, error) {
	if GlobalObjectCache == nil {
		CreateGlobalObjectCache()
	}
	return GlobalObjectCache.get(name, loadFunc)
}

// Len returns the number of cached objects.
func Len() int {
	if GlobalObjectCache == nil {
		return 0
	}
	GlobalObjectCache.Lock()
	defer GlobalObjectCache.Unlock()
	return len(GlobalObjectCache.objects)
}

// Clear drops every cached object.
func Clear() {
	CreateGlobalObjectCache()
}
