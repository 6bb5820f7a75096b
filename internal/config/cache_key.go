package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// OptionsKey returns the cache key for a resource's id+nome dropdown projection.
func (r *CacheKeyStruct) OptionsKey(resource string) string {
	return fmt.Sprintf("%s:options", resource)
}

var CacheKey = NewCacheKeyStruct()
