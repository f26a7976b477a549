// Package storage is the local key/value backend of the client. Every logical
// record lives under one namespaced key, one file per key on disk.
package storage

import (
	"errors"
	"io/fs"

	"github.com/peterbourgon/diskv/v3"
)

// KV is the key/value contract the local stores are written against. A
// *diskv.Diskv satisfies it.
type KV interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Erase(key string) error
	Has(key string) bool
	Keys(cancel <-chan struct{}) <-chan string
}

var _ KV = (*diskv.Diskv)(nil)

// Open returns a diskv store rooted at basePath with a flat layout.
func Open(basePath string) *diskv.Diskv {
	return diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	})
}

func flatTransform(string) []string {
	return []string{}
}

// ReadIfExists reads key, reporting ok=false when the key is absent.
func ReadIfExists(kv KV, key string) ([]byte, bool, error) {
	if !kv.Has(key) {
		return nil, false, nil
	}
	val, err := kv.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return val, true, nil
}

// CollectKeys drains kv.Keys and returns the keys accepted by match.
func CollectKeys(kv KV, match func(string) bool) []string {
	cancel := make(chan struct{})
	defer close(cancel)

	var keys []string
	for key := range kv.Keys(cancel) {
		if match == nil || match(key) {
			keys = append(keys, key)
		}
	}
	return keys
}
