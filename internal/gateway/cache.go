package gateway

import (
	"sync"

	"github.com/nPaBwaYT/des/des"
)

// cipherCache keeps keyed cipher instances so repeated requests skip the key
// schedule. Instances are immutable and shared between goroutines. When full
// an arbitrary entry is evicted.
type cipherCache struct {
	mu      sync.RWMutex
	size    int
	entries map[uint64]*des.DESCipher
}

func newCipherCache(size int) *cipherCache {
	return &cipherCache{
		size:    size,
		entries: make(map[uint64]*des.DESCipher),
	}
}

func (c *cipherCache) get(key uint64) *des.DESCipher {
	c.mu.RLock()
	cipher, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return cipher
	}

	cipher = des.NewDESCipher(key)
	if c.size <= 0 {
		return cipher
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		return existing
	}
	if len(c.entries) >= c.size {
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}
	c.entries[key] = cipher

	return cipher
}

func (c *cipherCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
