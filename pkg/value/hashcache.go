package value

import "sync"

// HashCache memoizes the hash of a value whose components are expensive
// to assemble. Embed it in pointer-shaped values only; the cache must not
// be copied after first use.
type HashCache struct {
	once sync.Once
	hash uint64
}

// HashOnce computes Hash(o) on the first call and returns the cached
// result afterwards. Safe for concurrent first calls on one instance.
func (c *HashCache) HashOnce(o Object) uint64 {
	c.once.Do(func() {
		c.hash = Hash(o)
	})
	return c.hash
}
