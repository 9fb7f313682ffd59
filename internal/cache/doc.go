// Package cache provides the recency list behind texspec's resource pools.
//
// List[T] keeps elements in least-recently-used order with O(1) push,
// removal and eviction of the oldest element:
//
//	idle := cache.NewList[*Texture]()
//	node := idle.PushFront(tex)
//	idle.Remove(node)           // texture handed out again
//	oldest, ok := idle.PopBack() // texture to evict
//
// List is not safe for concurrent use; the owning pool holds the lock.
package cache
