// Package resource pools GPU textures by compatibility.
//
// A Pool hands out textures whose TextureInfo is compatible with a
// request: same size, and every attribute equal except that the existing
// texture may carry more usage than requested. A render target created
// with sampled and color-attachment usage can therefore be reused for a
// sampled-only request, but not the other way round.
//
//	alloc, _ := vulkan.NewHALAllocator(device)
//	pool, _ := resource.NewPool(alloc, resource.WithCapacity(32))
//	defer pool.Close()
//
//	tex, err := pool.FindOrCreate(size, info, "blur-scratch")
//	if err != nil {
//		return err
//	}
//	defer pool.Return(tex)
//
// Returned textures are kept idle in least-recently-returned order and
// destroyed once more than the configured capacity are idle.
package resource
