// Package vulkan holds the Vulkan payloads of texspec's generic wrappers.
//
// TextureSpec is the Vulkan-specific description of a texture: image
// creation flags, format, tiling, usage flags, sharing mode, aspect mask and
// an optional Y'CbCr conversion. It is a comparable value type with three
// operations the rest of an engine relies on:
//
//   - Equal: every attribute matches.
//   - IsCompatible: every attribute matches except usage, where the existing
//     texture's usage flags must include the requested ones.
//   - Serialize / DeserializeTextureSpec: a fixed little-endian encoding that
//     round-trips.
//
// The TextureInfo*/BackendTexture* functions are the only way to read Vulkan
// data out of a texspec.TextureInfo or texspec.BackendTexture. They do not
// validate their argument: passing a wrapper built for another backend
// panics.
//
// The HAL bridge connects descriptors to gogpu/wgpu devices.
// TextureInfoFromDescriptor derives the TextureInfo of a hal texture
// descriptor, and HALAllocator creates textures on a hal device for
// resource.Pool. NewHALAllocatorFromProvider attaches to a device shared
// through gpucontext.
//
// Importing this package registers the Vulkan decoder with texspec, so
// texspec.ReadTextureInfo can decode Vulkan payloads.
package vulkan
