// Package texspec describes GPU textures without tying its public API to a
// single graphics backend.
//
// # Overview
//
// A texture is described in two layers. The generic layer, this package,
// holds what every backend agrees on: sample count, mipmapping and the
// texture size. The backend layer holds everything else (for Vulkan: image
// creation flags, format, tiling, usage flags, sharing mode, aspect mask and
// an optional Y'CbCr conversion). The generic wrappers carry the backend
// payload behind a tagged interface and only the backend package knows how to
// read it:
//
//	info := vulkan.MakeTextureInfo(vulkan.TextureInfo{
//	    SampleCount:     1,
//	    Format:          vulkan.FormatR8G8B8A8Unorm,
//	    ImageUsageFlags: vulkan.ImageUsageSampled | vulkan.ImageUsageTransferDst,
//	    AspectMask:      vulkan.ImageAspectColor,
//	})
//	format := vulkan.TextureInfoFormat(info)
//
// # Compatibility
//
// [TextureInfo.IsCompatible] decides whether an existing texture can serve a
// new request. The receiver is the request, the argument is the existing
// texture. All attributes must match exactly except usage: the existing
// texture must allow at least the usages the request asks for.
//
// # Serialization
//
// [WriteTextureInfo] and [ReadTextureInfo] encode a TextureInfo as a fixed
// sequence of little-endian integers. Backends register a payload decoder with
// [RegisterBackend], usually from an init function. The encoding carries no
// version; see package cachefile for a versioned container.
//
// # Architecture
//
//   - texspec: generic TextureInfo, BackendTexture, MutableTextureState, registry
//   - vulkan: the Vulkan payloads and accessor functions
//   - resource: a pool that reuses textures through the compatibility rules
//   - cachefile: persisting TextureInfos across processes
//   - cmd/texdump: prints the contents of a cache file
//
// # Logging
//
// texspec is silent by default. Call [SetLogger] to enable output.
package texspec
