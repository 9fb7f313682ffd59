package texspec

// Mipmapped tells whether a texture has a full mip chain.
type Mipmapped uint8

// Mipmapping modes.
const (
	// MipmappedNo means the texture has a single level.
	MipmappedNo Mipmapped = iota

	// MipmappedYes means the texture has a full mip chain.
	MipmappedYes
)

// String returns "no" or "yes".
func (m Mipmapped) String() string {
	if m == MipmappedYes {
		return "yes"
	}
	return "no"
}
