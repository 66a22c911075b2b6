package hal

// PackRGB packs a color into the 0x00RRGGBB framebuffer format.
func PackRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackRGB splits a 0x00RRGGBB pixel. The reserved top byte is ignored.
func UnpackRGB(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// ToRGBA expands packed pixels into dst as opaque 8-bit RGBA, growing dst
// when it is too short. It returns the filled slice.
func ToRGBA(dst []byte, src []uint32) []byte {
	n := len(src) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range src {
		j := i * 4
		dst[j+0], dst[j+1], dst[j+2] = UnpackRGB(p)
		dst[j+3] = 0xFF
	}
	return dst
}
