package utils

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"image"
)

// GenerateImageHash digests the decoded pixels, so two encodings of the same
// page produce the same hash.
func GenerateImageHash(img image.Image) (string, error) {
	hasher := sha256.New()
	bounds := img.Bounds()

	var dims [8]byte
	binary.BigEndian.PutUint32(dims[:4], uint32(bounds.Dx()))
	binary.BigEndian.PutUint32(dims[4:], uint32(bounds.Dy()))
	hasher.Write(dims[:])

	px := make([]byte, 8)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			binary.BigEndian.PutUint16(px[0:], uint16(r))
			binary.BigEndian.PutUint16(px[2:], uint16(g))
			binary.BigEndian.PutUint16(px[4:], uint16(b))
			binary.BigEndian.PutUint16(px[6:], uint16(a))
			hasher.Write(px)
		}
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
