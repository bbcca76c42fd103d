package testsupport

import (
	"bytes"
	"encoding/binary"
)

// JPEGWithCaptureDate returns a minimal JPEG stream whose APP1 segment holds
// an EXIF DateTimeOriginal tag with the given value, e.g.
// "2019:06:15 10:30:00". No image data follows; EXIF readers only need the
// segment.
func JPEGWithCaptureDate(value string) []byte {
	const (
		ifd0Offset    = 8
		exifIFDOffset = 26
		valueOffset   = 44
	)
	le := binary.LittleEndian
	ascii := append([]byte(value), 0)

	tiff := make([]byte, valueOffset, valueOffset+len(ascii))
	copy(tiff[0:], "II")
	le.PutUint16(tiff[2:], 42)
	le.PutUint32(tiff[4:], ifd0Offset)

	// IFD0: a single ExifIFDPointer entry.
	le.PutUint16(tiff[8:], 1)
	le.PutUint16(tiff[10:], 0x8769)
	le.PutUint16(tiff[12:], 4) // LONG
	le.PutUint32(tiff[14:], 1)
	le.PutUint32(tiff[18:], exifIFDOffset)
	le.PutUint32(tiff[22:], 0)

	// Exif IFD: DateTimeOriginal stored out of line.
	le.PutUint16(tiff[26:], 1)
	le.PutUint16(tiff[28:], 0x9003)
	le.PutUint16(tiff[30:], 2) // ASCII
	le.PutUint32(tiff[32:], uint32(len(ascii)))
	le.PutUint32(tiff[36:], valueOffset)
	le.PutUint32(tiff[40:], 0)
	tiff = append(tiff, ascii...)

	payload := append([]byte("Exif\x00\x00"), tiff...)

	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1})
	var segLen [2]byte
	binary.BigEndian.PutUint16(segLen[:], uint16(len(payload)+2))
	buf.Write(segLen[:])
	buf.Write(payload)
	buf.Write([]byte{0xFF, 0xD9})
	return buf.Bytes()
}
