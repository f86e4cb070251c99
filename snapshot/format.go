package snapshot

import "errors"

const (
	// MagicNumber identifies sparse vector snapshot files (ASCII: "SVC1").
	MagicNumber = 0x53564331
	// Version is the current file format version.
	Version = 1

	// maxBlobLen bounds the variable-length sections (default value and
	// value array blobs) so a corrupted length field cannot trigger a
	// multi-gigabyte allocation before the checksum is verified.
	maxBlobLen = 1 << 31
)

// CompressionType selects the payload compression algorithm.
type CompressionType uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast, moderate ratio).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD CompressionType = 2
)

var (
	// ErrInvalidMagic is returned when the file does not start with the
	// snapshot magic number.
	ErrInvalidMagic = errors.New("snapshot: invalid magic number")
	// ErrInvalidVersion is returned for format versions this build cannot
	// read.
	ErrInvalidVersion = errors.New("snapshot: unsupported version")
	// ErrUnknownCodec is returned when the codec named in the header is
	// not registered.
	ErrUnknownCodec = errors.New("snapshot: unknown codec")
	// ErrUnknownCompression is returned for unrecognized compression
	// bytes.
	ErrUnknownCompression = errors.New("snapshot: unknown compression")
	// ErrChecksumMismatch is returned when the payload checksum does not
	// match, indicating storage corruption.
	ErrChecksumMismatch = errors.New("snapshot: checksum mismatch")
	// ErrCorrupt is returned when the payload structure cannot be parsed.
	ErrCorrupt = errors.New("snapshot: corrupt payload")
	// ErrPayloadTooLarge is returned by Save when the encoded payload
	// exceeds what the uint32 header fields can represent.
	ErrPayloadTooLarge = errors.New("snapshot: payload too large")
)

// fileHeader is the fixed-size part of the header. The codec name follows
// it as a length-prefixed string, then the payload bytes.
//
// All integers are little-endian.
type fileHeader struct {
	Magic       uint32
	Version     uint16
	Compression uint8
	_           uint8 // padding
	RawLen      uint32 // uncompressed payload size
	PayloadLen  uint32 // stored payload size
	Checksum    uint32 // CRC32 (IEEE) of the uncompressed payload
}
