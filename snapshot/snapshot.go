package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/sparsevec"
	"github.com/hupe1980/sparsevec/codec"
)

// Options configures Save and Load.
type Options struct {
	// Codec encodes the default value and the value array. Save records
	// its name in the header; Load ignores this field and selects the
	// codec the file names. Defaults to codec.Default.
	Codec codec.Codec

	// Compression selects the payload compression for Save. When the
	// compressed payload would not be smaller, the file falls back to
	// CompressionNone.
	Compression CompressionType

	// Logger receives structured operation logs. Defaults to a discard
	// logger.
	Logger *slog.Logger
}

func applyOptions(optFns []func(o *Options)) Options {
	opts := Options{
		Codec:       codec.Default,
		Compression: CompressionNone,
		Logger:      slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts
}

// Save writes a snapshot of v to w.
//
// Stored entries whose value equals the default (a state GetMut can leave
// behind) are elided while encoding, so every snapshot decodes as a
// compacted vector. The dense logical view is preserved exactly.
func Save[T comparable](w io.Writer, v *sparsevec.Vector[T], optFns ...func(o *Options)) error {
	opts := applyOptions(optFns)

	payload, err := encodePayload(v, opts.Codec)
	if err != nil {
		opts.Logger.Error("snapshot save failed", "error", err)
		return err
	}
	if err := checkPayloadSize(len(payload)); err != nil {
		opts.Logger.Error("snapshot save failed", "error", err)
		return err
	}

	stored, compression, err := compress(payload, opts.Compression)
	if err != nil {
		opts.Logger.Error("snapshot save failed", "error", err)
		return err
	}

	header := fileHeader{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: uint8(compression),
		RawLen:      uint32(len(payload)),
		PayloadLen:  uint32(len(stored)),
		Checksum:    crc32.ChecksumIEEE(payload),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := writeString(w, opts.Codec.Name()); err != nil {
		return fmt.Errorf("write codec name: %w", err)
	}
	if _, err := w.Write(stored); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}

	opts.Logger.Info("snapshot saved",
		"len", v.Len(),
		"nnz", v.NNZ(),
		"codec", opts.Codec.Name(),
		"compression", compression,
		"bytes", len(stored),
	)

	return nil
}

// Load reads a snapshot written by Save and reconstructs the vector. The
// element type T must match the one the snapshot was written with.
func Load[T comparable](r io.Reader, optFns ...func(o *Options)) (*sparsevec.Vector[T], error) {
	opts := applyOptions(optFns)

	var header fileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if header.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidVersion, header.Version)
	}

	codecName, err := readString(r)
	if err != nil {
		return nil, fmt.Errorf("read codec name: %w", err)
	}
	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codecName)
	}

	stored := make([]byte, header.PayloadLen)
	if _, err := io.ReadFull(r, stored); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	payload, err := decompress(stored, CompressionType(header.Compression), int(header.RawLen))
	if err != nil {
		return nil, err
	}
	if crc32.ChecksumIEEE(payload) != header.Checksum {
		return nil, ErrChecksumMismatch
	}

	v, err := decodePayload[T](payload, c)
	if err != nil {
		opts.Logger.Error("snapshot load failed", "error", err)
		return nil, err
	}

	opts.Logger.Info("snapshot loaded",
		"len", v.Len(),
		"nnz", v.NNZ(),
		"codec", codecName,
	)

	return v, nil
}

// SaveFile writes a snapshot to path, replacing any existing file.
func SaveFile[T comparable](path string, v *sparsevec.Vector[T], optFns ...func(o *Options)) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	if err := Save(f, v, optFns...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads a snapshot from path.
func LoadFile[T comparable](path string, optFns ...func(o *Options)) (*sparsevec.Vector[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot file: %w", err)
	}
	defer f.Close()
	return Load[T](f, optFns...)
}

// encodePayload serializes the vector's physical representation:
//
//	length uint64 | nnz uint64 | default blob | indices nnz*uint64 | values blob
//
// where a blob is a uint32 length followed by codec-encoded bytes. The
// value array is encoded as a single blob so the codec sees one []T.
//
// Stored entries whose value equals the default are skipped, so the
// payload always satisfies the sparsity contract Load verifies.
func encodePayload[T comparable](v *sparsevec.Vector[T], c codec.Codec) ([]byte, error) {
	def := v.DefaultValue()

	indices := make([]int, 0, v.NNZ())
	values := make([]T, 0, v.NNZ())
	for i, val := range v.Entries() {
		if val == def {
			continue
		}
		indices = append(indices, i)
		values = append(values, val)
	}

	defBlob, err := c.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("encode default value: %w", err)
	}
	valBlob, err := c.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("encode values: %w", err)
	}

	var buf bytes.Buffer
	writeU64(&buf, uint64(v.Len()))
	writeU64(&buf, uint64(len(indices)))
	writeU32(&buf, uint32(len(defBlob)))
	buf.Write(defBlob)
	for _, i := range indices {
		writeU64(&buf, uint64(i))
	}
	writeU32(&buf, uint32(len(valBlob)))
	buf.Write(valBlob)

	return buf.Bytes(), nil
}

// checkPayloadSize rejects payloads whose length would not survive the
// uint32 framing fields, mirroring the bound readBlob enforces on Load.
func checkPayloadSize(n int) error {
	if n > maxBlobLen {
		return fmt.Errorf("%w: %d bytes exceeds limit %d", ErrPayloadTooLarge, n, maxBlobLen)
	}
	return nil
}

func decodePayload[T comparable](payload []byte, c codec.Codec) (*sparsevec.Vector[T], error) {
	r := bytes.NewReader(payload)

	length, err := readU64(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	nnz, err := readU64(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if length > math.MaxInt || nnz > length {
		return nil, fmt.Errorf("%w: implausible counters len=%d nnz=%d", ErrCorrupt, length, nnz)
	}

	defBlob, err := readBlob(r)
	if err != nil {
		return nil, fmt.Errorf("%w: default value: %w", ErrCorrupt, err)
	}
	var def T
	if err := c.Unmarshal(defBlob, &def); err != nil {
		return nil, fmt.Errorf("%w: decode default value: %w", ErrCorrupt, err)
	}

	indices := make([]int, nnz)
	for p := range indices {
		i, err := readU64(r)
		if err != nil {
			return nil, fmt.Errorf("%w: indices: %w", ErrCorrupt, err)
		}
		if i > math.MaxInt {
			return nil, fmt.Errorf("%w: index %d overflows int", ErrCorrupt, i)
		}
		indices[p] = int(i)
	}

	valBlob, err := readBlob(r)
	if err != nil {
		return nil, fmt.Errorf("%w: values: %w", ErrCorrupt, err)
	}
	var values []T
	if err := c.Unmarshal(valBlob, &values); err != nil {
		return nil, fmt.Errorf("%w: decode values: %w", ErrCorrupt, err)
	}

	v, err := sparsevec.FromRaw(int(length), def, indices, values)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return v, nil
}

func compress(payload []byte, compression CompressionType) ([]byte, CompressionType, error) {
	switch compression {
	case CompressionNone:
		return payload, CompressionNone, nil

	case CompressionLZ4:
		compressed := make([]byte, lz4.CompressBlockBound(len(payload)))
		n, err := lz4.CompressBlock(payload, compressed, nil)
		if err != nil {
			return nil, 0, fmt.Errorf("lz4 compress: %w", err)
		}
		if n == 0 || n >= len(payload) {
			// Incompressible; store raw.
			return payload, CompressionNone, nil
		}
		return compressed[:n], CompressionLZ4, nil

	case CompressionZSTD:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, 0, fmt.Errorf("zstd encoder: %w", err)
		}
		compressed := enc.EncodeAll(payload, nil)
		enc.Close()
		if len(compressed) >= len(payload) {
			return payload, CompressionNone, nil
		}
		return compressed, CompressionZSTD, nil

	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownCompression, compression)
	}
}

func decompress(stored []byte, compression CompressionType, rawLen int) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return stored, nil

	case CompressionLZ4:
		payload := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(stored, payload)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		return payload[:n], nil

	case CompressionZSTD:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decoder: %w", err)
		}
		defer dec.Close()
		payload, err := dec.DecodeAll(stored, make([]byte, 0, rawLen))
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return payload, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, compression)
	}
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeU64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func readU32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func readU64(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func readBlob(r io.Reader) ([]byte, error) {
	n, err := readU32(r)
	if err != nil {
		return nil, err
	}
	if n > maxBlobLen {
		return nil, fmt.Errorf("blob length %d exceeds limit", n)
	}
	blob := make([]byte, n)
	if _, err := io.ReadFull(r, blob); err != nil {
		return nil, err
	}
	return blob, nil
}

func writeString(w io.Writer, s string) error {
	if len(s) > math.MaxUint8 {
		return fmt.Errorf("name too long: %d bytes", len(s))
	}
	if _, err := w.Write([]byte{uint8(len(s))}); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var n [1]byte
	if _, err := io.ReadFull(r, n[:]); err != nil {
		return "", err
	}
	b := make([]byte, n[0])
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}
