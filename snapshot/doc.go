// Package snapshot serializes sparse vectors to a self-describing binary
// format and restores them.
//
// A snapshot records the codec used for value encoding in its header, so a
// file written under one default codec is always readable later. The
// payload carries the logical length, the default value, and the stored
// (index, value) entries; it is CRC32-checksummed and optionally
// block-compressed with LZ4 (fast) or ZSTD (better ratio).
//
//	var buf bytes.Buffer
//	err := snapshot.Save(&buf, v, func(o *snapshot.Options) {
//	    o.Compression = snapshot.CompressionZSTD
//	})
//
//	restored, err := snapshot.Load[int](&buf)
//
// Restoring validates every container invariant before handing the vector
// back; corrupted files fail with a wrapped sentinel error rather than a
// corrupt vector.
package snapshot
