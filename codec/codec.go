// Package codec centralizes value encoding for snapshot payloads.
//
// Codec selection is a compatibility boundary: bytes written with one codec
// may not decode with another, so snapshot files record the codec name in
// their header and select it back via ByName on load.
package codec

// Codec encodes and decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Default is the codec used when none is configured.
//
// Newly written snapshots use it; existing files are self-describing and
// are decoded with whatever codec their header names.
var Default Codec = GoJSON{}
