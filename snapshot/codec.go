package snapshot

import (
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec compresses and decompresses the snapshot payload.
// Implementations must be safe for concurrent use.
type Codec interface {
	Name() string
	NewWriter(w io.Writer) (io.WriteCloser, error)
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// Default is the codec used when none is configured.
var Default Codec = Zstd{}

// ByName returns a built-in codec by its stable name.
//
// Snapshots are self-describing: the codec name is stored in the header, so
// readers decode with whatever codec the writer used.
func ByName(name string) (Codec, bool) {
	switch name {
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

// Zstd compresses with klauspost/compress zstd at the default level.
type Zstd struct{}

// Name implements Codec.
func (Zstd) Name() string { return "zstd" }

// NewWriter implements Codec.
func (Zstd) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w)
}

// NewReader implements Codec.
func (Zstd) NewReader(r io.Reader) (io.ReadCloser, error) {
	d, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return d.IOReadCloser(), nil
}

// LZ4 compresses with the lz4 frame format. Faster than zstd with a worse
// ratio; useful when snapshots sit on fast local disks.
type LZ4 struct{}

// Name implements Codec.
func (LZ4) Name() string { return "lz4" }

// NewWriter implements Codec.
func (LZ4) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}

// NewReader implements Codec.
func (LZ4) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}
