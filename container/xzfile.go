package container

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/coredecomp/xzcore/lzma"
	"github.com/coredecomp/xzcore/xz"
)

// singleFileArchive presents already-decoded bytes as a one-entry
// Archive, the shape every single-stream compressed format (XZ, raw
// LZMA) reduces to.
type singleFileArchive struct {
	name string
	data []byte
}

func (a *singleFileArchive) List() ([]FileInfo, error) {
	return []FileInfo{{Name: a.name, Size: int64(len(a.data))}}, nil
}

func (a *singleFileArchive) Open(name string) (io.ReadCloser, int64, error) {
	if name != a.name {
		return nil, 0, fmt.Errorf("%w: %s", ErrNoXZMember, name)
	}
	return io.NopCloser(bytes.NewReader(a.data)), int64(len(a.data)), nil
}

func (a *singleFileArchive) Close() error { return nil }

func memberName(path string, suffix string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, suffix)
}

func openXZFile(path string) (Archive, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // path is caller-supplied, same trust level as os.Open
	if err != nil {
		return nil, fmt.Errorf("container: read xz file: %w", err)
	}
	out, err := xz.DecodeAll(raw)
	if err != nil {
		return nil, fmt.Errorf("container: decode xz file: %w", err)
	}
	return &singleFileArchive{name: memberName(path, ".xz"), data: out}, nil
}

func openLZMAFile(path string) (Archive, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // path is caller-supplied, same trust level as os.Open
	if err != nil {
		return nil, fmt.Errorf("container: read lzma file: %w", err)
	}
	out, err := lzma.DecodeRaw(raw)
	if err != nil {
		return nil, fmt.Errorf("container: decode lzma file: %w", err)
	}
	return &singleFileArchive{name: memberName(path, ".lzma"), data: out}, nil
}
