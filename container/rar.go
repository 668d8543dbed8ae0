package container

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nwaples/rardecode/v2"
)

// rarArchive adapts nwaples/rardecode to Archive. RAR decoding is
// sequential-only, so each operation re-opens a fresh rardecode.Reader
// from the start of the file.
type rarArchive struct {
	file *os.File
}

func openRAR(path string) (*rarArchive, error) {
	f, err := os.Open(path) //nolint:gosec // path is caller-supplied, same trust level as os.Open
	if err != nil {
		return nil, fmt.Errorf("container: open rar archive: %w", err)
	}
	return &rarArchive{file: f}, nil
}

func (a *rarArchive) List() ([]FileInfo, error) {
	if _, err := a.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("container: seek rar archive: %w", err)
	}
	r, err := rardecode.NewReader(a.file)
	if err != nil {
		return nil, fmt.Errorf("container: open rar reader: %w", err)
	}
	var files []FileInfo
	for {
		h, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("container: read rar header: %w", err)
		}
		if h.IsDir {
			continue
		}
		files = append(files, FileInfo{Name: h.Name, Size: h.UnPackedSize})
	}
	return files, nil
}

func (a *rarArchive) Open(name string) (io.ReadCloser, int64, error) {
	if _, err := a.file.Seek(0, io.SeekStart); err != nil {
		return nil, 0, fmt.Errorf("container: seek rar archive: %w", err)
	}
	r, err := rardecode.NewReader(a.file)
	if err != nil {
		return nil, 0, fmt.Errorf("container: open rar reader: %w", err)
	}
	for {
		h, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("container: read rar header: %w", err)
		}
		if strings.EqualFold(h.Name, name) {
			return io.NopCloser(r), h.UnPackedSize, nil
		}
	}
	return nil, 0, fmt.Errorf("%w: %s", ErrNoXZMember, name)
}

func (a *rarArchive) Close() error {
	return a.file.Close() //nolint:wrapcheck
}
