package container

import (
	stdzip "archive/zip"
	"fmt"
	"io"
)

// zipArchive adapts the standard library's zip reader to Archive.
type zipArchive struct {
	reader *stdzip.ReadCloser
}

func openZIP(path string) (*zipArchive, error) {
	reader, err := stdzip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("container: open zip archive: %w", err)
	}
	return &zipArchive{reader: reader}, nil
}

func (a *zipArchive) List() ([]FileInfo, error) {
	files := make([]FileInfo, 0, len(a.reader.File))
	for _, f := range a.reader.File {
		if f.FileInfo().IsDir() {
			continue
		}
		files = append(files, FileInfo{Name: f.Name, Size: int64(f.UncompressedSize64)})
	}
	return files, nil
}

func (a *zipArchive) Open(name string) (io.ReadCloser, int64, error) {
	for _, f := range a.reader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, 0, fmt.Errorf("container: open zip member: %w", err)
			}
			return rc, int64(f.UncompressedSize64), nil
		}
	}
	return nil, 0, fmt.Errorf("%w: %s", ErrNoXZMember, name)
}

func (a *zipArchive) Close() error {
	return a.reader.Close() //nolint:wrapcheck
}
