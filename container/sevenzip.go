package container

import (
	"fmt"
	"io"

	"github.com/bodgit/sevenzip"
)

// sevenZipArchive adapts bodgit/sevenzip to Archive.
type sevenZipArchive struct {
	reader *sevenzip.ReadCloser
}

func openSevenZip(path string) (*sevenZipArchive, error) {
	reader, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("container: open 7z archive: %w", err)
	}
	return &sevenZipArchive{reader: reader}, nil
}

func (a *sevenZipArchive) List() ([]FileInfo, error) {
	files := make([]FileInfo, 0, len(a.reader.File))
	for _, f := range a.reader.File {
		if f.FileInfo().IsDir() {
			continue
		}
		files = append(files, FileInfo{Name: f.Name, Size: int64(f.UncompressedSize)}) //nolint:gosec
	}
	return files, nil
}

func (a *sevenZipArchive) Open(name string) (io.ReadCloser, int64, error) {
	for _, f := range a.reader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, 0, fmt.Errorf("container: open 7z member: %w", err)
			}
			return rc, int64(f.UncompressedSize), nil //nolint:gosec
		}
	}
	return nil, 0, fmt.Errorf("%w: %s", ErrNoXZMember, name)
}

func (a *sevenZipArchive) Close() error {
	return a.reader.Close() //nolint:wrapcheck
}
