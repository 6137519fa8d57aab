package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// ErrIO wraps config file read/write failures. Writes are atomic: on any
// failure the prior file content is left intact.
var ErrIO = errors.New("config file i/o failed")

// ReadFile parses the config file at path. A missing file is not an error:
// it parses as an empty document, matching Ghostty's behavior of running
// without a config file.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrIO, path, err)
	}
	return Parse(data), nil
}

// WriteFile serializes the document and replaces the file at path
// atomically: the bytes go to a temp file in the same directory which is
// then renamed over the target, so readers never observe a partial write.
func WriteFile(path string, doc *Document) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: mkdir %s: %v", ErrIO, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp in %s: %v", ErrIO, dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(Serialize(doc)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrIO, tmpName, err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: chmod %s: %v", ErrIO, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %v", ErrIO, tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename %s -> %s: %v", ErrIO, tmpName, path, err)
	}
	return nil
}
