package expenses

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadStore reads the store file if it exists and is non-empty. A missing or
// zero-byte file yields an empty store silently, this is the expected
// first-run state. A file that cannot be parsed yields an empty store and an
// error wrapping ErrMalformedStore, recovery is lossy but the process must
// still start. Any other I/O failure is returned as-is.
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read store file %q: %w", path, err)
	}

	store, err := DecodeStore(bytes.NewReader(data))
	if err != nil {
		return store, fmt.Errorf("store file %q: %w", path, err)
	}
	return store, nil
}

// SaveStore rewrites the whole store file from the in-memory store.
//
// The write is a plain truncate-and-write, not a temp-file-and-rename: a
// crash mid-write can leave a partial file behind, and the next LoadStore
// recovers from it as an empty store. That matches the historical behavior
// of the format; callers needing stronger durability must layer it on top.
func SaveStore(path string, s *Store) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open store file %q for writing: %w", path, err)
	}
	defer file.Close()

	if err := EncodeStore(file, s); err != nil {
		return fmt.Errorf("could not save store file %q: %w", path, err)
	}
	return nil
}
