package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/0xalexb/hjarta-settings/config"
)

// ErrPathIsDirectory is returned when the source path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrEmptyName is returned when the source file name is empty.
var ErrEmptyName = errors.New("file name must not be empty")

// FileMode is the permission used when the source file is written.
const FileMode fs.FileMode = 0o600

// Source implements config.Source for a file on the local filesystem.
type Source struct {
	filepath string
}

var _ config.Source = (*Source)(nil)

// NewSource creates a Source for name inside baseDir.
// An absolute name ignores baseDir.
func NewSource(baseDir, name string) (*Source, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, name)
	}

	return &Source{filepath: filepath.Clean(path)}, nil
}

// ExecutableDir returns the directory holding the running binary, or the
// working directory if it cannot be determined.
func ExecutableDir() string {
	executable, err := os.Executable()
	if err != nil {
		return "."
	}

	return filepath.Dir(executable)
}

// Name returns the file path.
func (s *Source) Name() string {
	return s.filepath
}

// Path returns the file path.
func (s *Source) Path() string {
	return s.filepath
}

// Fetch reads the whole file.
func (s *Source) Fetch() ([]byte, error) {
	stat, err := os.Stat(s.filepath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", config.ErrSourceNotFound, s.filepath)
		}

		return nil, fmt.Errorf("stat file %q: %w", s.filepath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", s.filepath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(s.filepath) // #nosec G304 -- path is cleaned at construction
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", s.filepath, err)
	}

	return data, nil
}

// Write replaces the file contents with data. The parent directory must exist.
// The data goes to a temporary file in the same directory which is then
// renamed over the target, so readers never observe a truncated file.
func (s *Source) Write(data []byte) error {
	dir, base := filepath.Split(s.filepath)

	tmp, err := os.CreateTemp(dir, "."+base+"-*.tmp")
	if err != nil {
		return fmt.Errorf("writing file %q: %w", s.filepath, err)
	}

	tmpName := tmp.Name()

	err = writeTemp(tmp, data)
	if err == nil {
		err = os.Rename(tmpName, s.filepath)
	}

	if err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("writing file %q: %w", s.filepath, err)
	}

	return nil
}

func writeTemp(tmp *os.File, data []byte) error {
	_, err := tmp.Write(data)
	if err == nil {
		err = tmp.Chmod(FileMode)
	}

	closeErr := tmp.Close()
	if err != nil {
		return err
	}

	return closeErr
}
