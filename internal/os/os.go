package os

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// EnsureDir ensures the given directory exists, creating it if necessary.
// Errors if the path already exists as a non-directory.
func EnsureDir(dir string, mode os.FileMode) error {
	err := os.MkdirAll(dir, mode)
	if err != nil {
		return fmt.Errorf("could not create directory %q: %w", dir, err)
	}
	return nil
}

func FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}

// WriteFile writes contents to filePath, naming the file in the error.
func WriteFile(filePath string, contents []byte, mode os.FileMode) error {
	if err := os.WriteFile(filePath, contents, mode); err != nil {
		return fmt.Errorf("could not write file %q: %w", filePath, err)
	}
	return nil
}

// ReadFileOrStdin reads filePath, or r when filePath is "-". Reads are
// capped at maxBytes; larger inputs are rejected.
func ReadFileOrStdin(filePath string, r io.Reader, maxBytes int64) ([]byte, error) {
	if filePath != "-" {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	bz, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(bz)) > maxBytes {
		return nil, errors.New("input too large")
	}
	return bz, nil
}
