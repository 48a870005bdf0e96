// Package archive builds Walk abstraction on top of "archive/zip".
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding"
)

// ErrNoEntry is returned by ReadFile when archive does not have requested file.
var ErrNoEntry = errors.New("no such file in archive")

var errStop = errors.New("stop walking")

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk, name is entry name (decoded when code page was supplied) and file is
// the zip.File structure for file in archive which satisfies match
// condition. If an error is returned, processing stops.
type WalkFunc func(archive, name string, file *zip.File) error

// Walk walks the all files in the archive which names start with prefix,
// calling walkFn for each item. Archives with path traversal components
// ("..") or absolute paths are rejected to prevent Zip Slip attacks. When cp
// is not nil it is used to decode names of entries not marked as UTF-8.
func Walk(archive, prefix string, cp encoding.Encoding, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := EntryName(f, cp)
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, prefix) {
			if err := walkFn(archive, name, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadFile returns content of the file stored in archive under exact name.
func ReadFile(archive, name string, cp encoding.Encoding) ([]byte, error) {
	var (
		data  []byte
		found bool
	)
	err := Walk(archive, name, cp, func(_, entry string, f *zip.File) error {
		if entry != name {
			return nil
		}
		r, err := f.Open()
		if err != nil {
			return err
		}
		defer r.Close()

		if data, err = io.ReadAll(r); err != nil {
			return fmt.Errorf("unable to read %q: %w", name, err)
		}
		found = true
		return errStop
	})
	if err != nil && !errors.Is(err, errStop) {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", name, ErrNoEntry)
	}
	return data, nil
}

// IsArchive checks file signature to see if it is zip archive.
func IsArchive(fname string) (bool, error) {
	f, err := os.Open(fname)
	if err != nil {
		return false, err
	}
	defer f.Close()

	header := make([]byte, 262)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	return filetype.Is(header[:n], "zip"), nil
}

// EntryName returns name of archive entry, decoding it with cp when archive
// does not mark it as UTF-8.
func EntryName(f *zip.File, cp encoding.Encoding) string {
	if cp == nil || !f.NonUTF8 {
		return f.Name
	}
	if n, err := cp.NewDecoder().String(f.Name); err == nil {
		return n
	}
	return f.Name
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
