// Package source reads stylesheet text from storage. Besides plain files it
// understands paths going through zip archives
// ("site.zip/assets/main.css") and HTML documents, from which contents of
// <style> elements are taken.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"cssm/archive"
)

// Source is a stylesheet read from storage.
type Source struct {
	Name string // Display name, path as requested
	Path string // Resolved file system path, archive path for archive entries
	Data []byte // Bytes as stored
	Text string // Stylesheet text, UTF-8
	HTML bool   // Text was extracted from HTML <style> elements
}

// Size returns number of bytes read from storage.
func (s *Source) Size() int64 {
	return int64(len(s.Data))
}

// Options controls how sources are read.
type Options struct {
	HTMLStyles bool              // Extract <style> contents from HTML documents
	CodePage   encoding.Encoding // Decode non UTF-8 names of archive entries
}

// ErrorKind classifies read failures.
// ENUM(not found, io)
type ErrorKind int

// ErrNotFound matches any *Error of NotFound kind with errors.Is.
var ErrNotFound = errors.New("source not found")

// Error is returned by Read.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Kind == ErrorKindNotFound
}

// Read loads stylesheet addressed by path. Path is resolved the same way for
// plain files and archive entries: it is walked upward until existing file
// is found, if that file is zip archive the rest of the path names entry in
// it.
func Read(ctx context.Context, path string, opts Options, log *zap.Logger) (*Source, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("source")

	if len(path) == 0 {
		return nil, &Error{Kind: ErrorKindNotFound, Path: path, Err: errors.New("empty path")}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &Error{Kind: ErrorKindIo, Path: path, Err: err}
	}

	src := &Source{Name: path}
	var head string
	for head = abs; len(head) != 0; head, _ = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))
		if len(head) == 0 {
			break
		}

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if head == abs {
				return nil, &Error{Kind: ErrorKindIo, Path: path, Err: errors.New("is a directory")}
			}
			return nil, &Error{Kind: ErrorKindNotFound, Path: path, Err: fmt.Errorf("nothing named %q in %s", strings.TrimPrefix(abs, head), head)}
		}
		if !fi.Mode().IsRegular() {
			return nil, &Error{Kind: ErrorKindIo, Path: path, Err: fmt.Errorf("unexpected file mode %s", fi.Mode())}
		}

		src.Path = head
		if head == abs {
			if src.Data, err = os.ReadFile(head); err != nil {
				return nil, &Error{Kind: ErrorKindIo, Path: path, Err: err}
			}
			log.Debug("Read file", zap.String("path", head), zap.Int("bytes", len(src.Data)))
			break
		}

		isArchive, err := archive.IsArchive(head)
		if err != nil {
			return nil, &Error{Kind: ErrorKindIo, Path: path, Err: fmt.Errorf("unable to check archive type: %w", err)}
		}
		if !isArchive {
			return nil, &Error{Kind: ErrorKindNotFound, Path: path, Err: fmt.Errorf("%s is not an archive", head)}
		}

		// name inside archive always uses forward slashes
		entry := filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(abs, head), string(filepath.Separator)))
		if src.Data, err = archive.ReadFile(head, entry, opts.CodePage); err != nil {
			if errors.Is(err, archive.ErrNoEntry) {
				return nil, &Error{Kind: ErrorKindNotFound, Path: path, Err: err}
			}
			return nil, &Error{Kind: ErrorKindIo, Path: path, Err: err}
		}
		log.Debug("Read archive entry", zap.String("archive", head), zap.String("entry", entry), zap.Int("bytes", len(src.Data)))
		break
	}
	if src.Path == "" {
		return nil, &Error{Kind: ErrorKindNotFound, Path: path}
	}

	if err := src.decode(opts, log); err != nil {
		return nil, &Error{Kind: ErrorKindIo, Path: path, Err: err}
	}
	return src, nil
}

// decode checks content type and turns stored bytes into stylesheet text.
func (s *Source) decode(opts Options, log *zap.Logger) error {
	if kind, err := filetype.Match(s.Data); err == nil && kind != filetype.Unknown {
		return fmt.Errorf("binary content (%s) is not a stylesheet", kind.MIME.Value)
	}

	text, err := toUTF8(s.Data)
	if err != nil {
		return fmt.Errorf("unable to decode text: %w", err)
	}

	if opts.HTMLStyles && isHTML(s.Name, text) {
		styles, err := extractStyles(text)
		if err != nil {
			return fmt.Errorf("unable to parse HTML: %w", err)
		}
		log.Debug("Extracted styles from HTML", zap.String("source", s.Name), zap.Int("bytes", len(styles)))
		s.Text, s.HTML = styles, true
		return nil
	}
	s.Text = text
	return nil
}

// toUTF8 decodes text honoring byte order mark, UTF-8 is assumed without one.
func toUTF8(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

var htmlExts = map[string]bool{".html": true, ".htm": true, ".xhtml": true, ".xht": true}

// isHTML decides by name extension or by looking at the beginning of text.
func isHTML(name, text string) bool {
	if htmlExts[strings.ToLower(filepath.Ext(name))] {
		return true
	}
	start := strings.ToLower(strings.TrimSpace(text[:min(len(text), 512)]))
	return strings.HasPrefix(start, "<!doctype html") || strings.HasPrefix(start, "<html")
}

// extractStyles concatenates contents of all <style> elements in document
// order.
func extractStyles(text string) (string, error) {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return "", err
	}

	var (
		buf  bytes.Buffer
		walk func(*html.Node)
	)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Style {
			for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
				if ch.Type == html.TextNode {
					buf.WriteString(ch.Data)
				}
			}
			buf.WriteByte('\n')
			return
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(doc)
	return buf.String(), nil
}
