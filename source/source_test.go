package source

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
)

const sheet = "h1, h2 { margin: 0 }\n@media print { .btn:hover { color: red } }\n"

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, data, 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", p, err)
	}
	return p
}

func writeZip(t *testing.T, dir, name string, files map[string]string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	f, err := os.Create(p)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for n, content := range files {
		fw, err := w.Create(n)
		if err != nil {
			t.Fatalf("Failed to create %s in zip: %v", n, err)
		}
		fw.Write([]byte(content))
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRead_PlainFile(t *testing.T) {
	p := writeFile(t, t.TempDir(), "site.css", []byte(sheet))

	src, err := Read(context.Background(), p, Options{}, zap.NewNop())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if src.Text != sheet {
		t.Errorf("Text = %q, want %q", src.Text, sheet)
	}
	if src.Size() != int64(len(sheet)) {
		t.Errorf("Size() = %d, want %d", src.Size(), len(sheet))
	}
	if src.Name != p || src.Path != p {
		t.Errorf("Name = %q, Path = %q, want %q", src.Name, src.Path, p)
	}
	if src.HTML {
		t.Error("plain file reported as HTML")
	}
}

func TestRead_EmptyFile(t *testing.T) {
	p := writeFile(t, t.TempDir(), "empty.css", nil)

	src, err := Read(context.Background(), p, Options{}, nil)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if src.Text != "" || src.Size() != 0 {
		t.Errorf("got text %q size %d, want empty", src.Text, src.Size())
	}
}

func TestRead_ArchiveEntry(t *testing.T) {
	dir := t.TempDir()
	zipPath := writeZip(t, dir, "site.zip", map[string]string{
		"assets/css/main.css": sheet,
		"assets/readme.txt":   "hello",
	})

	src, err := Read(context.Background(), filepath.Join(zipPath, "assets", "css", "main.css"), Options{}, zap.NewNop())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if src.Text != sheet {
		t.Errorf("Text = %q", src.Text)
	}
	if src.Path != zipPath {
		t.Errorf("Path = %q, want archive %q", src.Path, zipPath)
	}
	if src.Size() != int64(len(sheet)) {
		t.Errorf("Size() = %d, want uncompressed entry size %d", src.Size(), len(sheet))
	}

	_, err = Read(context.Background(), filepath.Join(zipPath, "assets", "missing.css"), Options{}, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing entry: error = %v, want ErrNotFound", err)
	}
}

func TestRead_NotFound(t *testing.T) {
	dir := t.TempDir()
	plain := writeFile(t, dir, "plain.css", []byte(sheet))

	for name, p := range map[string]string{
		"missing file":        filepath.Join(dir, "nope.css"),
		"missing in dir":      filepath.Join(dir, "sub", "deeper", "nope.css"),
		"path below css file": filepath.Join(plain, "inner.css"),
		"empty path":          "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Read(context.Background(), p, Options{}, nil)
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("error = %v, want ErrNotFound", err)
			}
			var se *Error
			if !errors.As(err, &se) || se.Kind != ErrorKindNotFound || se.Path != p {
				t.Errorf("error = %#v, want *Error{Kind: ErrorKindNotFound, Path: %q}", err, p)
			}
		})
	}
}

func TestRead_IOErrors(t *testing.T) {
	dir := t.TempDir()

	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}
	zipPath := writeZip(t, dir, "bundle.zip", map[string]string{"a.css": "a{}"})

	for name, p := range map[string]string{
		"directory":     dir,
		"binary file":   writeFile(t, dir, "logo.css", png),
		"whole archive": zipPath,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Read(context.Background(), p, Options{}, nil)
			var se *Error
			if !errors.As(err, &se) {
				t.Fatalf("error = %v, want *Error", err)
			}
			if se.Kind != ErrorKindIo {
				t.Errorf("Kind = %s, want io", se.Kind)
			}
			if errors.Is(err, ErrNotFound) {
				t.Error("IO error must not match ErrNotFound")
			}
		})
	}
}

func TestRead_Cancelled(t *testing.T) {
	p := writeFile(t, t.TempDir(), "a.css", []byte(sheet))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Read(ctx, p, Options{}, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestRead_UTF16(t *testing.T) {
	for name, endianness := range map[string]unicode.Endianness{
		"little endian": unicode.LittleEndian,
		"big endian":    unicode.BigEndian,
	} {
		t.Run(name, func(t *testing.T) {
			data, err := unicode.UTF16(endianness, unicode.UseBOM).NewEncoder().Bytes([]byte(sheet))
			if err != nil {
				t.Fatal(err)
			}
			p := writeFile(t, t.TempDir(), "wide.css", data)

			src, err := Read(context.Background(), p, Options{}, nil)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if src.Text != sheet {
				t.Errorf("Text = %q, want %q", src.Text, sheet)
			}
			if src.Size() != int64(len(data)) {
				t.Errorf("Size() = %d, want raw size %d", src.Size(), len(data))
			}
		})
	}

	t.Run("utf-8 bom", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "bom.css", append([]byte{0xEF, 0xBB, 0xBF}, sheet...))
		src, err := Read(context.Background(), p, Options{}, nil)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if src.Text != sheet {
			t.Errorf("BOM not stripped: %q", src.Text)
		}
	})
}

const page = `<!DOCTYPE html>
<html>
<head><title>t</title><style>h1, h2 { margin: 0 }</style></head>
<body><p>text</p><style media="print">.btn:hover { color: red }</style></body>
</html>`

func TestRead_HTML(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"index.html", "index.txt"} {
		t.Run(name, func(t *testing.T) {
			p := writeFile(t, dir, name, []byte(page))

			src, err := Read(context.Background(), p, Options{HTMLStyles: true}, nil)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !src.HTML {
				t.Error("HTML = false, want true")
			}
			if want := "h1, h2 { margin: 0 }\n.btn:hover { color: red }\n"; src.Text != want {
				t.Errorf("Text = %q, want %q", src.Text, want)
			}
			if src.Size() != int64(len(page)) {
				t.Errorf("Size() = %d, want full document size %d", src.Size(), len(page))
			}
		})
	}

	t.Run("extraction disabled", func(t *testing.T) {
		p := writeFile(t, dir, "raw.html", []byte(page))
		src, err := Read(context.Background(), p, Options{}, nil)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if src.HTML || src.Text != page {
			t.Error("document must be returned as is when extraction is disabled")
		}
	})

	t.Run("no styles", func(t *testing.T) {
		p := writeFile(t, dir, "bare.htm", []byte("<p>nothing</p>"))
		src, err := Read(context.Background(), p, Options{HTMLStyles: true}, nil)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if strings.TrimSpace(src.Text) != "" {
			t.Errorf("Text = %q, want empty", src.Text)
		}
	})
}

func TestError(t *testing.T) {
	inner := errors.New("permission denied")
	err := &Error{Kind: ErrorKindIo, Path: "a.css", Err: inner}
	if got, want := err.Error(), "a.css: io: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is must see wrapped error")
	}
	if got, want := (&Error{Kind: ErrorKindNotFound, Path: "b.css"}).Error(), "b.css: not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorKind(t *testing.T) {
	for _, name := range ErrorKindNames() {
		kind, err := ParseErrorKind(name)
		if err != nil {
			t.Fatalf("ParseErrorKind(%q) error = %v", name, err)
		}
		if kind.String() != name {
			t.Errorf("ParseErrorKind(%q).String() = %q", name, kind.String())
		}
	}
	if kind, err := ParseErrorKind("NOT FOUND"); err != nil || kind != ErrorKindNotFound {
		t.Errorf("ParseErrorKind(NOT FOUND) = %v, %v", kind, err)
	}
	if _, err := ParseErrorKind("missing"); !errors.Is(err, ErrInvalidErrorKind) {
		t.Errorf("ParseErrorKind(missing) error = %v, want ErrInvalidErrorKind", err)
	}
	if got := ErrorKind(7).String(); got != "ErrorKind(7)" {
		t.Errorf("String() = %q", got)
	}
}
