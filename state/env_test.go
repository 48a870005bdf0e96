package state

import (
	"archive/zip"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// writeConfig stores configuration which keeps all program output inside dir.
func writeConfig(t *testing.T, dir, analysis string) string {
	t.Helper()
	content := "version: 1\n" +
		"analysis:\n" + analysis +
		"logging:\n" +
		"  console:\n    level: none\n" +
		"  file:\n    level: none\n    destination: " + filepath.Join(dir, "cssm.log") + "\n" +
		"reporting:\n  destination: " + filepath.Join(dir, "report.zip") + "\n"
	name := filepath.Join(dir, "cssm.yaml")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return name
}

func readReport(t *testing.T, name string) map[string]string {
	t.Helper()
	r, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("report not readable: %v", err)
	}
	defer r.Close()

	entries := make(map[string]string)
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		entries[f.Name] = string(data)
	}
	return entries
}

func TestContextWithEnv(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))

	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if _, err := uuid.Parse(env.RunID); err != nil {
		t.Errorf("RunID %q is not a valid uuid: %v", env.RunID, err)
	}
	if other := EnvFromContext(ContextWithEnv(context.Background())); other.RunID == env.RunID {
		t.Error("RunID must differ between environments")
	}
	if env.Cfg != nil || env.Log != nil || env.Rpt != nil || env.CodePage != nil {
		t.Error("fresh environment must not be configured")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Setup(t *testing.T) {
	tests := []struct {
		name     string
		analysis string
		codePage encoding.Encoding
	}{
		{"names as is", "  zip_code_page: \"\"\n", nil},
		{"cp866 names", "  zip_code_page: cp866\n", charmap.CodePage866},
		{"windows-1251 names", "  zip_code_page: windows-1251\n", charmap.Windows1251},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := EnvFromContext(ContextWithEnv(context.Background()))
			if err := env.Setup(writeConfig(t, t.TempDir(), tt.analysis), false); err != nil {
				t.Fatalf("Setup() error = %v", err)
			}
			defer env.Close()

			if env.Cfg == nil || env.Log == nil {
				t.Fatal("Setup() must load configuration and prepare logger")
			}
			if env.Rpt != nil {
				t.Error("report created without debug")
			}
			if env.CodePage != tt.codePage {
				t.Errorf("CodePage = %v, want %v", env.CodePage, tt.codePage)
			}
		})
	}
}

func TestLocalEnv_SetupDefaults(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	if err := env.Setup("", false); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	defer env.Close()

	if env.Cfg.Analysis.ZipCodePage != "" || env.CodePage != nil {
		t.Errorf("default code page = %q/%v, want none", env.Cfg.Analysis.ZipCodePage, env.CodePage)
	}
	if env.Rpt != nil {
		t.Error("report created without debug")
	}
}

func TestLocalEnv_SetupErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		env := EnvFromContext(ContextWithEnv(context.Background()))
		err := env.Setup(filepath.Join(t.TempDir(), "nope.yaml"), false)
		if err == nil || !strings.Contains(err.Error(), "unable to prepare configuration") {
			t.Errorf("Setup() error = %v", err)
		}
		if env.Log != nil {
			t.Error("logger must not be prepared on configuration failure")
		}
	})

	t.Run("unknown code page", func(t *testing.T) {
		env := EnvFromContext(ContextWithEnv(context.Background()))
		err := env.Setup(writeConfig(t, t.TempDir(), "  zip_code_page: no-such-charset\n"), false)
		if err == nil || !strings.Contains(err.Error(), "unable to prepare configuration") {
			t.Errorf("Setup() error = %v, want validation failure", err)
		}
		if env.CodePage != nil {
			t.Error("CodePage must stay unset on failure")
		}
	})
}

func TestLocalEnv_SetupDebug(t *testing.T) {
	t.Cleanup(func() { debug.SetCrashOutput(nil, debug.CrashOptions{}) })

	dir := t.TempDir()
	env := EnvFromContext(ContextWithEnv(context.Background()))
	if err := env.Setup(writeConfig(t, dir, "  format: yaml\n"), true); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if env.Rpt == nil {
		t.Fatal("debug Setup() must create report")
	}
	env.Logger("test").Debug("analysis step")

	if err := env.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	entries := readReport(t, filepath.Join(dir, "report.zip"))
	if !strings.Contains(entries["config/cssm.yaml"], "format: yaml") {
		t.Errorf("report lacks actual configuration, has %q", entries["config/cssm.yaml"])
	}
	final := entries["final.log"]
	if !strings.Contains(final, "analysis step") {
		t.Errorf("debug messages must reach report log:\n%s", final)
	}
	if !strings.Contains(final, env.RunID) {
		t.Errorf("log entries must carry run id %s:\n%s", env.RunID, final)
	}
}

func TestLocalEnv_Logger(t *testing.T) {
	if (&LocalEnv{}).Logger("stats") == nil {
		t.Fatal("Logger() must not return nil without configured log")
	}

	core, logs := observer.New(zap.DebugLevel)
	env := &LocalEnv{Log: zap.New(core).With(zap.String("run", "r1"))}
	env.Logger("stats").Debug("hello")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].LoggerName != "stats" {
		t.Errorf("LoggerName = %q, want stats", entries[0].LoggerName)
	}
	if entries[0].ContextMap()["run"] != "r1" {
		t.Errorf("context = %v, want run=r1", entries[0].ContextMap())
	}
}

func TestLocalEnv_RedirectStdLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	env := &LocalEnv{Log: zap.New(core)}

	env.RedirectStdLog()
	log.Print("from standard logger")
	env.RestoreStdLog()
	log.SetOutput(io.Discard)
	log.Print("after restore")
	log.SetOutput(os.Stderr)

	if got := logs.FilterMessage("from standard logger").Len(); got != 1 {
		t.Errorf("redirected messages = %d, want 1", got)
	}
	if got := logs.FilterMessage("after restore").Len(); got != 0 {
		t.Error("messages must not be redirected after restore")
	}
	// repeated restore is harmless
	env.RestoreStdLog()

	(&LocalEnv{}).RedirectStdLog()
	(&LocalEnv{}).RestoreStdLog()
}

func TestLocalEnv_Close(t *testing.T) {
	if err := (&LocalEnv{}).Close(); err != nil {
		t.Errorf("Close() without report error = %v", err)
	}
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now().Add(-time.Second)}
	if up := env.Uptime(); up < time.Second {
		t.Errorf("Uptime() = %v, want at least 1s", up)
	}
}
