// Package state keeps everything a single cssm invocation shares between
// commands: configuration, logger, debug report and values derived from
// configuration.
package state

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"cssm/config"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	RunID    string            // identifies this invocation in logs and debug report
	CodePage encoding.Encoding // from analysis.zip_code_page, nil when not set

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

// Setup loads configuration from configFile (defaults only when empty) and
// prepares logging and archive code page. With debug set a report is created
// first, so it receives actual configuration and the log.
func (e *LocalEnv) Setup(configFile string, debug bool) (err error) {
	if e.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if debug {
		if e.Rpt, err = e.Cfg.Reporting.Prepare(); err != nil {
			return fmt.Errorf("unable to prepare debug reporter: %w", err)
		}
		if data, err := config.Dump(e.Cfg); err == nil {
			name := "config/actual.yaml"
			if len(configFile) > 0 {
				name = "config/" + filepath.Base(configFile)
			}
			e.Rpt.StoreData(name, data)
		}
	}

	log, err := e.Cfg.Logging.Prepare(e.Rpt)
	if err != nil {
		return fmt.Errorf("unable to prepare logs: %w", err)
	}
	e.Log = log.With(zap.String("run", e.RunID))
	e.RedirectStdLog()

	if e.CodePage, err = e.Cfg.Analysis.CodePage(); err != nil {
		return fmt.Errorf("unable to prepare archive code page: %w", err)
	}
	return nil
}

// Logger returns named logger, never nil.
func (e *LocalEnv) Logger(name string) *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log.Named(name)
}

// Close flushes logs and finalizes debug report. Errors after this point
// must go directly to stderr.
func (e *LocalEnv) Close() error {
	e.RestoreStdLog()
	if e.Rpt == nil {
		return nil
	}
	if err := e.Rpt.Close(); err != nil {
		return fmt.Errorf("unable to close debug report: %w", err)
	}
	return nil
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
		e.restoreStdLog = nil
	}
}
