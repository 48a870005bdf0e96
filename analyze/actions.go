package analyze

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssm/common"
	"cssm/state"
)

// Flags returns options shared by analysis commands. Everything set here
// takes precedence over configuration.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "parser", Aliases: []string{"p"},
			Usage: "CSS parser `BACKEND` (" + strings.Join(common.ParserBackendNames(), ", ") + ")"},
		&cli.BoolFlag{Name: "tolerant", Aliases: []string{"t"}, Usage: "report broken stylesheet structure as warnings instead of failing"},
		&cli.StringFlag{Name: "compression", Aliases: []string{"z"},
			Usage: "`ALGORITHM` used to measure compressed size (" + strings.Join(common.CompressionNames(), ", ") + ")"},
		&cli.IntFlag{Name: "level", Usage: "compression `LEVEL`, 0 for algorithm default"},
		&cli.StringFlag{Name: "units", Aliases: []string{"u"},
			Usage: "human readable size `UNITS` (" + strings.Join(common.SizeUnitsNames(), ", ") + ")"},
	}
}

// StatsFlags returns options of "stats" command.
func StatsFlags() []cli.Flag {
	return append(Flags(),
		&cli.StringFlag{Name: "format", Aliases: []string{"f"},
			Usage: "output `FORMAT` (" + strings.Join(common.OutputFmtNames(), ", ") + ")"},
	)
}

// Stats is action for "stats" command.
func Stats(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Logger("stats")

	src, opts, err := prepare(env, cmd, log)
	if err != nil {
		return err
	}
	format := env.Cfg.Analysis.Format
	if cmd.IsSet("format") {
		if format, err = common.ParseOutputFmt(cmd.String("format")); err != nil {
			return fmt.Errorf("unable to select output format: %w", err)
		}
	}

	log.Debug("Analysis starting", zap.String("source", src), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Debug("Analysis completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	res, err := Analyze(ctx, src, opts, log)
	if err != nil {
		return err
	}
	storeResult(env, res, format, log)

	if err := Render(os.Stdout, res.Stats, format); err != nil {
		return fmt.Errorf("unable to output statistics: %w", err)
	}
	return nil
}

// Tree is action for "tree" command: it prints parsed document structure.
func Tree(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Logger("tree")

	src, opts, err := prepare(env, cmd, log)
	if err != nil {
		return err
	}

	res, err := Analyze(ctx, src, opts, log)
	if err != nil {
		return err
	}
	storeResult(env, res, common.OutputFmtJson, log)

	if _, err := fmt.Fprintln(os.Stdout, res.Document.String()); err != nil {
		return fmt.Errorf("unable to output document tree: %w", err)
	}
	return nil
}

// prepare gets source path from command line and merges command flags into
// configured analysis options.
func prepare(env *state.LocalEnv, cmd *cli.Command, log *zap.Logger) (string, Options, error) {
	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return "", Options{}, errors.New("no input source has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	opts, err := OptionsFromConfig(&env.Cfg.Analysis)
	if err != nil {
		return "", Options{}, err
	}
	if env.CodePage != nil {
		opts.CodePage = env.CodePage
	}
	if cmd.IsSet("parser") {
		if opts.Parser, err = common.ParseParserBackend(cmd.String("parser")); err != nil {
			return "", Options{}, fmt.Errorf("unable to select parser: %w", err)
		}
	}
	if cmd.IsSet("compression") {
		if opts.Compression, err = common.ParseCompression(cmd.String("compression")); err != nil {
			return "", Options{}, fmt.Errorf("unable to select compression: %w", err)
		}
		if !cmd.IsSet("level") && opts.Compression != env.Cfg.Analysis.Compression {
			// configured level belongs to another algorithm
			opts.CompressionLevel = 0
		}
	}
	if cmd.IsSet("level") {
		opts.CompressionLevel = int(cmd.Int("level"))
	}
	if cmd.IsSet("units") {
		if opts.SizeUnits, err = common.ParseSizeUnits(cmd.String("units")); err != nil {
			return "", Options{}, fmt.Errorf("unable to select size units: %w", err)
		}
	}
	if cmd.IsSet("tolerant") {
		opts.Tolerant = cmd.Bool("tolerant")
	}
	return src, opts, nil
}

// storeResult puts analysis artifacts into debug report, if one was
// requested.
func storeResult(env *state.LocalEnv, res *Result, format common.OutputFmt, log *zap.Logger) {
	if env.Rpt == nil {
		return
	}

	prefix := ReportPrefix(env.RunID, res.Source.Name)
	ext := filepath.Ext(res.Source.Name)
	if sameFile(res.Source.Path, res.Source.Name) {
		if err := env.Rpt.StoreCopy(path.Join(prefix, "source"+ext), res.Source.Path); err != nil {
			log.Warn("Unable to store source in report", zap.Error(err))
		}
	} else {
		// archive entry
		env.Rpt.StoreData(path.Join(prefix, "source"+ext), res.Source.Data)
	}
	env.Rpt.StoreData(path.Join(prefix, "document.txt"), []byte(res.Document.String()))

	var buf bytes.Buffer
	if err := Render(&buf, res.Stats, format); err == nil {
		env.Rpt.StoreData(path.Join(prefix, "stats"+format.Ext()), buf.Bytes())
	}
}

// ReportPrefix returns directory name in debug report for artifacts of a
// single run.
func ReportPrefix(runID, name string) string {
	s := slug.Make(filepath.Base(name))
	if s == "" {
		s = "source"
	}
	return path.Join(runID, s)
}

func sameFile(a, b string) bool {
	abs, err := filepath.Abs(b)
	return err == nil && abs == a
}
