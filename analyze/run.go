// Package analyze performs stylesheet analysis runs and presents results.
package analyze

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"cssm/common"
	"cssm/config"
	"cssm/css"
	"cssm/metrics"
	"cssm/sizes"
	"cssm/source"
)

// Options controls single analysis run.
type Options struct {
	Parser           common.ParserBackend
	Tolerant         bool
	Compression      common.Compression
	CompressionLevel int
	SizeUnits        common.SizeUnits
	HTMLStyles       bool
	CodePage         encoding.Encoding
}

// OptionsFromConfig builds run options from analysis configuration.
func OptionsFromConfig(conf *config.AnalysisConfig) (Options, error) {
	cp, err := conf.CodePage()
	if err != nil {
		return Options{}, fmt.Errorf("unknown zip code page %q: %w", conf.ZipCodePage, err)
	}
	return Options{
		Parser:           conf.Parser,
		Tolerant:         conf.Tolerant,
		Compression:      conf.Compression,
		CompressionLevel: conf.CompressionLevel,
		SizeUnits:        conf.SizeUnits,
		HTMLStyles:       conf.HTMLStyles,
		CodePage:         cp,
	}, nil
}

// Result of a successful run.
type Result struct {
	Source   *source.Source
	Document *css.Document
	Stats    metrics.StatsRecord
}

// Analyze reads stylesheet at path and computes its statistics. Compression
// runs in background while document is parsed and measured. Any failure ends
// the run with *StageError.
func Analyze(ctx context.Context, path string, opts Options, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("analyze")

	start := time.Now()
	src, err := source.Read(ctx, path, source.Options{HTMLStyles: opts.HTMLStyles, CodePage: opts.CodePage}, log)
	if err != nil {
		return nil, &StageError{Stage: StageRead, Err: err}
	}
	log.Debug("Source read", zap.String("source", src.Name), zap.Int64("size", src.Size()), zap.Bool("html", src.HTML), zap.Duration("elapsed", time.Since(start)))

	compressor, err := sizes.NewCompressor(opts.Compression, opts.CompressionLevel)
	if err != nil {
		return nil, &StageError{Stage: StageCompress, Err: err}
	}
	// task is abandoned when run fails, its goroutine finishes on its own
	task := sizes.Start(compressor, src.Data)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	parser := css.NewParser(log, css.WithBackend(opts.Parser), css.WithTolerance(opts.Tolerant))
	doc, err := parser.Parse([]byte(src.Text), src.Name)
	if err != nil {
		return nil, &StageError{Stage: StageParse, Err: err}
	}
	for _, w := range doc.Warnings {
		log.Warn("Stylesheet problem", zap.String("source", src.Name), zap.String("problem", w))
	}
	log.Debug("Stylesheet parsed", zap.Stringer("backend", parser.Backend()), zap.Int("nodes", len(doc.Nodes)), zap.Duration("elapsed", time.Since(start)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	flat := metrics.Flatten(doc)
	elements := metrics.ExtractElements(flat.Selectors)
	log.Debug("Selectors processed", zap.Int("rules", len(flat.Rules)), zap.Int("selectors", len(flat.Selectors)), zap.Int("elements", len(elements)), zap.Duration("elapsed", time.Since(start)))

	start = time.Now()
	compressed, err := task.Wait()
	if err != nil {
		return nil, &StageError{Stage: StageCompress, Err: err}
	}
	log.Debug("Compression finished", zap.String("algorithm", compressor.Name()), zap.Int64("size", compressed), zap.Duration("waited", time.Since(start)))

	rec := metrics.Aggregate(flat, elements, metrics.SizeInfo{
		RawFileSize:       src.Size(),
		FileSize:          sizes.Humanize(src.Size(), opts.SizeUnits),
		RawCompressedSize: compressed,
		CompressedSize:    sizes.Humanize(compressed, opts.SizeUnits),
		Compression:       compressor.Name(),
	})
	rec.Source = src.Name

	return &Result{Source: src, Document: doc, Stats: rec}, nil
}
