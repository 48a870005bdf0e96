package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	validator "github.com/go-playground/validator/v10"
	"github.com/rupor-github/gencfg"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	yaml "gopkg.in/yaml.v3"

	"cssm/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	AnalysisConfig struct {
		Parser           common.ParserBackend `yaml:"parser" validate:"gte=0"`
		Tolerant         bool                 `yaml:"tolerant"`
		Compression      common.Compression   `yaml:"compression" validate:"gte=0"`
		CompressionLevel int                  `yaml:"compression_level" validate:"min=-2,max=22"`
		SizeUnits        common.SizeUnits     `yaml:"size_units" validate:"gte=0"`
		Format           common.OutputFmt     `yaml:"format" validate:"gte=0"`
		HTMLStyles       bool                 `yaml:"html_styles"`
		ZipCodePage      string               `yaml:"zip_code_page"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Analysis  AnalysisConfig `yaml:"analysis"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// CodePage returns encoding for archive entry names, nil when none was
// configured.
func (conf *AnalysisConfig) CodePage() (encoding.Encoding, error) {
	if len(conf.ZipCodePage) == 0 {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(conf.ZipCodePage)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("character set %q is not supported", conf.ZipCodePage)
	}
	return enc, nil
}

// crossChecks validates fields which depend on each other.
func crossChecks(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	a := cfg.Analysis

	switch a.Compression {
	case common.CompressionGzip:
		if a.CompressionLevel > 9 {
			sl.ReportError(a.CompressionLevel, "Analysis.CompressionLevel", "CompressionLevel", "gzip_level", "")
		}
	case common.CompressionZstd:
		if a.CompressionLevel < 0 {
			sl.ReportError(a.CompressionLevel, "Analysis.CompressionLevel", "CompressionLevel", "zstd_level", "")
		}
	}
	if _, err := a.CodePage(); err != nil {
		sl.ReportError(a.ZipCodePage, "Analysis.ZipCodePage", "ZipCodePage", "iana_charset", "")
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(crossChecks)); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

// Dump returns actual configuration as YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
