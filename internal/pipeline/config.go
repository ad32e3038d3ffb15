package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ironsheep/pixel-masks/internal/imaging"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvInput           = "PIXEL_MASKS_INPUT"
	EnvOutputDir       = "PIXEL_MASKS_OUTPUT_DIR"
	EnvParallel        = "PIXEL_MASKS_PARALLEL"
	EnvContinueOnError = "PIXEL_MASKS_CONTINUE_ON_ERROR"
	EnvCompression     = "PIXEL_MASKS_PNG_COMPRESSION"
	EnvLogLevel        = "PIXEL_MASKS_LOG_LEVEL"
)

// Defaults used when the environment does not override them.
const (
	DefaultInput     = "input/dart2.png"
	DefaultOutputDir = "output"
)

// Config controls one run.
type Config struct {
	// InputPath is the source image.
	InputPath string

	// OutputDir receives one file per mask layer.
	OutputDir string

	// Parallel scans row bands concurrently.
	Parallel bool

	// ContinueOnError keeps writing the remaining masks after an encode failure.
	ContinueOnError bool

	// Compression is the PNG compression level for written masks.
	Compression imaging.Compression

	// Debug enables extra log lines.
	Debug bool
}

// DefaultConfig returns the fixed paths the command has always used.
func DefaultConfig() Config {
	return Config{
		InputPath: DefaultInput,
		OutputDir: DefaultOutputDir,
	}
}

// ConfigFromEnv builds a Config from DefaultConfig and the given environment
// lookup, usually os.Getenv. Unset or empty variables keep their defaults.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(getenv(EnvInput)); v != "" {
		cfg.InputPath = v
	}
	if v := strings.TrimSpace(getenv(EnvOutputDir)); v != "" {
		cfg.OutputDir = v
	}

	var err error
	if cfg.Parallel, err = envBool(getenv, EnvParallel); err != nil {
		return cfg, err
	}
	if cfg.ContinueOnError, err = envBool(getenv, EnvContinueOnError); err != nil {
		return cfg, err
	}

	if cfg.Compression, err = imaging.ParseCompression(getenv(EnvCompression)); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", EnvCompression, err)
	}

	switch level := strings.ToLower(strings.TrimSpace(getenv(EnvLogLevel))); level {
	case "", "info":
	case "debug":
		cfg.Debug = true
	default:
		return cfg, fmt.Errorf("invalid %s: unknown level %q", EnvLogLevel, level)
	}

	return cfg, nil
}

func envBool(getenv func(string) string, key string) (bool, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %q is not a boolean", key, v)
	}
	return b, nil
}
