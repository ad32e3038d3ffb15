package pipeline

import (
	"errors"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/ironsheep/pixel-masks/internal/classify"
	"github.com/ironsheep/pixel-masks/internal/imaging"
	"github.com/ironsheep/pixel-masks/internal/masks"
)

// Summary describes a finished run.
type Summary struct {
	Info    *imaging.ImageInfo
	Counts  masks.Counts
	Written []string
	Elapsed time.Duration
}

// Runner executes runs with a fixed configuration and layer set.
type Runner struct {
	cfg    Config
	layers []masks.Layer
	log    *log.Logger
}

// New creates a Runner that renders masks.DefaultLayers. A nil logger
// discards all output.
func New(cfg Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Runner{
		cfg:    cfg,
		layers: masks.DefaultLayers(),
		log:    logger,
	}
}

// WithLayers replaces the rendered layer set.
func (r *Runner) WithLayers(layers []masks.Layer) *Runner {
	r.layers = layers
	return r
}

// Run decodes the input, renders every layer and writes them to the output
// directory in layer order.
//
// The returned Summary is non-nil whenever the scan completed, even if some
// writes failed, so callers can report what did get written.
func (r *Runner) Run() (*Summary, error) {
	start := time.Now()
	r.log.Println("Starting image processing...")

	img, info, err := imaging.Decode(r.cfg.InputPath)
	if err != nil {
		return nil, &StageError{Stage: StageDecode, Path: r.cfg.InputPath, Err: err}
	}
	r.log.Printf("Image dimensions: %dx%d", info.Width, info.Height)
	r.debugf("Source format %s, %s, %d bytes", info.Format, info.ColorDepth, info.FileSizeBytes)

	r.debugf("Scanning %d layers (parallel=%v)", len(r.layers), r.cfg.Parallel)
	result, err := masks.Composite(img, r.layers, masks.WithParallel(r.cfg.Parallel))
	if err != nil {
		return nil, &StageError{Stage: StageComposite, Err: err}
	}
	r.debugf("Scan took %v", result.Elapsed)

	for _, c := range classify.All() {
		r.log.Printf("Found %d %s pixels (mask color %s)", result.Counts[c], c, c.Hex())
	}

	summary := &Summary{Info: info, Counts: result.Counts}

	if err := imaging.EnsureDir(r.cfg.OutputDir); err != nil {
		return summary, &StageError{Stage: StageMkdir, Path: r.cfg.OutputDir, Err: err}
	}

	var failures []error
	for _, m := range result.Masks {
		path := filepath.Join(r.cfg.OutputDir, m.Layer.File)
		saveStart := time.Now()
		if err := imaging.Save(m.Image, path, r.cfg.Compression); err != nil {
			serr := &StageError{Stage: StageEncode, Path: path, Err: err}
			if !r.cfg.ContinueOnError {
				return summary, serr
			}
			r.log.Printf("Skipping %s: %v", m.Layer.Name, serr)
			failures = append(failures, serr)
			continue
		}
		summary.Written = append(summary.Written, path)
		r.log.Printf("Saved output image as '%s'", m.Layer.File)
		r.debugf("Wrote %s layer to %s in %v", m.Layer.Name, path, time.Since(saveStart))
	}

	summary.Elapsed = time.Since(start)
	r.log.Printf("Processing took: %v", summary.Elapsed)

	return summary, errors.Join(failures...)
}

func (r *Runner) debugf(format string, args ...interface{}) {
	if r.cfg.Debug {
		r.log.Printf(format, args...)
	}
}
