package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/pixel-masks/internal/masks"
	"github.com/ironsheep/pixel-masks/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("pixel-masks %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		default:
			fmt.Fprintf(os.Stderr, "pixel-masks takes no arguments (got %q); see --help\n", os.Args[1])
			os.Exit(2)
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := pipeline.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if cfg.Debug {
		log.Printf("pixel-masks v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if _, err := pipeline.New(cfg, log.Default()).Run(); err != nil {
		log.Fatalf("Processing failed: %v", err)
	}
}

func printHelp() {
	fmt.Println("pixel-masks - split an image into red, green, near-black and near-white masks")
	fmt.Println()
	fmt.Println("Usage: pixel-masks [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Printf("  %s=<path>         Source image (default %s)\n", pipeline.EnvInput, pipeline.DefaultInput)
	fmt.Printf("  %s=<dir>     Output directory (default %s)\n", pipeline.EnvOutputDir, pipeline.DefaultOutputDir)
	fmt.Printf("  %s=true        Scan row bands concurrently\n", pipeline.EnvParallel)
	fmt.Printf("  %s=true  Keep writing masks after a failed write\n", pipeline.EnvContinueOnError)
	fmt.Printf("  %s=<level> default, none, fast or best\n", pipeline.EnvCompression)
	fmt.Printf("  %s=debug      Enable debug logging\n", pipeline.EnvLogLevel)
	fmt.Println()
	fmt.Println("Output files:")
	for _, l := range masks.DefaultLayers() {
		fmt.Printf("  %-26s %v\n", l.File, l.Priority)
	}
}
