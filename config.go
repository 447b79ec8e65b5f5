package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-pathtracer/pkg/publish"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Config is the CLI configuration. Sources, lowest precedence first: the
// .env file, the process environment, command line flags.
type Config struct {
	Scene        string // Built-in scene ID or path to a JSON scene file
	ScenesDir    string // Directory listed by -list
	Output       string // Output image path; empty writes under output/<scene>/
	PreviewWidth int    // Also write a downscaled copy this wide; 0 disables
	List         bool   // List scenes and exit
	Help         bool

	Sampling renderer.SamplingConfig // Zero fields keep the scene's values
	S3       publish.S3Config
	S3Prefix string // Key prefix for uploads
}

// envSource looks a key up in the process environment, then the .env values
type envSource struct {
	file map[string]string
}

func (e envSource) get(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return e.file[key]
}

func (e envSource) getInt(key string) (int, error) {
	value := e.get(key)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

// loadConfig reads envFile (a missing file is not an error) and the environment
func loadConfig(envFile string) (Config, error) {
	file, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
		file = map[string]string{}
	}
	env := envSource{file: file}

	cfg := Config{
		Scene:     env.get("PT_SCENE"),
		ScenesDir: env.get("PT_SCENES_DIR"),
		Output:    env.get("PT_OUTPUT"),
		S3: publish.S3Config{
			AccessKey: env.get("S3_ACCESS_KEY"),
			SecretKey: env.get("S3_SECRET_KEY"),
			Endpoint:  env.get("S3_ENDPOINT"),
			Region:    env.get("S3_REGION"),
			Bucket:    env.get("S3_BUCKET"),
			ACL:       env.get("S3_ACL"),
			PublicURL: env.get("CDN_URL"),
		},
		S3Prefix: env.get("S3_PREFIX"),
	}
	if cfg.Scene == "" {
		cfg.Scene = "random-spheres"
	}

	ints := []struct {
		key    string
		target *int
	}{
		{"PT_WIDTH", &cfg.Sampling.Width},
		{"PT_HEIGHT", &cfg.Sampling.Height},
		{"PT_SAMPLES", &cfg.Sampling.SamplesPerPixel},
		{"PT_DEPTH", &cfg.Sampling.MaxDepth},
		{"PT_THREADS", &cfg.Sampling.NumWorkers},
		{"PT_PREVIEW_WIDTH", &cfg.PreviewWidth},
	}
	for _, entry := range ints {
		if *entry.target, err = env.getInt(entry.key); err != nil {
			return Config{}, err
		}
	}

	if seed := env.get("PT_SEED"); seed != "" {
		if cfg.Sampling.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return Config{}, fmt.Errorf("invalid PT_SEED: %w", err)
		}
	}

	return cfg, nil
}

// parseFlags applies command line flags on top of cfg
func parseFlags(args []string, cfg Config, output io.Writer) (Config, error) {
	flags := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	flags.SetOutput(output)

	flags.StringVar(&cfg.Scene, "scene", cfg.Scene, "Built-in scene (random-spheres, default) or path to a .json scene file")
	flags.StringVar(&cfg.ScenesDir, "scenes-dir", cfg.ScenesDir, "Directory of .json scene files for -list")
	flags.StringVar(&cfg.Output, "output", cfg.Output, "Output image path; the extension picks the format (default output/<scene>/render_<timestamp>.png)")
	flags.IntVar(&cfg.Sampling.Width, "width", cfg.Sampling.Width, "Image width (0 = scene default)")
	flags.IntVar(&cfg.Sampling.Height, "height", cfg.Sampling.Height, "Image height (0 = scene default)")
	flags.IntVar(&cfg.Sampling.SamplesPerPixel, "samples", cfg.Sampling.SamplesPerPixel, "Samples per pixel (0 = scene default)")
	flags.IntVar(&cfg.Sampling.MaxDepth, "depth", cfg.Sampling.MaxDepth, "Maximum bounce depth (0 = scene default)")
	flags.IntVar(&cfg.Sampling.NumWorkers, "threads", cfg.Sampling.NumWorkers, "Worker count (0 = CPU count)")
	flags.Uint64Var(&cfg.Sampling.Seed, "seed", cfg.Sampling.Seed, "Random seed for sampling and procedural scenes")
	flags.IntVar(&cfg.PreviewWidth, "preview-width", cfg.PreviewWidth, "Also write a preview resized to this width (0 = off)")
	flags.StringVar(&cfg.S3.Bucket, "s3-bucket", cfg.S3.Bucket, "Upload results to this bucket")
	flags.StringVar(&cfg.S3Prefix, "s3-prefix", cfg.S3Prefix, "Key prefix for uploads")
	flags.BoolVar(&cfg.List, "list", false, "List available scenes and exit")
	flags.BoolVar(&cfg.Help, "help", false, "Show help information")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	if flags.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	if cfg.Help {
		fmt.Fprintln(output, "Path Tracer")
		fmt.Fprintln(output, "Usage: pathtracer [options]")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Options:")
		flags.PrintDefaults()
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Settings are also read from .env and PT_*/S3_* environment variables.")
	}
	return cfg, nil
}
