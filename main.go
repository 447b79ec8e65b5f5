package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/publish"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func main() {
	envFile := os.Getenv("PT_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}

	cfg, err := loadConfig(envFile)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	cfg, err = parseFlags(os.Args[1:], cfg, os.Stdout)
	if err != nil {
		os.Exit(2)
	}
	if cfg.Help {
		return
	}

	if cfg.List {
		if err := listScenes(cfg.ScenesDir); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(context.Background(), cfg, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders cfg.Scene, writes the image (and preview) and optionally uploads them
func run(ctx context.Context, cfg Config, logger core.Logger) error {
	selectedScene, err := scene.CreateScene(cfg.Scene, cfg.Sampling.Seed)
	if err != nil {
		return err
	}
	logger.Printf("Using scene %s (%d shapes)\n", selectedScene.Name, selectedScene.GetPrimitiveCount())

	raytracer := selectedScene.NewRaytracer(cfg.Sampling, logger)
	buf, stats := raytracer.Render()
	logger.Printf("Average luminance %.4f across %d pixels\n", stats.AverageLuminance, stats.TotalPixels)

	filename := cfg.Output
	if filename == "" {
		outputDir := createOutputDir(cfg.Scene)
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := loaders.SaveImage(buf, filename); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", filename)
	written := []string{filename}

	if cfg.PreviewWidth > 0 {
		previewName := previewFilename(filename)
		preview := loaders.ResizeImage(buf, cfg.PreviewWidth, 0)
		if err := loaders.SaveImage(preview, previewName); err != nil {
			return err
		}
		logger.Printf("Preview saved as %s (%dx%d)\n", previewName, preview.Width, preview.Height)
		written = append(written, previewName)
	}

	if !cfg.S3.Enabled() {
		return nil
	}

	publisher, err := publish.NewS3Publisher(cfg.S3, logger)
	if err != nil {
		return err
	}
	for _, path := range written {
		url, err := publisher.Publish(ctx, path, uploadKey(cfg.S3Prefix, path))
		if err != nil {
			return err
		}
		if url != "" {
			logger.Printf("Published %s\n", url)
		}
	}
	return nil
}

func listScenes(dir string) error {
	groups, err := scene.ListAllScenes(dir)
	if err != nil {
		return err
	}
	for _, group := range groups {
		fmt.Printf("%s:\n", group.Name)
		for _, s := range group.Scenes {
			fmt.Printf("  %-24s %s\n", s.ID, s.Description)
		}
	}
	return nil
}

// createOutputDir returns output/<name>, name being the scene ID or the scene
// file's base name
func createOutputDir(sceneType string) string {
	name := filepath.Base(sceneType)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "scene"
	}
	return filepath.Join("output", name)
}

// previewFilename inserts "_preview" before the extension
func previewFilename(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + "_preview" + ext
}

func uploadKey(prefix, path string) string {
	base := filepath.Base(path)
	if prefix == "" {
		return base
	}
	return strings.TrimRight(prefix, "/") + "/" + base
}
