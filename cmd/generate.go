package cmd

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/h2non/filetype"
	"github.com/spf13/cobra"

	"github.com/microstock-labs/stockmeta/internal/config"
	"github.com/microstock-labs/stockmeta/internal/export"
	"github.com/microstock-labs/stockmeta/internal/gemini"
	"github.com/microstock-labs/stockmeta/internal/keywords"
	"github.com/microstock-labs/stockmeta/internal/metadata"
	"github.com/microstock-labs/stockmeta/internal/models"
	"github.com/microstock-labs/stockmeta/internal/notify"
	"github.com/microstock-labs/stockmeta/internal/seo"
)

func newGenerateCmd() *cobra.Command {
	var (
		dir        string
		outDir     string
		platforms  []string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate metadata and CSV exports for a directory of images",
		Long: `Runs the full pipeline headlessly: every image in the directory is
sent to Gemini for metadata, keywords are scored and reordered for
discoverability, and one CSV per platform is written to the output
directory.`,
		Example: `  # Process ./photos and write CSVs for all platforms
  stockmeta generate --dir photos

  # Only Shutterstock and Adobe Stock
  stockmeta generate --dir photos --platforms shutterstock,adobe-stock`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Output.Dir
			}

			targets, err := resolvePlatforms(platforms)
			if err != nil {
				return err
			}

			imgs, err := readImageDir(dir)
			if err != nil {
				return err
			}
			if len(imgs) == 0 {
				return fmt.Errorf("no images found in %s", dir)
			}
			slog.Info("Processing images", "dir", dir, "count", len(imgs))

			svc := metadata.NewService(cfg.MetadataConfig(), gemini.New(), notify.Slog{})
			optimizer := seo.New(keywords.NewAnalyzer(rand.New(rand.NewSource(time.Now().UnixNano()))))

			results := make([]models.ExportableResult, 0, len(imgs))
			err = svc.GenerateSequence(cmd.Context(), imgs, cfg.APIKey(), func(i int, result *models.MetadataResult, err error) {
				if err != nil {
					return
				}
				opt := optimizer.Optimize(*result, nil)
				results = append(results, models.ExportableResult{
					Filename:          imgs[i].Name,
					Title:             opt.Title,
					AlternativeTitles: opt.AlternativeTitles,
					Description:       opt.Description,
					Keywords:          opt.Keywords,
					Category:          opt.Category,
				})
			})
			if err != nil {
				return err
			}
			if len(results) == 0 {
				return fmt.Errorf("no image could be processed")
			}

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}

			now := time.Now()
			for _, platform := range targets {
				path := filepath.Join(outDir, platform.Filename(now))
				if err := os.WriteFile(path, []byte(platform.Format(results)), 0644); err != nil {
					return fmt.Errorf("writing %s export: %w", platform.Name, err)
				}
				slog.Info("Export written", "platform", platform.Name, "path", path, "rows", len(results))
			}

			slog.Info("Done", "processed", len(results), "failed", len(imgs)-len(results))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory of images to process")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory for CSV files (default from config)")
	cmd.Flags().StringSliceVar(&platforms, "platforms", nil, "Platforms to export (default all)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	return cmd
}

func resolvePlatforms(names []string) ([]export.Platform, error) {
	if len(names) == 0 {
		return export.Platforms(), nil
	}
	targets := make([]export.Platform, 0, len(names))
	for _, name := range names {
		platform, err := export.ByName(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		targets = append(targets, platform)
	}
	return targets, nil
}

func readImageDir(dir string) ([]metadata.ImageFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading image directory: %w", err)
	}

	var imgs []metadata.ImageFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		if !filetype.IsImage(data) {
			continue
		}
		imgs = append(imgs, metadata.ImageFile{Name: entry.Name(), Data: data})
	}
	return imgs, nil
}
