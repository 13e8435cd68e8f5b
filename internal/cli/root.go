// Package cli implements the gallery command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/handiism/gallery-exporter/internal/config"
	"github.com/handiism/gallery-exporter/internal/gallery"
	"github.com/handiism/gallery-exporter/internal/model"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// ConfigEnv names the environment variable holding a settings file path.
const ConfigEnv = "GALLERY_CONFIG"

type options struct {
	configPath string
	output     string
	verbose    bool
	inventory  bool
}

// NewRootCmd returns the gallery command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "gallery [photo...]",
		Short: "Generate a static HTML photo gallery",
		Long: `Gallery copies the given photos into <output>/imgs and writes
<output>/gallery.html with one image per photo.

Without --output the gallery is written to the public/ directory next to
the gallery executable.`,
		Example: "  gallery cat.jpg dog.png\n  gallery -o ./site ~/Pictures/*.jpg",
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a JSON or YAML settings file (env "+ConfigEnv+")")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "export directory (overrides settings)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "show every copied photo")
	cmd.Flags().BoolVar(&opts.inventory, "inventory", false, "print format, size and dimensions of every photo after exporting")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	settings, err := loadSettings(opts)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("output") {
		settings.ExportDirectory = opts.output
	}
	if opts.verbose {
		settings.Verbose = true
	}
	if opts.inventory {
		settings.ShowInventory = true
	}

	logger := NewLogger(settings, cmd.ErrOrStderr())

	photoFiles, err := absolutePaths(args)
	if err != nil {
		return err
	}

	g := gallery.New(photoFiles,
		gallery.WithProgress(LogProgress(logger)),
		gallery.WithProbeLimit(settings.ProbeLimit()),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := g.Export(ctx, settings.ExportDirectory); err != nil {
		return err
	}

	if settings.ShowInventory {
		infos, err := g.Inventory(ctx)
		if err != nil {
			return fmt.Errorf("failed to build inventory: %w", err)
		}
		printInventory(cmd.OutOrStdout(), infos)
	}

	return nil
}

func loadSettings(opts *options) (*config.Settings, error) {
	path := opts.configPath
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path == "" {
		return config.DefaultSettings(), nil
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return settings, nil
}

func absolutePaths(paths []string) ([]string, error) {
	abs := make([]string, len(paths))
	for i, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		abs[i] = a
	}
	return abs, nil
}

func printInventory(w io.Writer, infos []model.PhotoInfo) {
	for _, info := range infos {
		format := info.Format
		if info.Err != nil {
			format = "?"
		}
		fmt.Fprintf(w, "%-32s %-6s %-11s %s\n", info.Name, format, info.Dimensions(), humanize.Bytes(uint64(info.Size)))
	}
	fmt.Fprintf(w, "%d photo(s), %s total\n", len(infos), humanize.Bytes(uint64(model.TotalSize(infos))))
}
