// Package main provides the CLI entry point for invsheet.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"invsheet/pkg/invsheet"
	"invsheet/pkg/invsheet/imaging"
	"invsheet/pkg/invsheet/models"
	"invsheet/pkg/invsheet/progress"
)

var (
	outputPath string
	withImages bool
	imageDir   string
	batchSize  int
	replace    bool
	pretty     bool
	quiet      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "invsheet",
		Short: "Export and import inventory spreadsheet backups",
		Long: `invsheet converts an inventory list (JSON) to an xlsx backup and back,
optionally embedding per-item images as inline data.`,
	}

	exportCmd := &cobra.Command{
		Use:   "export [items.json]",
		Short: "Export inventory items to an xlsx backup",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output xlsx path (default: generated backup name)")
	exportCmd.Flags().BoolVar(&withImages, "images", false, "Embed item images as inline data")
	exportCmd.Flags().StringVar(&imageDir, "image-dir", "", "Directory holding <item-id>.<ext> image files")
	exportCmd.Flags().IntVar(&batchSize, "batch-size", invsheet.DefaultBatchSize, "Items processed per batch")
	exportCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")

	importCmd := &cobra.Command{
		Use:   "import [backup.xlsx]",
		Short: "Import inventory items from an xlsx backup",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
	importCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output JSON path (default: stdout)")
	importCmd.Flags().BoolVar(&withImages, "images", true, "Copy embedded image cells onto imported items")
	importCmd.Flags().BoolVar(&replace, "replace", false, "Mark the result as a full replacement (informational)")
	importCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	importCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")

	rootCmd.AddCommand(exportCmd, importCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read inventory: %w", err)
	}
	var items []models.InventoryItem
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to parse inventory: %w", err)
	}

	var store imaging.Store
	if imageDir != "" {
		store = imaging.DirStore{Dir: imageDir}
	}

	// The saver writes next to the requested output path; the generated
	// backup name stays a Service concern when no path is given.
	saverDir := "."
	filename := ""
	if outputPath != "" {
		saverDir = filepath.Dir(outputPath)
		filename = filepath.Base(outputPath)
	}
	svc := invsheet.NewService(invsheet.DirSaver{Dir: saverDir}, imaging.NewOptimizer(store))

	opts := invsheet.ExportOptions{
		IncludeImages: withImages,
		Filename:      filename,
		OnProgress:    progressPrinter(),
		BatchSize:     batchSize,
	}

	res, err := svc.Export(context.Background(), items, opts)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	out, err := json.Marshal(res)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open backup: %w", err)
	}
	defer f.Close()

	svc := invsheet.NewService(nil, nil)
	opts := invsheet.ImportOptions{
		ReplaceExisting: replace,
		LoadImages:      withImages,
		OnProgress:      progressPrinter(),
	}

	res, err := svc.Import(context.Background(), f, opts)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(res, "", "  ")
	} else {
		out, err = json.Marshal(res)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, out, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(out))
	return nil
}

// progressPrinter returns a progress sink writing to stderr, or nil when
// quiet output is requested.
func progressPrinter() progress.Func {
	if quiet {
		return nil
	}
	return func(ev progress.Event) {
		fmt.Fprintf(os.Stderr, "[%3d%%] %s\n", ev.Percentage, ev.Message)
	}
}
