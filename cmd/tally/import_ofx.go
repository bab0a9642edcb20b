package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tallyware/tally/internal/classify"
	"github.com/tallyware/tally/internal/model"
	"github.com/tallyware/tally/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) files exported
from your bank. Signed OFX amounts are mapped onto income and expense
types; duplicates are detected by content hash.

Examples:
  # Import a single file
  tally import-ofx ~/Downloads/chase_jan_2024.qfx

  # Import all QFX files in a directory
  tally import-ofx ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")
	cmd.Flags().Bool("categorize", true, "Fill missing categories from description keywords")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	categorize, _ := cmd.Flags().GetBool("categorize")

	files, err := expandGlobs(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	parser := ofx.NewParser()
	var all []model.Transaction
	seen := make(map[string]bool)

	bar := progressbar.Default(int64(len(files)), "importing")
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			slog.Error("failed to open file", "file", path, "error", err)
			_ = bar.Add(1)
			continue
		}

		transactions, err := parser.ParseFile(ctx, f)
		_ = f.Close()
		if err != nil {
			slog.Error("failed to parse OFX file", "file", path, "error", err)
			_ = bar.Add(1)
			continue
		}

		added := 0
		for _, txn := range transactions {
			if !seen[txn.Hash] {
				seen[txn.Hash] = true
				all = append(all, txn)
				added++
			}
		}

		slog.Info("processed file",
			"file", filepath.Base(path),
			"transactions", len(transactions),
			"added", added,
			"duplicates", len(transactions)-added)
		_ = bar.Add(1)
	}

	if categorize {
		matcher := classify.NewMatcher(classify.DefaultRules())
		categorized := matcher.Apply(all)
		if categorized > 0 {
			slog.Info("categorized transactions from descriptions", "count", categorized)
		}
	}

	return saveImported(cmd, all, 0, dryRun)
}
