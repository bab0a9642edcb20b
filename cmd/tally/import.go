package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tallyware/tally/internal/classify"
	"github.com/tallyware/tally/internal/common"
	"github.com/tallyware/tally/internal/csv"
	"github.com/tallyware/tally/internal/model"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import transactions from CSV files",
		Long: `Import transactions from CSV exports. Columns are matched by
header name: date, description, type, amount are required; id, category,
department and account_id are optional. Rows that fail to parse are
skipped and counted, never fatal.

Examples:
  # Import a single file
  tally import ~/Downloads/export_jan.csv

  # Import everything in a directory
  tally import ~/Downloads/*.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")
	cmd.Flags().Bool("categorize", true, "Fill missing categories from description keywords")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	categorize, _ := cmd.Flags().GetBool("categorize")

	files, err := expandGlobs(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var all []model.Transaction
	seen := make(map[string]bool)
	skipped := 0

	bar := progressbar.Default(int64(len(files)), "importing")
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			slog.Error("failed to open file", "file", path, "error", err)
			_ = bar.Add(1)
			continue
		}

		result, err := csv.Read(ctx, f)
		_ = f.Close()
		if err != nil {
			common.LogError(err, "failed to parse CSV file", common.Fields{"file": path})
			_ = bar.Add(1)
			continue
		}

		skipped += result.Skipped
		for _, txn := range result.Transactions {
			if !seen[txn.Hash] {
				seen[txn.Hash] = true
				all = append(all, txn)
			}
		}

		slog.Info("processed file",
			"file", filepath.Base(path),
			"transactions", len(result.Transactions),
			"skipped_rows", result.Skipped)
		_ = bar.Add(1)
	}

	if categorize {
		matcher := classify.NewMatcher(classify.DefaultRules())
		categorized := matcher.Apply(all)
		if categorized > 0 {
			slog.Info("categorized transactions from descriptions", "count", categorized)
		}
	}

	return saveImported(cmd, all, skipped, dryRun)
}

// expandGlobs resolves glob patterns and plain paths into a file list.
func expandGlobs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("no files found matching pattern", "pattern", pattern)
			}
		} else {
			files = append(files, matches...)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files found to import")
	}
	return files, nil
}

// saveImported persists deduplicated transactions unless dry-run.
func saveImported(cmd *cobra.Command, all []model.Transaction, skipped int, dryRun bool) error {
	if len(all) == 0 {
		slog.Warn("no transactions found in any file")
		return nil
	}

	if dryRun {
		fmt.Printf("Dry run: would import %d transaction(s), %d malformed row(s) skipped\n", len(all), skipped)
		return nil
	}

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()
	if err := store.Migrate(ctx); err != nil {
		return err
	}

	inserted, err := store.SaveTransactions(ctx, all)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d new transaction(s) (%d duplicates ignored, %d malformed rows skipped)\n",
		inserted, len(all)-inserted, skipped)
	return nil
}
