package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/winsweep/winsweep/internal/clean"
	"github.com/winsweep/winsweep/internal/config"
)

var (
	cleanAll    bool
	cleanList   bool
	cleanYes    bool
	cleanDryRun bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [category ...]",
	Short: "Free up disk space",
	Long: `Deep cleanup of caches, logs and temp files to reclaim disk space.

Pass category ids to clean a subset, or --all for everything. Destructive
steps (container volume pruning) ask for confirmation unless --yes is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cleanList {
			listCategories()
			return nil
		}

		cats, err := selectCategories(args)
		if err != nil {
			return err
		}

		runner := newRunner(cleanConfirmer(), cleanDryRun)
		printReports(runner.RunAll(cats))
		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanAll, "all", false, "Clean all categories")
	cleanCmd.Flags().BoolVar(&cleanList, "list", false, "List category ids and exit")
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "Pre-approve destructive steps")
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "Preview the cleanup plan without deleting")
}

func selectCategories(args []string) ([]config.Category, error) {
	if cleanAll {
		// Refuse the ambiguous combination rather than guessing which
		// selection the operator meant.
		if len(args) > 0 {
			return nil, fmt.Errorf("--all cannot be combined with category ids")
		}
		return config.Catalog(), nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("nothing selected: pass category ids, or --all (see --list)")
	}

	cats := make([]config.Category, 0, len(args))
	for _, id := range args {
		if id == config.AllID {
			return config.Catalog(), nil
		}
		cat, ok := config.Find(id)
		if !ok {
			return nil, fmt.Errorf("unknown category %q (known: %s)", id, strings.Join(categoryIDs(), ", "))
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

func categoryIDs() []string {
	cats := config.Catalog()
	ids := make([]string, 0, len(cats)+1)
	ids = append(ids, config.AllID)
	for _, cat := range cats {
		ids = append(ids, cat.ID)
	}
	return ids
}

func listCategories() {
	fmt.Printf("%-18s %s\n", "ID", "LABEL")
	fmt.Printf("%-18s %s\n", config.AllID, "Everything below, in order")
	for _, cat := range config.Catalog() {
		fmt.Printf("%-18s %s\n", cat.ID, cat.Label)
	}
}

// cleanConfirmer picks the confirmation gate: --yes approves everything, a
// terminal gets the interactive prompt, and anything else declines by
// default so scripted runs can never trigger a destructive step by accident.
func cleanConfirmer() clean.ConfirmFunc {
	if cleanYes {
		return func(string) bool { return true }
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return confirmViaStdin(bufio.NewReader(os.Stdin))
	}
	return nil
}
