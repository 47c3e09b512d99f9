package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"

	"github.com/winsweep/winsweep/internal/clean"
	"github.com/winsweep/winsweep/internal/config"
	"github.com/winsweep/winsweep/internal/ui"
)

// runInteractiveMenu loops a numbered menu until exit is chosen:
// 0 exits, 1 runs every category, 2..N runs one category each.
func runInteractiveMenu() {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Println("No terminal attached. Run 'winsweep clean --all' or see 'winsweep --help'.")
		return
	}

	reader := bufio.NewReader(os.Stdin)
	cats := config.Catalog()

	for {
		printMenu(cats)

		fmt.Print(ui.Title.Render("> "))
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 0 || choice > len(cats)+1 {
			fmt.Println(ui.Warn.Render("Enter a number from the menu."))
			continue
		}

		runner := newRunner(confirmViaStdin(reader), false)
		switch choice {
		case 0:
			return
		case 1:
			printReports(runner.RunAll(cats))
		default:
			printReports([]clean.Report{runner.RunCategory(cats[choice-2])})
		}
	}
}

func printMenu(cats []config.Category) {
	fmt.Println()
	fmt.Println(ui.Title.Render("WinSweep — choose what to clean"))
	fmt.Printf("  %2d. %s\n", 0, "Exit")
	fmt.Printf("  %2d. %s\n", 1, "Everything below")
	for i, cat := range cats {
		fmt.Printf("  %2d. %s\n", i+2, cat.Label)
	}
}

// confirmViaStdin asks a yes/no question on the terminal. Anything but an
// explicit yes — including an empty answer — declines.
func confirmViaStdin(reader *bufio.Reader) clean.ConfirmFunc {
	return func(prompt string) bool {
		fmt.Printf("%s [y/N]: ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}

func newRunner(confirm clean.ConfirmFunc, dryRun bool) *clean.Runner {
	return clean.New(clean.Options{
		Confirm: confirm,
		DryRun:  dryRun,
		Logger:  log.With().Str("component", "clean").Logger(),
	})
}
