package cmd

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/winsweep/winsweep/internal/status"
)

var statusRefresh int

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show disk usage",
	Long:  "Live dashboard of mounted partitions and their used/free space.",
	RunE: func(cmd *cobra.Command, args []string) error {
		model := status.NewModel(time.Duration(statusRefresh) * time.Second)
		_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	statusCmd.Flags().IntVar(&statusRefresh, "refresh", 5, "Refresh interval in seconds")
}
