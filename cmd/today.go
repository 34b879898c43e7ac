package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/hip/internal/dateutil"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Print today's date and day key",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%s (day key %s)\n", dateutil.Today(), dateutil.TodayKey())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
