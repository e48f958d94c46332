package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the current board and hand",
	RunE: func(_ *cobra.Command, _ []string) error {
		svc.Reset()
		fmt.Println("reset")
		return nil
	},
}
