package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/banastack/bananagrams/pkg/solve"
)

var (
	settingsExtra   int
	settingsMaxIter int
	settingsFull    bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the active solve settings",
	RunE: func(_ *cobra.Command, _ []string) error {
		s := svc.GetSettings()
		fmt.Printf("extraLettersAllowed=%d maxIterations=%d useFullDictionary=%t\n",
			s.ExtraLettersAllowed, s.MaxIterations, s.UseFullDictionary)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the active solve settings",
	RunE: func(_ *cobra.Command, _ []string) error {
		return svc.SetSettings(solve.Settings{
			ExtraLettersAllowed: settingsExtra,
			MaxIterations:       settingsMaxIter,
			UseFullDictionary:   settingsFull,
		})
	},
}

func init() {
	settingsSetCmd.Flags().IntVar(&settingsExtra, "extra", 2, "extra letters allowed beyond the hand when matching dictionary words")
	settingsSetCmd.Flags().IntVar(&settingsMaxIter, "max-iterations", 2_000_000, "search iteration cap")
	settingsSetCmd.Flags().BoolVar(&settingsFull, "full-dict", false, "use the full dictionary instead of the short one")
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}
