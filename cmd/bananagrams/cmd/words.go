package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var wordsHandFlag string

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List words playable from a hand, split by dictionary",
	RunE: func(_ *cobra.Command, _ []string) error {
		counts, err := parseHandFlag(wordsHandFlag)
		if err != nil {
			return err
		}

		short, full, err := svc.GetPlayableWords(counts)
		if err != nil {
			return err
		}

		fmt.Printf("short (%d): %s\n", len(short), strings.Join(short, ", "))
		fmt.Printf("full (%d): %s\n", len(full), strings.Join(full, ", "))
		return nil
	},
}

func init() {
	wordsCmd.Flags().StringVar(&wordsHandFlag, "hand", "", "available letters, e.g. BAANT (required)")
	wordsCmd.MarkFlagRequired("hand")
}
