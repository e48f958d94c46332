package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var handFlag string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Solve a hand into a connected board",
	RunE: func(_ *cobra.Command, _ []string) error {
		counts, err := parseHandFlag(handFlag)
		if err != nil {
			return err
		}

		board, elapsed, err := svc.PlayBananagrams(counts)
		if err != nil {
			return err
		}

		printBoard(board)
		fmt.Printf("solved in %s\n", elapsed)
		return nil
	},
}

func init() {
	playCmd.Flags().StringVar(&handFlag, "hand", "", "available letters, e.g. BAANT (required)")
	playCmd.MarkFlagRequired("hand")
}

func printBoard(board [][]byte) {
	for _, row := range board {
		line := make([]byte, len(row))
		for i, c := range row {
			if c == ' ' {
				line[i] = '.'
			} else {
				line[i] = c
			}
		}
		fmt.Println(string(line))
	}
}
