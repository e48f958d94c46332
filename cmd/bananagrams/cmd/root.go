// Package cmd wires the bananagrams CLI: a thin cobra front end over
// internal/service, loading its dictionary paths from the environment
// the way the teacher's server entrypoint does. The worker count is not
// read from the environment; solves use one worker per logical CPU.
// Grounded in the teacher's cmd/crossgen/cmd.rootCmd (PersistentFlags +
// cobra.OnInitialize) and cmd/server/main.go's godotenv+getEnv config
// loading.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/banastack/bananagrams/internal/service"
	"github.com/banastack/bananagrams/pkg/dictionary"
)

const version = "0.1.0"

var (
	cfgFile      string
	verbosity    int
	shortDictOut string
	fullDictOut  string

	svc *service.Service
)

var rootCmd = &cobra.Command{
	Use:     "bananagrams",
	Short:   "Bananagrams solver CLI",
	Long:    "bananagrams is a command-line tool for solving Bananagrams hands into connected crossword boards, listing playable words, and replaying incremental hand changes.",
	Version: version,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once by main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig, initService)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (echoed to stderr; the file is not read)")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "verbosity level (echoed to stderr; log output does not depend on it)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(resetCmd)
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
	if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "using config file: %s\n", cfgFile)
	}
	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, "verbosity level: %d\n", verbosity)
	}

	shortDictOut = getEnv("DICT_SHORT_PATH", "")
	fullDictOut = getEnv("DICT_FULL_PATH", "")
}

// initService loads the configured dictionaries (embedded defaults,
// overridden by DICT_SHORT_PATH/DICT_FULL_PATH if set) and constructs
// the package-level Service every subcommand shares.
func initService() {
	shortDict, err := loadDictionary(shortDictOut, dictionary.Short)
	if err != nil {
		log.Fatalf("failed to load short dictionary: %v", err)
	}
	fullDict, err := loadDictionary(fullDictOut, dictionary.Full)
	if err != nil {
		log.Fatalf("failed to load full dictionary: %v", err)
	}

	svc = service.New(service.Dictionaries{Short: shortDict, Full: fullDict})
}

func loadDictionary(path, embeddedName string) (*dictionary.Index, error) {
	if path != "" {
		return dictionary.LoadFile(path)
	}
	return dictionary.LoadEmbedded(embeddedName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
