package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Metric selection
	linesFlag bool
	wordsFlag bool
	charsFlag bool
	bytesFlag bool

	// Processing
	numThreads int
)

// version is the application version, set via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "tally [OPTION]... [FILE]...",
	Short: "tally counts lines, words, characters, and bytes.",
	Long: `tally counts the number of lines, words, characters, and bytes in one or
more files, or from data piped to standard input when no files are given,
and prints the results to standard output.

Lines and words cannot be counted exactly in binary files; for those the
counts fall back to byte-level approximations.`,
	Version: version,
	Args:    cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(args)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().BoolVarP(&linesFlag, "lines", "l", false, "print the newline counts")
	rootCmd.Flags().BoolVarP(&wordsFlag, "words", "w", false, "print the word counts")
	rootCmd.Flags().BoolVarP(&charsFlag, "chars", "m", false, "print the character counts")
	rootCmd.Flags().BoolVarP(&bytesFlag, "bytes", "c", false, "print the byte counts")

	rootCmd.Flags().IntVarP(&numThreads, "threads", "t", 0, "max concurrently counting files (0 for auto)")
	viper.BindPFlag("threads", rootCmd.Flags().Lookup("threads"))
	viper.SetDefault("threads", 0)
}

// initConfig reads in config file and TALLY_* environment variables if set.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "tally"))
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.SetEnvPrefix("TALLY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "tally: reading config file: %v\n", err)
		}
	}
}

func main() {
	rootCmd.Execute()
}

// checkFiles filters the arguments down to readable regular files,
// reporting everything else to stderr. Surviving paths keep their
// argument order.
func checkFiles(args []string) []string {
	files := make([]string, 0, len(args))
	for _, path := range args {
		fi, err := os.Stat(path)
		switch {
		case err != nil:
			fmt.Fprintf(os.Stderr, "tally: %s: No such file or directory.\n", path)
		case fi.IsDir():
			fmt.Fprintf(os.Stderr, "tally: %s: Is a directory.\n", path)
		default:
			f, err := os.Open(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "tally: %s: Permission denied.\n", path)
				continue
			}
			f.Close()
			files = append(files, path)
		}
	}
	return files
}

// run is the pipeline orchestrator: fan one task per file out through the
// dispatcher, wait for all of them, reassemble in argument order, print.
// With no file arguments it counts standard input in a single pass.
func run(args []string) {
	metrics := normalizeMetrics(linesFlag, wordsFlag, charsFlag, bytesFlag)

	if len(args) == 0 {
		runStream(os.Stdin, metrics)
		return
	}

	files := checkFiles(args)
	if len(files) == 0 {
		return
	}

	ec := newExecContext(viper.GetInt("threads"))
	byPath := dispatch(context.Background(), ec, files, metrics)
	results := orderResults(byPath, files)

	var total CountResult
	if len(files) > 1 {
		total = totalResult(results, len(metrics))
	}
	printResults(os.Stdout, results, total)
}

// runStream handles the no-files case. The readiness probe fails fast on
// an interactive terminal instead of blocking on a read that may never
// deliver anything.
func runStream(in *os.File, metrics []Metric) {
	if !stdinReady(in) {
		fmt.Fprintf(os.Stderr, "tally: no input provided\nTry 'tally --help' for more information.\n")
		return
	}

	counts, err := countStream(in,
		hasMetric(metrics, Lines),
		hasMetric(metrics, Words),
		hasMetric(metrics, Chars),
		hasMetric(metrics, Bytes),
	)
	if err != nil {
		logError("count stdin", in.Name(), err)
		return
	}
	fmt.Fprintln(os.Stdout, formatRow(counts, ""))
}
