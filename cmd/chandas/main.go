package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chandas"
	"chandas/internal/config"
)

var (
	rootCmd = &cobra.Command{
		Use:   "chandas",
		Short: "Sanskrit metre recognition",
	}
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the configuration file")

	rootCmd.AddCommand(syllablesCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(identifyCmd)
}

// initEngine loads the configuration, builds the logger, and assembles
// the metre engine from the bundled and configured catalogs.
func initEngine() *chandas.Chandas {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level, err := zap.ParseAtomicLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Invalid log level %q: %v", cfg.Log.Level, err)
	}
	zapcfg := zap.NewProductionConfig()
	zapcfg.Level = level
	logger, err := zapcfg.Build()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	engine, err := chandas.Load(logger, cfg.Catalog.Extra...)
	if err != nil {
		log.Fatalf("Failed to load metre catalogs: %v", err)
	}
	return engine
}

// readLines reads verse lines from the file argument, or from stdin
// when no argument is given.
func readLines(args []string) []string {
	in := os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("Failed to open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	var lines []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	return lines
}

var syllablesCmd = &cobra.Command{
	Use:   "syllables [file]",
	Short: "Split verse lines into syllables with their weights",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine := initEngine()

		for _, line := range readLines(args) {
			if strings.TrimSpace(line) == "" {
				continue
			}
			syls, err := engine.ExtractSyllables(line)
			if err != nil {
				log.Printf("Skipping line %q: %v", line, err)
				continue
			}
			texts := make([]string, len(syls))
			weights := make([]string, len(syls))
			for i, s := range syls {
				texts[i] = s.Text
				weights[i] = s.Weight
			}
			fmt.Printf("%s\n  %s\n", strings.Join(texts, " "), strings.Join(weights, ""))
		}
	},
}

var patternsCmd = &cobra.Command{
	Use:   "patterns [file]",
	Short: "Convert verse lines into laghu-guru weight patterns",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine := initEngine()

		patterns, err := engine.ExtractPatterns(readLines(args))
		if err != nil {
			log.Printf("Some lines could not be scanned: %v", err)
		}
		for _, p := range patterns {
			fmt.Println(p)
		}
	},
}

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Identify the metre of a verse",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine := initEngine()

		res, err := engine.IdentifyVerse(readLines(args))
		if err != nil {
			log.Printf("Some lines could not be scanned: %v", err)
		}

		printBucket := func(label string, metres []string) {
			if len(metres) == 0 {
				return
			}
			fmt.Printf("%s:\n", label)
			for _, name := range metres {
				line := "  " + name
				if info, ok := engine.Describe(name); ok && info.Video != "" {
					line += "  (" + info.Video + ")"
				}
				fmt.Println(line)
			}
		}
		printBucket("Exact", res.Exact)
		printBucket("Partial", res.Partial)
		printBucket("Accidental", res.Accidental)

		if len(res.Exact) == 0 && len(res.Partial) == 0 && len(res.Accidental) == 0 {
			fmt.Println("No known metre matched.")
		}
	},
}
