// Command solitaire solves Pyramid and TriPeaks Solitaire deals from the
// command line and prints a shortest solution.
//
// Deals come from --deck as 52 space-separated card tokens, or from a YAML
// file via --deck-file:
//
//	name: example
//	cards:
//	  - Th 2h 4d 3h Qd 8h 9h
//	  - 5d Jc Td 7c 4c Ts Ac
//	  - ...
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	solitaire "github.com/mchung94/solitaire-player"
	"github.com/mchung94/solitaire-player/deck"
	"github.com/mchung94/solitaire-player/tripeaks"
)

var (
	deckFlag     string
	deckFileFlag string
	dotFlag      string
	verbose      bool
	logEvery     uint64
)

var errNoSolution = errors.New("no solution exists")

type deckFile struct {
	Name  string   `yaml:"name"`
	Cards []string `yaml:"cards"`
}

func loadDeck() (deck.Deck, error) {
	var d deck.Deck
	switch {
	case deckFlag != "" && deckFileFlag != "":
		return d, errors.New("use either --deck or --deck-file, not both")
	case deckFlag != "":
		return deck.ParseString(deckFlag)
	case deckFileFlag != "":
		raw, err := os.ReadFile(deckFileFlag)
		if err != nil {
			return d, errors.Wrap(err, "reading deck file")
		}
		var f deckFile
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return d, errors.Wrap(err, "parsing deck file")
		}
		return deck.ParseString(strings.Join(f.Cards, " "))
	default:
		return d, errors.New("a deal is required: --deck or --deck-file")
	}
}

func buildConfig() (solitaire.Config, func(), error) {
	conf := solitaire.Config{LogEvery: logEvery}
	cleanup := func() {}
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return conf, cleanup, err
		}
		conf.Logger = logger
		cleanup = func() { _ = logger.Sync() }
		if conf.LogEvery == 0 {
			conf.LogEvery = 1 << 20
		}
	}
	return conf, cleanup, nil
}

func printSolution(moves []string, stats solitaire.Stats) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Move"})
	for i, move := range moves {
		t.AppendRow(table.Row{i + 1, move})
	}
	t.Render()
	fmt.Printf("%d moves, %d states expanded, %s working set, %s\n",
		len(moves), stats.Expanded, stats.WorkingSet.HumanReadable(), stats.Elapsed)
}

func writeDot(moves []string) error {
	if dotFlag == "" {
		return nil
	}
	dot, err := solitaire.SolutionGraph("solution", moves)
	if err != nil {
		return err
	}
	return os.WriteFile(dotFlag, []byte(dot), 0644)
}

func pyramidRun(cmd *cobra.Command, args []string) error {
	d, err := loadDeck()
	if err != nil {
		return err
	}
	conf, cleanup, err := buildConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	result := solitaire.SolvePyramid(d, conf)
	if !result.Solved() {
		return errNoSolution
	}
	printSolution(result.Moves, result.Stats)
	return writeDot(result.Moves)
}

func tripeaksRun(cmd *cobra.Command, args []string) error {
	d, err := loadDeck()
	if err != nil {
		return err
	}
	conf, cleanup, err := buildConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := solitaire.SolveTriPeaks(d, conf)
	if err != nil {
		return err
	}
	if !result.Solved() {
		return errNoSolution
	}
	if !tripeaks.IsPlayable(d, result.Cards) {
		return errors.New("solver returned an unplayable solution")
	}
	printSolution(result.Moves(), result.Stats)
	return writeDot(result.Moves())
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "solitaire",
		Short:         "Find shortest solutions to Pyramid and TriPeaks Solitaire deals",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&deckFlag, "deck", "",
		"the deal as 52 space-separated cards, e.g. \"Th 2h 4d ... Jh\"")
	rootCmd.PersistentFlags().StringVar(&deckFileFlag, "deck-file", "",
		"YAML file containing the deal")
	rootCmd.PersistentFlags().StringVar(&dotFlag, "dot", "",
		"write the solution as a graphviz DOT file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log search progress")
	rootCmd.PersistentFlags().Uint64Var(&logEvery, "log-every", 0,
		"states expanded between progress reports (reports are printed only with --verbose)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "pyramid",
		Short: "Solve a Pyramid Solitaire deal",
		Args:  cobra.NoArgs,
		RunE:  pyramidRun,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "tripeaks",
		Short: "Solve a TriPeaks Solitaire deal",
		Args:  cobra.NoArgs,
		RunE:  tripeaksRun,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
