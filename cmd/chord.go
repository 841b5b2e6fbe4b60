package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/composer/chord"
	"github.com/jsphweid/composer/constants"
	"github.com/jsphweid/composer/midi"
	"github.com/spf13/cobra"
)

var (
	printMidi  bool
	slideSteps []int
)

func init() {
	chordCmd.Flags().BoolVar(&printMidi, "midi", false, "also print NoteOn messages for the chord")
	chordCmd.Flags().IntSliceVar(&slideSteps, "slide", nil, "print a progression shifting the chord by these semitone steps")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <root-frequency> <quality>",
	Short: "Builds a chord",
	Long: `Builds a chord from a root frequency and a quality such as M, m7,
sus4, dim or augM7b13#4 and prints its frequencies in ascending order.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid root frequency %q: %w", args[0], err)
		}
		return printChord(root, args[1])
	},
}

func printChord(root float64, quality string) error {
	t, err := selectedTemperament()
	if err != nil {
		return err
	}
	c, err := BuildChord(root, quality, t)
	if err != nil {
		return err
	}

	for _, f := range c.Frequencies {
		fmt.Printf("%.4f\n", f)
	}
	if c.ChordKey != "" {
		fmt.Printf("chord key: %v\n", c.ChordKey)
	}

	if printMidi {
		msgs, err := midi.NoteOns(c.Frequencies, constants.DefaultMidiChannel, constants.DefaultMidiVelocity)
		if err != nil {
			return err
		}
		for _, msg := range msgs {
			fmt.Printf("note on: % X\n", []byte(msg))
		}
	}

	if len(slideSteps) > 0 {
		for i, step := range chord.Slide(c.Frequencies, t, slideSteps...) {
			fmt.Printf("%d: %.4f\n", i, step)
		}
	}
	return nil
}
