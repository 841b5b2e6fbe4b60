package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <root-frequency> <mode>",
	Short: "Builds a scale",
	Long:  `Builds a scale (major, minor, chromatic, dorian, ...) from a root frequency`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid root frequency %q: %w", args[0], err)
		}

		t, err := selectedTemperament()
		if err != nil {
			return err
		}
		s, err := BuildScale(root, args[1], t)
		if err != nil {
			return err
		}
		for _, p := range s.Pitches {
			fmt.Printf("%-4s %.4f\n", p.Name, p.Frequency)
		}
		return nil
	},
}
