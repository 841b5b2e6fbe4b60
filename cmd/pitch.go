package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pitchCmd)
}

var pitchCmd = &cobra.Command{
	Use:   "pitch <frequency|pitch>",
	Short: "Names a pitch",
	Long:  `Names the pitch nearest to a frequency, or the frequency of a pitch such as Ab5`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := ResolvePitch(args[0])
		if err != nil {
			return err
		}
		mp := ToModelPitch(p)
		fmt.Printf("name: %v\n", mp.Name)
		fmt.Printf("frequency: %.4f\n", mp.Frequency)
		if mp.EnharmonicPitchClass != "" {
			twin, _ := p.SwapEnharmonic()
			fmt.Printf("enharmonic: %v\n", twin.Name())
		}
		return nil
	},
}
