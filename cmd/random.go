package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jsphweid/composer/pitch"
	"github.com/jsphweid/composer/scale"
	"github.com/spf13/cobra"
)

var (
	randomCount int
	randomSeed  int64
)

func init() {
	randomCmd.Flags().IntVarP(&randomCount, "count", "n", 8, "number of pitches")
	randomCmd.Flags().Int64Var(&randomSeed, "seed", 0, "random seed, 0 picks one from the clock")
	rootCmd.AddCommand(randomCmd)
}

var randomCmd = &cobra.Command{
	Use:   "random <root> <mode>",
	Short: "Picks random pitches from a key",
	Long:  `Picks random pitches from the scale of a key. The root is a frequency or a pitch string.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := ResolvePitch(args[0])
		if err != nil {
			return err
		}
		mode, err := scale.ParseMode(args[1])
		if err != nil {
			return err
		}
		t, err := selectedTemperament()
		if err != nil {
			return err
		}

		seed := randomSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))

		key := pitch.NewKeySignature(root, mode)
		key.Temperament = t
		for i := 0; i < randomCount; i++ {
			p, err := pitch.RandomPitch(key, rng)
			if err != nil {
				return err
			}
			fmt.Println(ToModelPitch(p).Name)
		}
		return nil
	},
}
