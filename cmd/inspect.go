package cmd

import (
	"fmt"

	"github.com/jsphweid/composer/interval"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [temperament]",
	Short: "Inspects a temperament",
	Long:  `Lists the degrees and chord extension aliases of a temperament`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := temperamentName
		if len(args) == 1 {
			name = args[0]
		}
		t, err := interval.ByName(name)
		if err != nil {
			return err
		}
		inspect(t)
		return nil
	},
}

func inspect(t *interval.Temperament) {
	fmt.Printf("temperament: %v\n", t.Name())
	for d := interval.Unison; d <= interval.MajorSeventh; d++ {
		iv := t.At(d)
		fmt.Printf("%-15v %.6f (%.2f cents)\n", d, iv.Value(), iv.Cents())
	}
	for _, key := range t.Aliases() {
		val, _ := t.Aliased(key)
		fmt.Printf("key: %v\n", key)
		fmt.Printf("val: %.6f\n", val.Value())
	}
}
