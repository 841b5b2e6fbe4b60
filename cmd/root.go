package cmd

import (
	"github.com/jsphweid/composer/constants"
	"github.com/jsphweid/composer/interval"
	"github.com/jsphweid/composer/logging"
	"github.com/spf13/cobra"
)

var (
	temperamentName string
	logLevel        string
)

var rootCmd = &cobra.Command{
	Use:   "composer",
	Short: "Pitch, scale and chord arithmetic",
	Long: `Builds scales and chords as frequency lists and names the pitch
nearest to a frequency, in equal temperament or just intonation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logging.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&temperamentName, "temperament", "t", constants.GetTemperamentName(), "temperament to tune in: equal or just")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "debug, info, warn or error")
}

func selectedTemperament() (*interval.Temperament, error) {
	return interval.ByName(temperamentName)
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
