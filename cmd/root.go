package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jsphweid/blockbeat/model"
)

var (
	flagPrecision  string
	flagTriplets   bool
	flagFuzz       uint32
	flagTieEpsilon uint32
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "blockbeat",
	Short: "Converts midi files into quantized block sequences",
	Long:  `Converts standard MIDI files into quantized, beat-aligned block sequences for the editor.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPrecision, "precision", "eighth", "grid precision: whole, half, quarter, eighth or sixteenth")
	rootCmd.PersistentFlags().BoolVar(&flagTriplets, "triplets", false, "detect eighth-note triplets")
	rootCmd.PersistentFlags().Uint32Var(&flagFuzz, "fuzz", 0, "max tick deviation treated as timing jitter")
	rootCmd.PersistentFlags().Uint32Var(&flagTieEpsilon, "tie-epsilon", 0, "max tick gap merged as a tie")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
}

func gridFromFlags() (model.Grid, error) {
	precision, err := model.ParsePrecision(flagPrecision)
	if err != nil {
		return model.Grid{}, err
	}
	return model.Grid{
		Precision:      precision,
		TripletEnabled: flagTriplets,
		FuzzTicks:      flagFuzz,
	}, nil
}

func pairOptsFromFlags() model.PairOptions {
	return model.PairOptions{TieEpsilonTicks: flagTieEpsilon}
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
