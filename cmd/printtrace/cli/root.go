package cli

import (
	"github.com/printtrace/printtrace-go/internal/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "printtrace",
	Short: "Trace object outlines from plate photos",
	Long: `printtrace converts a photo of an object on a calibration plate into a
dimensioned outline, using the PrintTrace library for board detection,
perspective correction and contour extraction.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Init(verbose, jsonOut)
	},
}

// Execute runs the root command.
func Execute() error {
	defer log.Sync()
	err := rootCmd.Execute()
	if err != nil {
		log.L().Error("command failed", zap.Error(err))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "log in JSON format")
}
