package cli

import (
	"fmt"

	"github.com/printtrace/printtrace-go/internal/log"
	"github.com/printtrace/printtrace-go/printtrace"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Show the processing parameter defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := printtrace.LibraryDefaultParams()
		if err != nil {
			// No linked library (cgo disabled); fall back to the
			// defaults baked into the binding.
			log.L().Debug("library defaults unavailable", zap.Error(err))
			p = printtrace.DefaultParams()
		}

		fmt.Printf("plate-width      %g mm\n", p.PlateWidthMM)
		fmt.Printf("plate-height     %g mm\n", p.PlateHeightMM)
		fmt.Printf("warped-size      %d px\n", p.WarpedSizePX)
		fmt.Printf("threshold-block  %d px\n", p.ThresholdBlockSize)
		fmt.Printf("threshold-c      %g\n", p.ThresholdC)
		fmt.Printf("smoothing        %g mm\n", p.SmoothingEpsilonMM)
		fmt.Printf("min-area         %g mm²\n", p.MinObjectAreaMM2)
		fmt.Printf("subpixel         %v\n", p.SubpixelRefinement)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paramsCmd)
}
