package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/printtrace/printtrace-go/internal/log"
	"github.com/printtrace/printtrace-go/printtrace"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var traceFlags struct {
	output             string
	plateWidthMM       float64
	plateHeightMM      float64
	warpedSizePX       int
	thresholdBlockSize int
	thresholdC         float64
	smoothingEpsilonMM float64
	minObjectAreaMM2   float64
	noSubpixel         bool
	quiet              bool
}

var traceCmd = &cobra.Command{
	Use:   "trace <image>",
	Short: "Trace a plate photo into a DXF outline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		image := args[0]
		output := traceFlags.output
		if output == "" {
			output = defaultOutputPath(image)
		}

		params := traceParams()
		if err := params.Validate(); err != nil {
			return err
		}

		log.L().Debug("tracing image",
			zap.String("image", image),
			zap.String("output", output),
			zap.Float64("plate_width_mm", params.PlateWidthMM),
			zap.Float64("plate_height_mm", params.PlateHeightMM))

		opts := []printtrace.TraceOption{}
		if !traceFlags.quiet {
			opts = append(opts, printtrace.WithProgress(printProgress))
		}

		if err := printtrace.TraceImageToDXF(image, output, &params, opts...); err != nil {
			return fmt.Errorf("tracing %s: %w", image, err)
		}
		if !traceFlags.quiet {
			fmt.Fprintln(os.Stderr)
		}
		fmt.Println(output)
		return nil
	},
}

// traceParams builds Params from the command flags, starting from the
// library defaults baked into the binding.
func traceParams() printtrace.Params {
	p := printtrace.DefaultParams()
	p.PlateWidthMM = traceFlags.plateWidthMM
	p.PlateHeightMM = traceFlags.plateHeightMM
	p.WarpedSizePX = traceFlags.warpedSizePX
	p.ThresholdBlockSize = traceFlags.thresholdBlockSize
	p.ThresholdC = traceFlags.thresholdC
	p.SmoothingEpsilonMM = traceFlags.smoothingEpsilonMM
	p.MinObjectAreaMM2 = traceFlags.minObjectAreaMM2
	p.SubpixelRefinement = !traceFlags.noSubpixel
	return p
}

// defaultOutputPath swaps the image extension for .dxf, keeping the
// directory. Extensionless and dotfile names get .dxf appended.
func defaultOutputPath(image string) string {
	ext := filepath.Ext(image)
	if ext == "" || ext == filepath.Base(image) {
		return image + ".dxf"
	}
	return strings.TrimSuffix(image, ext) + ".dxf"
}

func printProgress(stage printtrace.Stage, fraction float64, message string) {
	if message != "" {
		fmt.Fprintf(os.Stderr, "\r%-14s %3.0f%%  %s", stage, fraction*100, message)
		return
	}
	fmt.Fprintf(os.Stderr, "\r%-14s %3.0f%%", stage, fraction*100)
}

func init() {
	d := printtrace.DefaultParams()
	traceCmd.Flags().StringVarP(&traceFlags.output, "output", "o", "", "output DXF path (default: image path with .dxf extension)")
	traceCmd.Flags().Float64Var(&traceFlags.plateWidthMM, "plate-width", d.PlateWidthMM, "calibration plate width in mm")
	traceCmd.Flags().Float64Var(&traceFlags.plateHeightMM, "plate-height", d.PlateHeightMM, "calibration plate height in mm")
	traceCmd.Flags().IntVar(&traceFlags.warpedSizePX, "warped-size", d.WarpedSizePX, "warped image width in pixels")
	traceCmd.Flags().IntVar(&traceFlags.thresholdBlockSize, "threshold-block", d.ThresholdBlockSize, "adaptive threshold block size (odd, >= 3)")
	traceCmd.Flags().Float64Var(&traceFlags.thresholdC, "threshold-c", d.ThresholdC, "adaptive threshold constant")
	traceCmd.Flags().Float64Var(&traceFlags.smoothingEpsilonMM, "smoothing", d.SmoothingEpsilonMM, "contour smoothing epsilon in mm")
	traceCmd.Flags().Float64Var(&traceFlags.minObjectAreaMM2, "min-area", d.MinObjectAreaMM2, "minimum object area in mm²")
	traceCmd.Flags().BoolVar(&traceFlags.noSubpixel, "no-subpixel", false, "disable subpixel corner refinement")
	traceCmd.Flags().BoolVarP(&traceFlags.quiet, "quiet", "q", false, "suppress progress output")
	rootCmd.AddCommand(traceCmd)
}
