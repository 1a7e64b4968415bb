package printtrace

import "fmt"

// Point is a single vertex of a traced outline, in millimeters relative to
// the plate origin.
type Point struct {
	X float64
	Y float64
}

// Params mirrors the PTProcessingParams struct from PrintTraceAPI.h. The
// zero value is not usable; start from DefaultParams (or
// LibraryDefaultParams) and adjust.
type Params struct {
	// PlateWidthMM and PlateHeightMM give the physical size of the
	// calibration plate the photographed object sits on.
	PlateWidthMM  float64
	PlateHeightMM float64

	// WarpedSizePX is the pixel width of the perspective-corrected image
	// the detection stages operate on.
	WarpedSizePX int

	// ThresholdBlockSize is the adaptive-threshold neighborhood size in
	// pixels. PrintTrace requires an odd value of at least 3.
	ThresholdBlockSize int

	// ThresholdC is the constant subtracted from the neighborhood mean.
	ThresholdC float64

	// SmoothingEpsilonMM bounds the deviation allowed when simplifying
	// the extracted contour.
	SmoothingEpsilonMM float64

	// MinObjectAreaMM2 filters out detected blobs smaller than this area.
	MinObjectAreaMM2 float64

	// SubpixelRefinement enables corner refinement during board
	// detection.
	SubpixelRefinement bool
}

// DefaultParams returns the documented PrintTrace defaults. They match what
// pt_get_default_params fills in; LibraryDefaultParams reads the same values
// from the linked library when cgo is available.
func DefaultParams() Params {
	return Params{
		PlateWidthMM:       200,
		PlateHeightMM:      200,
		WarpedSizePX:       2048,
		ThresholdBlockSize: 51,
		ThresholdC:         5,
		SmoothingEpsilonMM: 0.2,
		MinObjectAreaMM2:   25,
		SubpixelRefinement: true,
	}
}

// Validate checks the parameter ranges the library enforces, so misuse is
// reported before the C call. Errors carry ErrInvalidParameters.
func (p *Params) Validate() error {
	if p == nil {
		return &Error{Code: ErrInvalidParameters, Message: "nil params"}
	}
	if p.PlateWidthMM <= 0 || p.PlateHeightMM <= 0 {
		return &Error{Code: ErrInvalidParameters, Message: fmt.Sprintf("plate size must be positive, got %gx%g mm", p.PlateWidthMM, p.PlateHeightMM)}
	}
	if p.WarpedSizePX < 64 {
		return &Error{Code: ErrInvalidParameters, Message: fmt.Sprintf("warped size must be at least 64 px, got %d", p.WarpedSizePX)}
	}
	if p.ThresholdBlockSize < 3 || p.ThresholdBlockSize%2 == 0 {
		return &Error{Code: ErrInvalidParameters, Message: fmt.Sprintf("threshold block size must be odd and >= 3, got %d", p.ThresholdBlockSize)}
	}
	if p.SmoothingEpsilonMM < 0 {
		return &Error{Code: ErrInvalidParameters, Message: fmt.Sprintf("smoothing epsilon must not be negative, got %g", p.SmoothingEpsilonMM)}
	}
	if p.MinObjectAreaMM2 < 0 {
		return &Error{Code: ErrInvalidParameters, Message: fmt.Sprintf("minimum object area must not be negative, got %g", p.MinObjectAreaMM2)}
	}
	return nil
}
