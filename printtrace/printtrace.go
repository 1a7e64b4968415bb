//go:build cgo
// +build cgo

// Package printtrace provides a Go binding to the PrintTrace C API, which
// extracts a dimensioned outline (DXF or polygon) from a photo of an object
// on a calibration plate.
//
// The PrintTrace header is resolved through printtrace_shim.h: on iOS, tvOS
// and watchOS it is imported from the PrintTrace framework bundle, elsewhere
// it is a plain include. Link flags are provided via separate build-tagged
// files; see flags_local.go for the CGO_CFLAGS/CGO_LDFLAGS override.
package printtrace

/*
#include <stdlib.h>
#include "printtrace_shim.h"
*/
import "C"

// Version reports the linked PrintTrace library version string.
func Version() string {
	return C.GoString(C.pt_get_version())
}

// LibraryDefaultParams asks the linked library for its default parameters.
// Prefer this over DefaultParams when drift between binding and library
// versions matters.
func LibraryDefaultParams() (Params, error) {
	var cp C.PTProcessingParams
	C.pt_get_default_params(&cp)
	return paramsFromC(&cp), nil
}

func (p *Params) toC() C.PTProcessingParams {
	var cp C.PTProcessingParams
	cp.plate_width_mm = C.double(p.PlateWidthMM)
	cp.plate_height_mm = C.double(p.PlateHeightMM)
	cp.warped_size_px = C.int(p.WarpedSizePX)
	cp.threshold_block_size = C.int(p.ThresholdBlockSize)
	cp.threshold_c = C.double(p.ThresholdC)
	cp.smoothing_epsilon_mm = C.double(p.SmoothingEpsilonMM)
	cp.min_object_area_mm2 = C.double(p.MinObjectAreaMM2)
	if p.SubpixelRefinement {
		cp.enable_subpixel_refinement = 1
	}
	return cp
}

func paramsFromC(cp *C.PTProcessingParams) Params {
	return Params{
		PlateWidthMM:       float64(cp.plate_width_mm),
		PlateHeightMM:      float64(cp.plate_height_mm),
		WarpedSizePX:       int(cp.warped_size_px),
		ThresholdBlockSize: int(cp.threshold_block_size),
		ThresholdC:         float64(cp.threshold_c),
		SmoothingEpsilonMM: float64(cp.smoothing_epsilon_mm),
		MinObjectAreaMM2:   float64(cp.min_object_area_mm2),
		SubpixelRefinement: cp.enable_subpixel_refinement != 0,
	}
}

// resultErr maps a PTResult to a Go error, pulling the library's diagnostic
// text for the code. PT_SUCCESS maps to nil.
func resultErr(code C.PTResult) error {
	if code == C.PT_SUCCESS {
		return nil
	}
	msg := ""
	if s := C.pt_result_message(code); s != nil {
		msg = C.GoString(s)
	}
	return &Error{Code: ErrorCode(code), Message: msg}
}
