//go:build cgo
// +build cgo

package printtrace

/*
#include <stdlib.h>
#include "printtrace_shim.h"

// Exported from callback.go; installed as the PTProgressCallback whenever the
// caller asked for progress. cgo exports string parameters as plain char*, so
// the cast bridges the const qualifier on PTProgressCallback.
void goPrintTraceProgress(int stage, double progress, char *message, void *user_data);

static PTResult trace_to_dxf(const char *image_path, const char *dxf_path,
		const PTProcessingParams *params, int with_progress, void *handle) {
	return pt_process_image_to_dxf(image_path, dxf_path, params,
		with_progress ? (PTProgressCallback)goPrintTraceProgress : NULL, handle);
}

static PTResult trace_to_polygon(const char *image_path,
		const PTProcessingParams *params, PTPoint **out_points, int *out_count,
		int with_progress, void *handle) {
	return pt_process_image_to_polygon(image_path, params, out_points, out_count,
		with_progress ? (PTProgressCallback)goPrintTraceProgress : NULL, handle);
}
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// TraceImageToDXF runs the full PrintTrace pipeline on the image at
// imagePath and writes the traced outline to outputPath as DXF. A nil params
// uses DefaultParams. Parameters are validated on the Go side first so range
// errors never reach the C library.
func TraceImageToDXF(imagePath, outputPath string, params *Params, opts ...TraceOption) error {
	p := params
	if p == nil {
		d := DefaultParams()
		p = &d
	}
	if err := p.Validate(); err != nil {
		return err
	}
	o := applyOptions(opts)

	cin := C.CString(imagePath)
	defer C.free(unsafe.Pointer(cin))
	cout := C.CString(outputPath)
	defer C.free(unsafe.Pointer(cout))
	cp := p.toC()

	withProgress, handle, cleanup := progressHandle(o.progress)
	defer cleanup()

	return resultErr(C.trace_to_dxf(cin, cout, &cp, withProgress, handle))
}

// TraceImageToPolygon runs the pipeline but returns the traced outline as a
// slice of plate-relative points instead of writing a DXF. The C-side point
// buffer is copied and released before returning.
func TraceImageToPolygon(imagePath string, params *Params, opts ...TraceOption) ([]Point, error) {
	p := params
	if p == nil {
		d := DefaultParams()
		p = &d
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	cin := C.CString(imagePath)
	defer C.free(unsafe.Pointer(cin))
	cp := p.toC()

	withProgress, handle, cleanup := progressHandle(o.progress)
	defer cleanup()

	var cpts *C.PTPoint
	var count C.int
	if err := resultErr(C.trace_to_polygon(cin, &cp, &cpts, &count, withProgress, handle)); err != nil {
		return nil, err
	}
	if cpts != nil {
		defer C.pt_free_polygon(cpts)
	}
	if cpts == nil || count <= 0 {
		return nil, nil
	}

	n := int(count)
	src := unsafe.Slice(cpts, n)
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Point{X: float64(src[i].x), Y: float64(src[i].y)}
	}
	return pts, nil
}

// progressHandle wraps a ProgressFunc in a cgo.Handle for the duration of a
// single synchronous C call. The returned pointer stays valid because the
// handle variable outlives the call through the cleanup closure.
func progressHandle(fn ProgressFunc) (C.int, unsafe.Pointer, func()) {
	if fn == nil {
		return 0, nil, func() {}
	}
	h := new(cgo.Handle)
	*h = cgo.NewHandle(fn)
	return 1, unsafe.Pointer(h), func() { h.Delete() }
}
