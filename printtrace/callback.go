//go:build cgo
// +build cgo

package printtrace

/*
#include "printtrace_shim.h"
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

//export goPrintTraceProgress
func goPrintTraceProgress(stage C.int, progress C.double, message *C.char, userData unsafe.Pointer) {
	if userData == nil {
		return
	}
	h := *(*cgo.Handle)(userData)
	fn, ok := h.Value().(ProgressFunc)
	if !ok || fn == nil {
		return
	}
	msg := ""
	if message != nil {
		msg = C.GoString(message)
	}
	fn(Stage(stage), float64(progress), msg)
}
