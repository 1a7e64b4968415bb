//go:build cgo && linux
// +build cgo,linux

package printtrace

/*
// Default linker flag to pull in PrintTrace. On Linux, libPrintTrace is in a
// default linker path when installed via `make install`. If not, callers can
// provide CGO_LDFLAGS/CGO_CFLAGS.
#cgo LDFLAGS: -lPrintTrace
*/
import "C"
