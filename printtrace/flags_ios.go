//go:build cgo && ios
// +build cgo,ios

package printtrace

/*
// On iOS (and the other Apple mobile platforms reached through the C-side
// TARGET_OS_* branch) PrintTrace ships as an XCFramework, so the header is
// resolved through the framework search path and the binary is linked as a
// framework. Point -F at the extracted PrintTrace.xcframework slice via
// CGO_CFLAGS/CGO_LDFLAGS when it is not in a default search location.
#cgo CFLAGS: -fmodules
#cgo LDFLAGS: -framework PrintTrace
*/
import "C"
