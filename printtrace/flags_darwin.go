//go:build cgo && darwin && !ios
// +build cgo,darwin,!ios

package printtrace

/*
// Default Homebrew locations on macOS (Apple Silicon and Intel). These paths are
// added unconditionally; missing directories are harmless. macOS links the
// plain libPrintTrace, not the framework — the framework packaging only
// exists for the mobile platforms.
#cgo CFLAGS: -I/opt/homebrew/include -I/usr/local/include
#cgo LDFLAGS: -L/opt/homebrew/lib -L/usr/local/lib -lPrintTrace
*/
import "C"
