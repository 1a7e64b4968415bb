//go:build !cgo
// +build !cgo

// Package printtrace provides a Go binding to the PrintTrace C API.
// This stub allows the package to build without cgo available.
// Install PrintTrace and enable cgo to use the real binding.
package printtrace

import "errors"

var errNoCgo = errors.New("printtrace: cgo support is required")

// Version reports the linked library version; without cgo there is no
// library, so it returns an empty string.
func Version() string { return "" }

func LibraryDefaultParams() (Params, error) { return Params{}, errNoCgo }

func TraceImageToDXF(string, string, *Params, ...TraceOption) error { return errNoCgo }

func TraceImageToPolygon(string, *Params, ...TraceOption) ([]Point, error) {
	return nil, errNoCgo
}
