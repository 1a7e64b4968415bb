//go:build cgo
// +build cgo

package printtrace

/*
// You can set CGO_CFLAGS and CGO_LDFLAGS at build time to point to your
// PrintTrace install. This file intentionally provides no defaults to avoid
// hard-coding local paths.
*/
import "C"
