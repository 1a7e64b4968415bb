//go:build !cgo
// +build !cgo

package printtrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStubOperationsReportMissingCgo(t *testing.T) {
	assert.Empty(t, Version())

	_, err := LibraryDefaultParams()
	assert.ErrorIs(t, err, errNoCgo)

	assert.ErrorIs(t, TraceImageToDXF("in.jpg", "out.dxf", nil), errNoCgo)

	pts, err := TraceImageToPolygon("in.jpg", nil)
	assert.Nil(t, pts)
	assert.ErrorIs(t, err, errNoCgo)
}
