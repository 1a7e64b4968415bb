package cli

import (
	"testing"

	"github.com/printtrace/printtrace-go/printtrace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t, "plate.dxf", defaultOutputPath("plate.jpg"))
	assert.Equal(t, "shots/part.dxf", defaultOutputPath("shots/part.png"))
	assert.Equal(t, "noext.dxf", defaultOutputPath("noext"))
	assert.Equal(t, ".hidden.dxf", defaultOutputPath(".hidden"))
	// Dots in directory names must not be mistaken for an extension.
	assert.Equal(t, "shots.v2/photo.dxf", defaultOutputPath("shots.v2/photo"))
	assert.Equal(t, "shots.v2/photo.dxf", defaultOutputPath("shots.v2/photo.jpg"))
	assert.Equal(t, "shots.v2/.hidden.dxf", defaultOutputPath("shots.v2/.hidden"))
}

func TestTraceParamsFromFlags(t *testing.T) {
	saved := traceFlags
	t.Cleanup(func() { traceFlags = saved })

	d := printtrace.DefaultParams()
	traceFlags.plateWidthMM = 150
	traceFlags.plateHeightMM = 100
	traceFlags.warpedSizePX = d.WarpedSizePX
	traceFlags.thresholdBlockSize = 31
	traceFlags.thresholdC = d.ThresholdC
	traceFlags.smoothingEpsilonMM = d.SmoothingEpsilonMM
	traceFlags.minObjectAreaMM2 = d.MinObjectAreaMM2
	traceFlags.noSubpixel = true

	p := traceParams()
	require.NoError(t, p.Validate())
	assert.Equal(t, 150.0, p.PlateWidthMM)
	assert.Equal(t, 100.0, p.PlateHeightMM)
	assert.Equal(t, 31, p.ThresholdBlockSize)
	assert.False(t, p.SubpixelRefinement)
}
