package printtrace

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "file not found", ErrFileNotFound.String())
	assert.Equal(t, "board detection failed", ErrBoardDetection.String())
	assert.Equal(t, "unknown error code 42", ErrorCode(42).String())
}

func TestErrorFormatting(t *testing.T) {
	withMsg := &Error{Code: ErrDXFExport, Message: "disk full"}
	assert.Equal(t, "printtrace: dxf export failed: disk full", withMsg.Error())

	bare := &Error{Code: ErrOutOfMemory}
	assert.Equal(t, "printtrace: out of memory", bare.Error())
}

func TestErrorIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("tracing plate: %w", &Error{Code: ErrFileNotFound, Message: "photo.jpg"})

	assert.True(t, errors.Is(err, &Error{Code: ErrFileNotFound}))
	assert.False(t, errors.Is(err, &Error{Code: ErrObjectDetection}))

	var perr *Error
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, "photo.jpg", perr.Message)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "load", StageLoad.String())
	assert.Equal(t, "export", StageExport.String())
	assert.Equal(t, "unknown", Stage(99).String())
}
