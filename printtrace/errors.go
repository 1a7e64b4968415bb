package printtrace

import "fmt"

// ErrorCode mirrors the PTResult enum from PrintTraceAPI.h. Values must stay
// in sync with the C header.
type ErrorCode int

const (
	// Success is PT_SUCCESS; it never appears inside an Error.
	Success ErrorCode = iota
	// ErrInvalidInput covers unreadable or unsupported input images.
	ErrInvalidInput
	// ErrFileNotFound is returned when the input image path does not exist.
	ErrFileNotFound
	// ErrInvalidParameters covers out-of-range processing parameters.
	ErrInvalidParameters
	// ErrBoardDetection means the calibration plate was not found.
	ErrBoardDetection
	// ErrObjectDetection means no object outline was found on the plate.
	ErrObjectDetection
	// ErrDXFExport covers failures writing the output DXF.
	ErrDXFExport
	// ErrOutOfMemory is PT_ERROR_OUT_OF_MEMORY.
	ErrOutOfMemory
	// ErrInternal is the catch-all PT_ERROR_INTERNAL.
	ErrInternal
)

var codeNames = map[ErrorCode]string{
	Success:              "success",
	ErrInvalidInput:      "invalid input",
	ErrFileNotFound:      "file not found",
	ErrInvalidParameters: "invalid parameters",
	ErrBoardDetection:    "board detection failed",
	ErrObjectDetection:   "object detection failed",
	ErrDXFExport:         "dxf export failed",
	ErrOutOfMemory:       "out of memory",
	ErrInternal:          "internal error",
}

func (c ErrorCode) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("unknown error code %d", int(c))
}

// Error is a PrintTrace failure surfaced from the C library (or from Go-side
// validation using the same codes). Message holds the library's diagnostic
// text when one was available.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "printtrace: " + e.Code.String()
	}
	return fmt.Sprintf("printtrace: %s: %s", e.Code, e.Message)
}

// Is reports whether target is an *Error with the same code, so callers can
// match with errors.Is(err, &Error{Code: ErrFileNotFound}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}
