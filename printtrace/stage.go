package printtrace

// Stage identifies a pipeline phase reported through the progress callback.
// Values mirror the stage constants in PrintTraceAPI.h.
type Stage int

const (
	StageLoad Stage = iota
	StageBoardDetect
	StageWarp
	StageObjectDetect
	StageContour
	StageExport
)

func (s Stage) String() string {
	switch s {
	case StageLoad:
		return "load"
	case StageBoardDetect:
		return "board-detect"
	case StageWarp:
		return "warp"
	case StageObjectDetect:
		return "object-detect"
	case StageContour:
		return "contour"
	case StageExport:
		return "export"
	}
	return "unknown"
}

// ProgressFunc receives pipeline progress. fraction is in [0,1] within the
// given stage; message may be empty. It is called synchronously from the C
// library on the goroutine that invoked the trace, so it must not block.
type ProgressFunc func(stage Stage, fraction float64, message string)

type traceOptions struct {
	progress ProgressFunc
}

// TraceOption configures a single trace call.
type TraceOption func(*traceOptions)

// WithProgress installs a progress callback for the duration of the call.
func WithProgress(fn ProgressFunc) TraceOption {
	return func(o *traceOptions) { o.progress = fn }
}

func applyOptions(opts []TraceOption) traceOptions {
	var o traceOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
