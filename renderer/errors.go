package renderer

// Error codes for rendering failures.
const (
	ErrCodeInvalidHTML   = "INVALID_HTML"
	ErrCodeRenderTimeout = "RENDER_TIMEOUT"
	ErrCodeRenderFailed  = "RENDER_FAILED"
	ErrCodeBrowserFailed = "BROWSER_FAILED"
)

// RenderError classifies a PDF rendering failure so callers can tell an input
// problem from a timeout from a dead browser.
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// IsTimeout reports whether the error is a render timeout.
func (e *RenderError) IsTimeout() bool {
	return e.Code == ErrCodeRenderTimeout
}

// NewRenderError creates a classified rendering error.
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{Code: code, Message: message, Cause: cause}
}
