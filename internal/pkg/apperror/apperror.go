package apperror

// AppError carries an HTTP status code alongside a user-facing message so
// handlers can map domain failures without per-error switch statements.
type AppError struct {
	Code    int    // HTTP status code (e.g. 400, 409)
	Message string // User-facing error message
	Err     error  // Underlying error, if any (never exposed to the client)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
