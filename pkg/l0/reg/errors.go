package reg

// CommError wraps a transport failure. It is the only error kind this
// layer produces: the first failing transport step aborts the whole
// operation and surfaces here unchanged.
type CommError struct {
	Err error
}

// Error implements error.
func (e *CommError) Error() string {
	return "communication error: " + e.Err.Error()
}

// Unwrap returns the transport's error.
func (e *CommError) Unwrap() error {
	return e.Err
}
