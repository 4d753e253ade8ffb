package errs

// Failure classes surfaced by the ledger. Every error leaving a use case is
// marked with at most one of these; handlers map them onto status codes.
var (
	ErrNotFound   = New("not found")
	ErrValidation = New("validation failure")
	ErrTransient  = New("transient failure")
	ErrIntegrity  = New("integrity failure")
)

// Class returns the taxonomy sentinel err was marked with, or nil.
func Class(err error) error {
	for _, c := range []error{ErrValidation, ErrNotFound, ErrTransient, ErrIntegrity} {
		if Is(err, c) {
			return c
		}
	}
	return nil
}
