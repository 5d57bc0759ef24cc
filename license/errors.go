package license

import "fmt"

// ValidationError reports a literal value that violates a field's value
// contract. It aborts the load that encountered it; absent optional fields
// never produce one.
type ValidationError struct {
	Subject   string
	Predicate string
	Value     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for %s on %s: must be one of true, false, 0, 1",
		e.Value, e.Predicate, e.Subject)
}
