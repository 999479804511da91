package trace

import "fmt"

// MalformedDataError reports input that cannot be mapped onto the trace
// model: empty or duplicate column names, tables without samples, or
// tables without a single usable trace column.
type MalformedDataError struct {
	Recording string // recording label the input was meant for
	Column    string // offending column, when one is identifiable
	Reason    string
}

func (e *MalformedDataError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("malformed data in %q: column %q: %s", e.Recording, e.Column, e.Reason)
	}
	return fmt.Sprintf("malformed data in %q: %s", e.Recording, e.Reason)
}

// AlignmentError reports an operation combining traces whose sample
// counts differ while no alignment strategy is allowed to reconcile
// them.
type AlignmentError struct {
	A    string // id of the reference trace
	B    string // id of the mismatched trace
	LenA int
	LenB int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("trace %s (%d samples) is not aligned with %s (%d samples)", e.B, e.LenB, e.A, e.LenA)
}
