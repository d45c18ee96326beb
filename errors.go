package fintra

import "errors"

// Sentinel errors returned by the ledger store. Callers match them with
// errors.Is; the store always wraps them with operation context.
var (
	// ErrValidation reports a movement or debt that is missing a required
	// field or carries a non-positive amount. Nothing is mutated.
	ErrValidation = errors.New("invalid record")

	// ErrInvalidAmount reports a debt payment that is not positive or
	// exceeds the debt's remaining balance.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNotFound reports an operation on an id absent from the ledger.
	ErrNotFound = errors.New("not found")

	// ErrConflict reports a deletion that would leave dangling references
	// (an income movement whose fund is still backing live expenses).
	ErrConflict = errors.New("conflicting references")

	// ErrOverspend reports an expense that the available funds cannot fully
	// cover. It is a confirmation gate, not a failure state: retrying the
	// operation with overspending explicitly allowed records the movement.
	ErrOverspend = errors.New("funds cannot cover expense")
)
