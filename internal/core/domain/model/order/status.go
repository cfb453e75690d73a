package order

import (
	"fmt"

	"nannyadmin/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The state machine is deliberately permissive: any transition between
// non-terminal statuses and into a terminal status is allowed. Only two rules
// gate a transition:
//
//   - Completed and Cancelled are terminal: once reached, no further
//     transitions are permitted, not even to the same status.
//   - An order may enter Completed only if it has at least one line.
//
// Both rules are enforced by Order.ChangeStatus; Status itself only knows
// which of its values are valid and which are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first created.
	Created

	// InProgress indicates the order is being worked on.
	InProgress

	// Completed indicates the order was fulfilled.
	// This is a terminal status with no further transitions allowed.
	Completed

	// Cancelled indicates the order was abandoned.
	// This is a terminal status with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Created:    "Created",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "Created",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// StatusFromString parses a status from its string name ("Created",
// "InProgress", "Completed", "Cancelled"). Used when accepting statuses from
// external callers and when reconstructing orders from persistence.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, InProgress, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no outgoing transitions.
// Completed and Cancelled are the terminal statuses; an order in either of
// them can no longer be modified in any way.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}
