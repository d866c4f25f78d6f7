package types

import "errors"

var (
	// ErrInvalidInput is returned when a numeric argument is out of range,
	// negative where it must not be, or not a finite number.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoApplianceSelected is returned when none of the selected appliance
	// names resolve to a known appliance.
	ErrNoApplianceSelected = errors.New("no appliance selected")

	// ErrUnknownEntity is returned when a directly referenced plan or
	// appliance does not exist in the catalog.
	ErrUnknownEntity = errors.New("unknown entity")
)
