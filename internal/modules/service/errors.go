package service

import "errors"

// Service layer errors for better error handling
var (
	ErrUnitNotFound      = errors.New("Unit not found")
	ErrCompoundNotFound  = errors.New("Compound not found")
	ErrDeveloperNotFound = errors.New("Developer not found")

	// Uniqueness violation on units.reference_number
	ErrDuplicateReference = errors.New("Reference number already exists")
)
