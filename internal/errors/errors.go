package errors

import "errors"

// Project state errors indicate issues with project initialization.
var (
	// ErrProjectNotInitialized indicates no .sessiontrail directory was found.
	ErrProjectNotInitialized = errors.New("project has not been initialized")

	// ErrProjectAlreadyInitialized indicates the project already has a .sessiontrail directory.
	ErrProjectAlreadyInitialized = errors.New("project has already been initialized")

	// ErrInvalidProjectConfig indicates the project configuration is malformed or corrupt.
	ErrInvalidProjectConfig = errors.New("project configuration is invalid")
)

// Log errors indicate issues reading or filtering the lifecycle log.
var (
	// ErrNoAuditLog indicates no lifecycle log exists yet.
	ErrNoAuditLog = errors.New("no lifecycle log found")

	// ErrInvalidDateFormat indicates a date filter could not be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format")
)

// Verification errors relate to the deprecated verify pass-through.
var (
	// ErrNoVerifyCommand indicates no verification command is configured for the project.
	ErrNoVerifyCommand = errors.New("no verification command configured")
)
