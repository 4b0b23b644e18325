package cli

// Exit codes for CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error, including failures to read or
	// write the todo store.
	ExitError = 1

	// ExitUsage indicates incorrect command usage, such as a malformed ID.
	ExitUsage = 2

	// ExitNotFound indicates the referenced todo does not exist.
	ExitNotFound = 3

	// ExitValidation indicates input that failed validation, such as an
	// empty title.
	ExitValidation = 5
)
