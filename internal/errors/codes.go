package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeInternal           Code = "INTERNAL"

	// CodeIngestion marks a game-data document that does not have the shape
	// the ingestion filter expects. Always fatal to startup.
	CodeIngestion Code = "INGESTION"

	// CodePersistence marks a build state that could not be written.
	CodePersistence Code = "PERSISTENCE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status the CLI uses for the code
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument, CodeNotFound, CodeFailedPrecondition:
		return 2
	case CodeUnavailable:
		return 3
	case CodeIngestion:
		return 4
	case CodePersistence:
		return 5
	case CodeCanceled:
		return 130
	default:
		return 1
	}
}
