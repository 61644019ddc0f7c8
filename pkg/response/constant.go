package response

const (
	MessageSuccess = "Success"

	InternalServerErrorCode = 500
	DefaultErrorMessage     = "Something went wrong, please try again later"

	// DateFormat is the business-local calendar date key format.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the full timestamp format used in responses.
	DateTimeFormat = "2006-01-02 15:04:05"
)
