package apierrors

// Machine-readable error codes returned alongside error responses.
const (
	CodeNotFound            = "NOT_FOUND"
	CodeAirdropNotFound     = "AIRDROP_NOT_FOUND"
	CodeParticipantNotFound = "PARTICIPANT_NOT_FOUND"
	CodeTaskCompleted       = "TASK_ALREADY_COMPLETED"
	CodeAlreadyCheckedIn    = "ALREADY_CHECKED_IN"
	CodeAlreadyClaimed      = "ALREADY_CLAIMED"
	CodeNothingToClaim      = "NOTHING_TO_CLAIM"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeInvalidAmount       = "INVALID_AMOUNT"
	CodeInvalidStatus       = "INVALID_STATUS"
	CodeInvalidTaskKind     = "INVALID_TASK_KIND"
	CodeInvalidAddress      = "INVALID_ADDRESS"
	CodeInvalidType         = "INVALID_TYPE"
	CodeEmailExists         = "EMAIL_EXISTS"
	CodeEmailNotFound       = "EMAIL_NOT_FOUND"
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeInternalError       = "INTERNAL_ERROR"
)
