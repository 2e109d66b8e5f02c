package apierrors

import (
	"errors"

	airdropProcessor "dropz-server/internal/airdrop/processor"
	authProcessor "dropz-server/internal/auth/processor"
	"dropz-server/internal/store"
	transactionsProcessor "dropz-server/internal/transactions/processor"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	// Check if already an APIError
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Map airdrop processor errors
	case errors.Is(err, airdropProcessor.ErrAirdropNotFound):
		return NotFound(CodeAirdropNotFound, "Airdrop not found")

	case errors.Is(err, airdropProcessor.ErrParticipantNotFound):
		return NotFound(CodeParticipantNotFound, "Participant not found, join first")

	case errors.Is(err, airdropProcessor.ErrTaskAlreadyCompleted):
		return Conflict(CodeTaskCompleted, "Task already completed")

	case errors.Is(err, airdropProcessor.ErrAlreadyCheckedInToday):
		return Conflict(CodeAlreadyCheckedIn, "Already checked in today")

	case errors.Is(err, airdropProcessor.ErrAlreadyClaimed):
		return Conflict(CodeAlreadyClaimed, "Earnings already claimed")

	case errors.Is(err, airdropProcessor.ErrNothingToClaim):
		return Conflict(CodeNothingToClaim, "Nothing to claim")

	case errors.Is(err, airdropProcessor.ErrInsufficientBalance):
		return Conflict(CodeInsufficientBalance, "Insufficient pool balance")

	case errors.Is(err, airdropProcessor.ErrInvalidAmount):
		return BadRequest(CodeInvalidAmount, "Amount must be a non-negative integer string")

	case errors.Is(err, airdropProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidStatus, "Invalid airdrop status. Valid values: pending, active, completed, cancelled")

	case errors.Is(err, airdropProcessor.ErrInvalidTaskKind):
		return BadRequest(CodeInvalidTaskKind, "Invalid task kind. Valid values: follow, retweet, like, comment, external, custom")

	case errors.Is(err, airdropProcessor.ErrInvalidAddress):
		return BadRequest(CodeInvalidAddress, "Invalid Ethereum address")

	// Map transactions processor errors
	case errors.Is(err, transactionsProcessor.ErrInvalidTransactionType):
		return BadRequest(CodeInvalidType, "Invalid transaction type. Valid values: SEND, CLAIM, CREATE, DEPOSIT")

	case errors.Is(err, transactionsProcessor.ErrInvalidAmount):
		return BadRequest(CodeInvalidAmount, "Amount must be a non-negative integer string")

	// Map auth processor errors
	case errors.Is(err, authProcessor.ErrEmailAlreadyExists):
		return Conflict(CodeEmailExists, "Email already exists")

	case errors.Is(err, authProcessor.ErrEmailDoesNotExist):
		return NotFound(CodeEmailNotFound, "Email does not exist")

	case errors.Is(err, authProcessor.ErrIncorrectPassword):
		return Unauthorized("Invalid email or password")

	case errors.Is(err, authProcessor.ErrUserNotFound):
		return NotFound(CodeUserNotFound, "User not found")

	// Map store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	case errors.Is(err, store.ErrInsufficientBalance):
		return Conflict(CodeInsufficientBalance, "Insufficient pool balance")

	// Default: Unknown error - return sanitized 500
	default:
		return InternalError(err)
	}
}
