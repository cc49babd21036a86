package aws

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// Error is a string-constant error.
type Error string

const (
	ErrNoCredentials      = Error("no AWS credentials found")
	ErrExpiredCredentials = Error("AWS credentials have expired")
	ErrNoConnection       = Error("no connection to AWS")
	ErrInvalidProfile     = Error("invalid AWS profile")
	ErrInvalidRegion      = Error("invalid AWS region")
)

// Error implements the error interface.
func (e Error) Error() string {
	return string(e)
}

// WrapAPIError translates well-known AWS API error codes into sentinel
// errors and annotates everything else with the failing operation.
func WrapAPIError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "AccessDeniedException":
			return fmt.Errorf("access denied for %s: %w", operation, err)
		case "ExpiredToken", "ExpiredTokenException":
			return fmt.Errorf("%w: %s", ErrExpiredCredentials, operation)
		case "Throttling", "ThrottlingException":
			return fmt.Errorf("rate limited during %s: %w", operation, err)
		case "InvalidClientTokenId":
			return fmt.Errorf("%w: %s", ErrNoCredentials, operation)
		default:
			return fmt.Errorf("%s failed: %s (%s)", operation, apiErr.ErrorMessage(), apiErr.ErrorCode())
		}
	}

	return fmt.Errorf("%s failed: %w", operation, err)
}
