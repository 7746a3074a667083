package hmac

import "errors"

// ErrAuthenticationFailed is the single error kind reported for a request that
// can't be authenticated, regardless of which check rejected it
var ErrAuthenticationFailed = errors.New("hmac authentication failed")

// ErrFieldContainsNewline is returned when asked to sign a request whose method,
// Date header, or path contains a newline, since the canonical message would then be
// ambiguous
var ErrFieldContainsNewline = errors.New("hmac: request field contains a newline")

// Reason identifies which verification check rejected a request. It's intended for
// diagnostic logging only and should never be sent back to the client.
type Reason string

const (
	ReasonMalformedTimestamp Reason = "malformed-timestamp"
	ReasonStaleRequest       Reason = "stale-request"
	ReasonBodyDigestMismatch Reason = "body-digest-mismatch"
	ReasonSignatureMismatch  Reason = "signature-mismatch"
)

// AuthenticationError is the concrete error returned by a failed verification. Its
// message is the same for every Reason.
type AuthenticationError struct {
	Reason Reason
	cause  error
}

func (e *AuthenticationError) Error() string {
	return ErrAuthenticationFailed.Error()
}

func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthenticationFailed
}

func (e *AuthenticationError) Unwrap() error {
	return e.cause
}

// FailureReason returns the Reason carried by an error returned from verification,
// or false if err is not an AuthenticationError
func FailureReason(err error) (Reason, bool) {
	var authErr *AuthenticationError
	if errors.As(err, &authErr) {
		return authErr.Reason, true
	}
	return "", false
}

func fail(reason Reason, cause error) error {
	return &AuthenticationError{Reason: reason, cause: cause}
}
