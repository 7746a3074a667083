// Package hmac implements shared-secret HMAC-SHA256 authentication for HTTP requests
// such as webhook deliveries. A sender and a receiver are both configured with the
// same secret: the sender computes a signature over a canonical representation of the
// request (method, body digest, content type, Date header, and path) and attaches it
// as a header; the receiver rebuilds the same canonical message from the request it
// received, recomputes the signature, and compares the two in constant time. The
// Date header bounds the signature's freshness, so a captured request can only be
// replayed within MaxClockSkew of when it was signed.
//
// The canonical message is the newline-joined sequence:
//
//	METHOD
//	base64(md5(body))
//	CONTENT-TYPE
//	DATE
//	PATH
//
// Senders typically use NewSigner (or NewTransport, to sign every request made by an
// http.Client); receivers use NewVerifier, usually via Middleware. Any verification
// failure is reported as ErrAuthenticationFailed, without revealing which check
// failed; FailureReason recovers the underlying Reason for logging.
package hmac
