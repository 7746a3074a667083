package hmac

import (
	"crypto/hmac"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/golden-vcr/easy-hmac/httpdate"
)

// MaxClockSkew is the largest difference, in either direction, that's tolerated
// between a request's Date header and the verifier's clock
const MaxClockSkew = 15 * time.Minute

// Verify authenticates a request given the individual values extracted from it:
// the base64 signature and body digest claimed by the sender, the raw body as
// received, and the Date header, content type, path, and method that the signature
// covers. Any failure is reported as an error matching ErrAuthenticationFailed.
func Verify(secret []byte, signatureB64, contentDigestB64 string, rawBody []byte, timestamp, contentType, path, method string) error {
	return NewVerifier(secret).VerifyFields(signatureB64, contentDigestB64, rawBody, timestamp, contentType, path, method)
}

// Verifier checks the HMAC signature of an incoming request
type Verifier interface {
	// Verify authenticates req, whose body has already been read in full into body
	Verify(req *http.Request, body []byte) error

	// VerifyFields authenticates a request given the values already extracted from it
	VerifyFields(signatureB64, contentDigestB64 string, rawBody []byte, timestamp, contentType, path, method string) error
}

func NewVerifier(secret []byte, opts ...Option) Verifier {
	return &verifier{
		secret: secret,
		opts:   resolveOptions(opts),
	}
}

type verifier struct {
	secret []byte
	opts   options
}

func (v *verifier) Verify(req *http.Request, body []byte) error {
	timestamp := req.Header.Get(HeaderDate)
	contentType := req.Header.Get(HeaderContentType)
	path := requestPath(req)
	if containsNewline(req.Method, contentType, timestamp, path) {
		return fail(ReasonSignatureMismatch, ErrFieldContainsNewline)
	}
	return v.VerifyFields(
		req.Header.Get(HeaderSignature),
		req.Header.Get(HeaderContentMD5),
		body,
		timestamp,
		contentType,
		path,
		req.Method,
	)
}

func (v *verifier) VerifyFields(signatureB64, contentDigestB64 string, rawBody []byte, timestamp, contentType, path, method string) error {
	// Reject the request outright if it's not fresh
	signedAt, err := httpdate.Parse(timestamp)
	if err != nil {
		return fail(ReasonMalformedTimestamp, err)
	}
	// Compare in whole seconds: a time.Duration saturates for dates centuries away
	age := v.opts.now().Unix() - signedAt
	if age < 0 {
		age = -age
	}
	if age > int64(MaxClockSkew/time.Second) {
		return fail(ReasonStaleRequest, nil)
	}

	// Ensure that the body we received is the body the sender digested
	contentDigest := DigestBody(rawBody)
	if contentDigest != contentDigestB64 {
		return fail(ReasonBodyDigestMismatch, nil)
	}

	// Rebuild the canonical message from our own digest, not the claimed one, then
	// check the signature against it
	message := BuildMessage(method, contentDigest, contentType, timestamp, path)
	claimed, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		return fail(ReasonSignatureMismatch, err)
	}
	if !hmac.Equal(claimed, ComputeSignature(v.secret, message)) {
		return fail(ReasonSignatureMismatch, nil)
	}
	return nil
}

var _ Verifier = (*verifier)(nil)
