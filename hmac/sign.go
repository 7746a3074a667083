package hmac

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"

	"github.com/golden-vcr/easy-hmac/httpdate"
)

// ComputeSignature returns the raw 32-byte HMAC-SHA256 of message, keyed by secret
func ComputeSignature(secret []byte, message string) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(message))
	return mac.Sum(nil)
}

// Sign computes the raw signature for a JSON request with the given method, body,
// path, and Date header value. Callers base64-encode the result for transport.
func Sign(secret []byte, method string, body []byte, path, timestamp string) []byte {
	message := BuildMessage(method, DigestBody(body), ContentTypeJSON, timestamp, path)
	return ComputeSignature(secret, message)
}

// Signer attaches an HMAC signature, along with the headers that the signature
// covers, to an outgoing HTTP request
type Signer interface {
	Sign(req *http.Request, body []byte) (*http.Request, error)
}

func NewSigner(secret []byte, opts ...Option) Signer {
	return &signer{
		secret: secret,
		opts:   resolveOptions(opts),
	}
}

type signer struct {
	secret []byte
	opts   options
}

func (s *signer) Sign(req *http.Request, body []byte) (*http.Request, error) {
	timestamp := req.Header.Get(HeaderDate)
	if timestamp == "" {
		timestamp = httpdate.Format(s.opts.now())
	}
	path := requestPath(req)
	if containsNewline(req.Method, timestamp, path) {
		return nil, ErrFieldContainsNewline
	}

	signature := Sign(s.secret, req.Method, body, path, timestamp)

	req.Header.Set(HeaderDate, timestamp)
	req.Header.Set(HeaderContentType, ContentTypeJSON)
	req.Header.Set(HeaderContentMD5, DigestBody(body))
	req.Header.Set(HeaderSignature, base64.StdEncoding.EncodeToString(signature))
	return req, nil
}

// requestPath returns the path covered by the signature: an empty path is sent as
// "/" on the wire, so that's what both sides sign
func requestPath(req *http.Request) string {
	if req.URL.Path == "" {
		return "/"
	}
	return req.URL.Path
}

var _ Signer = (*signer)(nil)
