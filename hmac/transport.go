package hmac

import (
	"bytes"
	"io"
	"net/http"
)

// Transport is an http.RoundTripper that signs each outgoing request before handing
// it off to an underlying RoundTripper
type Transport struct {
	base   http.RoundTripper
	signer Signer
}

// NewTransport returns a Transport that signs requests with signer. When base is nil,
// a clone of http.DefaultTransport is used.
func NewTransport(base http.RoundTripper, signer Signer) *Transport {
	if base == nil {
		base = http.DefaultTransport.(*http.Transport).Clone()
	}
	return &Transport{
		base:   base,
		signer: signer,
	}
}

// RoundTrip reads the request body in full, signs a clone of the request, and sends
// the clone. The caller's request is not modified.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil && req.Body != http.NoBody {
		data, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
		body = data
	}

	clone := req.Clone(req.Context())
	if body != nil {
		clone.Body = io.NopCloser(bytes.NewReader(body))
		clone.ContentLength = int64(len(body))
		clone.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
	}

	if _, err := t.signer.Sign(clone, body); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(clone)
}

var _ http.RoundTripper = (*Transport)(nil)
