package hmac

import (
	"crypto/md5"
	"encoding/base64"
	"strings"
)

// DigestBody returns the standard base64 encoding of the MD5 digest of the exact raw
// request body
func DigestBody(body []byte) string {
	sum := md5.Sum(body)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// BuildMessage joins the request fields covered by the signature into the canonical
// message, one field per line with no trailing newline. Fields are not escaped:
// callers must not pass values containing "\n".
func BuildMessage(method, contentDigest, contentType, timestamp, path string) string {
	return strings.Join([]string{method, contentDigest, contentType, timestamp, path}, "\n")
}

func containsNewline(values ...string) bool {
	for _, v := range values {
		if strings.Contains(v, "\n") {
			return true
		}
	}
	return false
}
