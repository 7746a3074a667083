package hmac

const (
	// HeaderDate is the name of the header that carries the HTTP date (in any of the
	// formats accepted by httpdate.Parse) at which the request was signed
	HeaderDate = "date"

	// HeaderContentType is the name of the header that carries the request body's
	// media type, which is bound into the signature
	HeaderContentType = "content-type"

	// HeaderContentMD5 is the name of the header that carries the base64-encoded MD5
	// digest of the raw request body
	HeaderContentMD5 = "content-md5"

	// HeaderSignature is the name of the header that carries the base64-encoded
	// HMAC-SHA256 signature computed over the canonical message
	HeaderSignature = "x-hmac-signature"
)

// ContentTypeJSON is the content type that Sign binds into every signature it
// produces
const ContentTypeJSON = "application/json"
