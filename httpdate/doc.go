// Package httpdate parses the three date grammars that RFC 7231 section 7.1.1.1
// requires HTTP recipients to accept (IMF-fixdate, the obsolete RFC 850 form, and
// ANSI C's asctime() form), converting them to Unix epoch seconds in UTC.
//
// It exists to bound the freshness of HMAC-signed requests: a signer stamps the
// request with a Date header, and a verifier parses that header and rejects the
// request if it falls outside the acceptable clock skew window. It is not a
// general-purpose date library.
//
//	ts, err := httpdate.Parse("Sun, 06 Nov 1994 08:49:37 GMT")
//	if errors.Is(err, httpdate.ErrInvalidFormat) {
//		// no supported grammar matched
//	}
package httpdate
