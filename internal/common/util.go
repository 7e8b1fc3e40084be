package common

// WipeByteArray overwrites b with zeros. It is used on password buffers once
// they have been sent. A nil slice is ignored.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// BearerToken strips the "Bearer " prefix from an Authorization header
// value. ok is false when the prefix is missing or the token is empty.
func BearerToken(header string) (token string, ok bool) {
	if len(header) <= len(BearerPrefix) || header[:len(BearerPrefix)] != BearerPrefix {
		return "", false
	}
	return header[len(BearerPrefix):], true
}
