// Package uniuri generates cryptographically secure random strings suitable
// for use as secrets and unique identifiers.
package uniuri

import (
	"crypto/rand"
)

const (
	// StdLen is a standard length of uniuri string to achieve ~95 bits of entropy.
	StdLen = 16
	// SecretLen is the length used for generated signing secrets.
	SecretLen = 48
)

// StdChars is a set of standard characters allowed in uniuri string.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// New returns a new random string of the standard length, consisting of
// standard characters.
func New() string {
	return NewLen(StdLen)
}

// NewLen returns a new random string of the provided length, consisting of
// standard characters.
func NewLen(length int) string {
	return NewLenChars(length, StdChars)
}

// NewLenChars returns a new random string of the provided length, consisting
// of the provided byte slice of allowed characters (maximum 256).
func NewLenChars(length int, chars []byte) string {
	if length == 0 {
		return ""
	}

	clen := len(chars)
	if clen < 2 || clen > 256 {
		panic("uniuri: wrong charset length for NewLenChars")
	}

	maxrb := 255 - (256 % clen)
	out := make([]byte, length)
	buf := make([]byte, length+(length/4)) // storage for random bytes

	var i int

	for {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, rb := range buf {
			c := int(rb)
			if c > maxrb {
				// Skip this number to avoid modulo bias.
				continue
			}

			out[i] = chars[c%clen]
			i++

			if i == length {
				return string(out)
			}
		}
	}
}
