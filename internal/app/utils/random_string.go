// Package utils holds small helpers shared by the service and the HTTP layer,
// most notably short identifier generation.
package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// IDLength is the length of every generated short identifier.
const IDLength = 6

// Alphabet is the URL-safe set identifiers are drawn from.
const Alphabet = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// StringWithCharset returns a random string of the given length whose
// characters are taken from charset.
func StringWithCharset(length int, charset string) (string, error) {
	return gonanoid.Generate(charset, length)
}

// NewID returns a fresh IDLength-character identifier drawn from Alphabet.
func NewID() (string, error) {
	return StringWithCharset(IDLength, Alphabet)
}
