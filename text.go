package qc

import (
	"fmt"
	"unicode"
)

// Bytes returns a stream of single bytes with code points uniform in
// [min, max]. Panics if the bounds leave [0, 255] or min > max.
func (e *Env) Bytes(min, max int) *Stream[byte] {
	if min < 0 || max > 0xFF || min > max {
		panic(fmt.Sprintf("qc: byte range [%d, %d] outside [0, 255]", min, max))
	}
	return newStream(func() byte {
		return byte(e.between(int64(min), int64(max)))
	})
}

// Runes returns a stream of single runes with code points uniform in
// [min, max]. Panics if the bounds leave [0, unicode.MaxRune] or
// min > max. Code points in the surrogate range are valid runes but
// encode as U+FFFD when collected into a string.
func (e *Env) Runes(min, max int) *Stream[rune] {
	if min < 0 || max > unicode.MaxRune || min > max {
		panic(fmt.Sprintf("qc: rune range [%d, %d] outside [0, %d]", min, max, unicode.MaxRune))
	}
	return newStream(func() rune {
		return rune(e.between(int64(min), int64(max)))
	})
}

// Strings returns a stream of byte strings: each draw picks a length
// uniformly from [0, size], then that many bytes from Bytes(min, max).
func (e *Env) Strings(min, max int) *Stream[string] {
	chars := e.Bytes(min, max)
	return newStream(func() string {
		b := make([]byte, e.length())
		for i := range b {
			b[i] = chars.Next()
		}
		return string(b)
	})
}

// UnicodeStrings is Strings over runes from Runes(min, max).
func (e *Env) UnicodeStrings(min, max int) *Stream[string] {
	chars := e.Runes(min, max)
	return newStream(func() string {
		r := make([]rune, e.length())
		for i := range r {
			r[i] = chars.Next()
		}
		return string(r)
	})
}

// Chars is the Gen form of Env.Bytes over the full byte alphabet.
func Chars() Gen[byte] { return Bytes(0, 0xFF) }

// UnicodeChars is the Gen form of Env.Runes over the default alphabet
// [0, 512].
func UnicodeChars() Gen[rune] { return Runes(0, 512) }

// Bytes is the Gen form of Env.Bytes.
func Bytes(min, max int) Gen[byte] {
	return From(func(e *Env) *Stream[byte] { return e.Bytes(min, max) })
}

// Runes is the Gen form of Env.Runes.
func Runes(min, max int) Gen[rune] {
	return From(func(e *Env) *Stream[rune] { return e.Runes(min, max) })
}

// Strings is the Gen form of Env.Strings.
func Strings(min, max int) Gen[string] {
	return From(func(e *Env) *Stream[string] { return e.Strings(min, max) })
}

// UnicodeStrings is the Gen form of Env.UnicodeStrings.
func UnicodeStrings(min, max int) Gen[string] {
	return From(func(e *Env) *Stream[string] { return e.UnicodeStrings(min, max) })
}
