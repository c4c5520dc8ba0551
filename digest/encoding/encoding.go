// Package encoding renders finalized digest output as text.
//
// These are presentation forms only; none of them participate in the hash
// or MAC computations themselves.
package encoding

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// Hex returns the lowercase hexadecimal form of sum.
func Hex(sum []byte) string { return hex.EncodeToString(sum) }

// Base64 returns the standard (padded) Base64 form of sum.
func Base64(sum []byte) string { return base64.StdEncoding.EncodeToString(sum) }

const (
	babbleVowels     = "aeiouy"
	babbleConsonants = "bcdfghklmnprstvzx"
)

// BubbleBabble returns the Bubble Babble form of sum: pronounceable
// five-letter tuples separated by dashes, delimited by 'x', with a running
// checksum folded into the vowel positions.
//
// Reference: https://web.mit.edu/kenta/www/one/bubblebabble/spec/jrtrjwzi/draft-huima-01.txt
func BubbleBabble(sum []byte) string {
	var sb strings.Builder
	sb.WriteByte('x')

	seed := 1
	for i := 0; ; i += 2 {
		if i >= len(sum) {
			sb.WriteByte(babbleVowels[seed%6])
			sb.WriteByte('x')
			sb.WriteByte(babbleVowels[seed/6])
			break
		}

		b1 := int(sum[i])
		sb.WriteByte(babbleVowels[(((b1>>6)&3)+seed)%6])
		sb.WriteByte(babbleConsonants[(b1>>2)&15])
		sb.WriteByte(babbleVowels[((b1&3)+(seed/6))%6])

		if i+1 >= len(sum) {
			break
		}

		b2 := int(sum[i+1])
		sb.WriteByte(babbleConsonants[(b2>>4)&15])
		sb.WriteByte('-')
		sb.WriteByte(babbleConsonants[b2&15])

		seed = (seed*5 + b1*7 + b2) % 36
	}

	sb.WriteByte('x')
	return sb.String()
}
