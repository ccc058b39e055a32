// Package qw speaks just enough of the QuakeWorld protocol to identify
// servers: the out-of-band status query and the game's character set.
package qw

import (
	"fmt"
	"strings"
)

// Escape renders raw QW bytes as a printable ASCII string. QW strings use a
// custom character set with colored digits, bracket glyphs, and a high-bit
// "red text" copy of ASCII; each such byte becomes a backslash escape so the
// original bytes survive a round trip through plain-text storage.
func Escape(raw []byte) string {
	var b strings.Builder
	for _, o := range raw {
		switch {
		case o == 0x10:
			b.WriteString(`\1[`)
		case o == 0x11:
			b.WriteString(`\1]`)
		case o >= 0x12 && o <= 0x1b:
			// Colored digits 0-9.
			b.WriteString(`\2`)
			b.WriteByte(o + 30)
		case o >= 0x20 && o <= 0x7e:
			if o == '\\' {
				b.WriteString(`\\`)
			} else {
				b.WriteByte(o)
			}
		case o == 0x90:
			b.WriteString(`\3[`)
		case o == 0x91:
			b.WriteString(`\3]`)
		case o >= 0x92 && o <= 0x9b:
			// Red digits 0-9.
			b.WriteString(`\4`)
			b.WriteByte(o - 98)
		case o >= 0xa0 && o <= 0xfe:
			// Red text: the high-bit copy of printable ASCII.
			if o == 0xdc {
				b.WriteString(`\5\\`)
			} else {
				b.WriteString(`\5`)
				b.WriteByte(o - 128)
			}
		default:
			fmt.Fprintf(&b, `\x%02x`, o)
		}
	}
	return b.String()
}

// EscapeString escapes a decoded string, such as a name from the hub's JSON
// feed, where each QW byte arrives as the Unicode code point of the same
// value. Code points above 0xff cannot come from a QW string and are escaped
// hexadecimally.
func EscapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r > 0xff {
			fmt.Fprintf(&b, `\x%02x`, r)
			continue
		}
		b.WriteString(Escape([]byte{byte(r)}))
	}
	return b.String()
}
