package qw

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{"plain ascii", []byte("quake.se KTX"), "quake.se KTX"},
		{"backslash", []byte(`a\b`), `a\\b`},
		{"brown brackets", []byte{0x10, 'q', 0x11}, `\1[q\1]`},
		{"colored digits", []byte{0x12, 0x1b}, `\20\29`},
		{"red brackets", []byte{0x90, 0x91}, `\3[\3]`},
		{"red digits", []byte{0x92, 0x9b}, `\40\49`},
		{"red text", []byte{0xa1, 0xfe}, `\5!\5~`},
		{"red backslash", []byte{0xdc}, `\5\\`},
		{"control bytes", []byte{0x05, 0x7f, 0x85}, `\x05\x7f\x85`},
		{"empty", nil, ""},
	}
	for _, test := range tests {
		if got := Escape(test.raw); got != test.want {
			t.Errorf("Escape(%s): got %q, want %q", test.name, got, test.want)
		}
	}
}

func TestEscapeString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "ParadokS", "ParadokS"},
		{"red text rune", "á", `\5` + "a"},
		{"colored digit rune", "", `\21`},
		{"beyond charset", "☺", `\x263a`},
	}
	for _, test := range tests {
		if got := EscapeString(test.in); got != test.want {
			t.Errorf("EscapeString(%s): got %q, want %q", test.name, got, test.want)
		}
	}
}
