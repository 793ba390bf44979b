package myterm

import (
	"reflect"
	"testing"
)

func TestEncodePlainChar(t *testing.T) {
	if got := CharKey('a').Encode(); string(got) != "a" {
		t.Fatalf("Encode = %q, want %q", got, "a")
	}
}

func TestEncodeCtrlLetter(t *testing.T) {
	tests := []struct {
		c    rune
		want byte
	}{
		{'a', 1},
		{'A', 1},
		{'c', 3},
		{'z', 26},
	}
	for _, tt := range tests {
		got := CtrlKey(tt.c).Encode()
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("CtrlKey(%q).Encode() = %v, want [%d]", tt.c, got, tt.want)
		}
	}
}

func TestEncodeCtrlSpecials(t *testing.T) {
	tests := []struct {
		c    rune
		want byte
	}{
		{'@', 0},
		{'[', 27},
		{'\\', 28},
		{']', 29},
		{'^', 30},
		{'_', 31},
		{'?', 127},
	}
	for _, tt := range tests {
		got := CtrlKey(tt.c).Encode()
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("CtrlKey(%q).Encode() = %v, want [%d]", tt.c, got, tt.want)
		}
	}
}

func TestEncodeAltPrefixesEscape(t *testing.T) {
	got := AltKey('x').Encode()
	want := []byte{27, 'x'}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AltKey('x').Encode() = %v, want %v", got, want)
	}
}

func TestEncodeNavigationKeys(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Key{Code: KeyEnter}, "\r"},
		{Key{Code: KeyTab}, "\t"},
		{Key{Code: KeyBackspace}, "\x7f"},
		{Key{Code: KeyDelete}, "\x1b[3~"},
		{Key{Code: KeyHome}, "\x1b[H"},
		{Key{Code: KeyHome, Mods: ModCtrl}, "\x1b[1;5H"},
		{Key{Code: KeyEnd}, "\x1b[F"},
		{Key{Code: KeyUp}, "\x1b[A"},
		{Key{Code: KeyUp, Mods: ModCtrl}, "\x1b[1;5A"},
		{Key{Code: KeyUp, Mods: ModShift}, "\x1b[1;2A"},
		{Key{Code: KeyLeft}, "\x1b[D"},
		{Key{Code: KeyRight}, "\x1b[C"},
		{Key{Code: KeyEscape}, "\x1b"},
	}
	for _, tt := range tests {
		if got := string(tt.key.Encode()); got != tt.want {
			t.Errorf("Encode(%+v) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestEncodeFunctionKeys(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "\x1bOP"},
		{4, "\x1bOS"},
		{5, "\x1b[15~"},
		{12, "\x1b[24~"},
	}
	for _, tt := range tests {
		if got := string(FKey(tt.n).Encode()); got != tt.want {
			t.Errorf("FKey(%d).Encode() = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestParseKeyBindingRoundTrip(t *testing.T) {
	tests := []string{
		"Ctrl+c",
		"Alt+x",
		"Ctrl+Alt+k",
		"F5",
		"Up",
		"Home",
	}

	for _, s := range tests {
		key, err := ParseKeyBinding(s)
		if err != nil {
			t.Fatalf("ParseKeyBinding(%q): %v", s, err)
		}
		if got := key.String(); got != s {
			t.Errorf("ParseKeyBinding(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestParseKeyBindingUnknown(t *testing.T) {
	if _, err := ParseKeyBinding("Ctrl+Nonsense"); err == nil {
		t.Fatal("expected error for unknown key name")
	}
}

func TestParseKeyBindingEmpty(t *testing.T) {
	if _, err := ParseKeyBinding("Ctrl+Alt"); err == nil {
		t.Fatal("expected error when no base key code is present")
	}
}
