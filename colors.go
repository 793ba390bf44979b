package myterm

import "image/color"

// Palette is a 256-entry color table: 16 named colors (0-15), a 216-color
// cube (16-231), and 24 grayscale steps (232-255).
type Palette [256]color.RGBA

// DefaultPalette is the standard palette used to resolve indexed (SGR
// 38;5;N / 48;5;N) colors when no custom palette has been installed.
var DefaultPalette = buildDefaultPalette()

func buildDefaultPalette() Palette {
	var p Palette

	copy(p[:8], []color.RGBA{
		{0, 0, 0, 255},
		{205, 49, 49, 255},
		{13, 188, 121, 255},
		{229, 229, 16, 255},
		{36, 114, 200, 255},
		{188, 63, 188, 255},
		{17, 168, 205, 255},
		{229, 229, 229, 255},
	})
	copy(p[8:16], []color.RGBA{
		{102, 102, 102, 255},
		{241, 76, 76, 255},
		{35, 209, 139, 255},
		{245, 245, 67, 255},
		{59, 142, 234, 255},
		{214, 112, 214, 255},
		{41, 184, 219, 255},
		{255, 255, 255, 255},
	})

	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = color.RGBA{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51), A: 255}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		p[232+j] = color.RGBA{gray, gray, gray, 255}
	}

	return p
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// DefaultCursorColor is the default cursor rendering color.
var DefaultCursorColor = color.RGBA{229, 229, 229, 255}

// Indexed resolves one of the 256 palette entries to RGBA, against p (SGR
// 38;5;N / 48;5;N). Out-of-range indices resolve to the given fallback.
func (p *Palette) Indexed(index int, fallback color.RGBA) color.RGBA {
	if index < 0 || index > 255 {
		return fallback
	}
	return p[index]
}

// RGB builds an RGBA color directly from 24-bit components (SGR
// 38;2;R;G;B / 48;2;R;G;B).
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// dim returns c scaled toward black, used for ANSI "dim"/faint rendition
// when a renderer wants a pre-blended color rather than honoring the Dim
// flag itself.
func dim(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.66),
		G: uint8(float64(c.G) * 0.66),
		B: uint8(float64(c.B) * 0.66),
		A: c.A,
	}
}

// Named color indices used by go-ansicode's NamedColor for the xterm
// special colors (current foreground/background/cursor), the aixterm-style
// dim variants of the 8 standard colors, and bright/dim foreground —
// layered above the 256-entry indexed palette. Values and ordering match
// go-ansicode's own NamedColor* constants exactly; this package doesn't
// import that enum directly (it only sees the resolved int off the
// decoder), so the numbers are reproduced here rather than aliased.
const (
	namedForeground       = 256 // NamedColorForeground
	namedBackground       = 257 // NamedColorBackground
	namedCursor           = 258 // NamedColorCursor
	namedDimBlack         = 259 // NamedColorDimBlack
	namedDimRed           = 260 // NamedColorDimRed
	namedDimGreen         = 261 // NamedColorDimGreen
	namedDimYellow        = 262 // NamedColorDimYellow
	namedDimBlue          = 263 // NamedColorDimBlue
	namedDimMagenta       = 264 // NamedColorDimMagenta
	namedDimCyan          = 265 // NamedColorDimCyan
	namedDimWhite         = 266 // NamedColorDimWhite
	namedBrightForeground = 267 // NamedColorBrightForeground
	namedDimForeground    = 268 // NamedColorDimForeground
)

// ResolveNamed resolves one of go-ansicode's semantic NamedColor values
// against palette, falling back to a plain 0-15/16-255 indexed lookup and
// to the fixed default rendition for the xterm special colors. fg selects
// which of DefaultForeground/DefaultBackground is used for the "current
// rendition" fallback when name isn't one of the recognized semantic slots.
func ResolveNamed(name int, palette *Palette, fg bool) color.RGBA {
	switch {
	case name == namedForeground:
		return DefaultForeground
	case name == namedBackground:
		return DefaultBackground
	case name == namedCursor:
		return DefaultCursorColor
	case name >= namedDimBlack && name <= namedDimWhite:
		return dim(palette.Indexed(name-namedDimBlack, DefaultForeground))
	case name == namedBrightForeground:
		return palette.Indexed(15, DefaultForeground)
	case name == namedDimForeground:
		return dim(DefaultForeground)
	}
	if fg {
		return palette.Indexed(name, DefaultForeground)
	}
	return palette.Indexed(name, DefaultBackground)
}
