package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation.
type FontSource struct {
	// addr points to the FontSource itself and detects copies.
	addr *FontSource

	data []byte
	font *opentype.Font
	name string

	// shapingFont is parsed lazily on the first shaping call.
	shapingOnce sync.Once
	shapingFont *gtfont.Font
	shapingErr  error
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data: dataCopy,
		font: f,
	}
	s.addr = s
	s.name = fontName(f)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

var defaultSource = sync.OnceValue(func() *FontSource {
	s, err := NewFontSource(goregular.TTF)
	if err != nil {
		panic("text: embedded Go Regular font failed to parse: " + err.Error())
	}
	return s
})

// DefaultSource returns the Go Regular font used when a label has no
// explicit font. The source is immutable and shared.
func DefaultSource() *FontSource {
	return defaultSource()
}

// Face creates a Face at the specified size in pixels.
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) *Face {
	if s == nil {
		panic("text: FontSource is nil, did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if size < 0 {
		size = 0
	}
	return &Face{
		source: s,
		size:   size,
		config: config,
	}
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// shaping returns the go-text font used by the HarfBuzz shaper.
func (s *FontSource) shaping() (*gtfont.Font, error) {
	s.shapingOnce.Do(func() {
		face, err := gtfont.ParseTTF(bytes.NewReader(s.data))
		if err != nil {
			s.shapingErr = fmt.Errorf("text: failed to load font for shaping: %w", err)
			return
		}
		s.shapingFont = face.Font
	})
	return s.shapingFont, s.shapingErr
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

func fontName(f *opentype.Font) string {
	if n, err := f.Name(nil, sfnt.NameIDFamily); err == nil && n != "" {
		return n
	}
	if n, err := f.Name(nil, sfnt.NameIDFull); err == nil && n != "" {
		return n
	}
	return "Unknown Font"
}
