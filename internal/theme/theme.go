// Package theme ties a settings snapshot to the palettes and stylesheet
// derived from it.
package theme

import (
	"io"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/shadeforge/internal/palette"
	"github.com/alexisbeaulieu97/shadeforge/internal/stylesheet"
)

// Theme is a settings snapshot together with the palettes derived from that
// exact snapshot.
type Theme struct {
	Settings Settings
	Primary  palette.Palette
	Neutral  palette.Palette
}

// Derive validates s and generates both palettes.
func Derive(s Settings) (Theme, error) {
	if err := s.Validate(); err != nil {
		return Theme{}, err
	}
	return Theme{
		Settings: s,
		Primary:  palette.Generate(s.Primary()),
		Neutral:  palette.Generate(s.Neutral()),
	}, nil
}

// Stylesheet renders the theme as CSS custom properties.
func (t Theme) Stylesheet(opts stylesheet.Options) string {
	var buf strings.Builder
	_ = t.WriteStylesheet(&buf, opts)
	return buf.String()
}

// WriteStylesheet streams the stylesheet to w.
func (t Theme) WriteStylesheet(w io.Writer, opts stylesheet.Options) error {
	return stylesheet.Render(w, t.Primary, t.Neutral, t.Settings.FontFamily(), t.Settings.RadiusPx(), opts)
}

// Declarations returns the custom properties for live preview.
func (t Theme) Declarations() []stylesheet.Declaration {
	return stylesheet.Declarations(t.Primary, t.Neutral, t.Settings.FontFamily(), t.Settings.RadiusPx())
}

// Live holds the most recent valid theme. Apply replaces it only when the
// new snapshot derives cleanly, so a rejected update leaves the previous
// palettes in view.
type Live struct {
	mu      sync.RWMutex
	current Theme
}

// NewLive derives the initial theme.
func NewLive(initial Settings) (*Live, error) {
	t, err := Derive(initial)
	if err != nil {
		return nil, err
	}
	return &Live{current: t}, nil
}

// Current returns the active theme.
func (l *Live) Current() Theme {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// Apply derives a theme from next and makes it current. On error the
// current theme is returned unchanged alongside the error.
func (l *Live) Apply(next Settings) (Theme, error) {
	t, err := Derive(next)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		return l.current, err
	}
	l.current = t
	return t, nil
}

// Update applies fn to the current settings under the lock, so concurrent
// edits to different fields are not lost.
func (l *Live) Update(fn func(Settings) Settings) (Theme, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, err := Derive(fn(l.current.Settings))
	if err != nil {
		return l.current, err
	}
	l.current = t
	return t, nil
}
