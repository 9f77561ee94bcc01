package ops

import (
	"fmt"
	"strings"

	"github.com/cutlass-video/cutlass/internal/errors"
	"github.com/cutlass-video/cutlass/internal/ffmpeg"
)

const (
	defaultFontSize  = 24
	defaultFontColor = "white"
)

// Text draws a string over the main video via the drawtext filter.
type Text struct {
	text     string
	fontSize int
	color    string
	fontFile string
	pos      positionSpec
	win      window
}

// TextOptions configures a text operation.
type TextOptions struct {
	// FontSize in points; zero means the default.
	FontSize int
	// Color is the font color; empty means white.
	Color string
	// FontFile is an optional path to a font file.
	FontFile string
	// Position is a predefined anchor, mutually exclusive with X/Y.
	Position Anchor
	// X, Y are explicit pixel coordinates.
	X, Y *int
	// Padding offsets anchored positions from the edges.
	Padding int
	// Start, End bound the visibility window; any timefmt representation.
	Start, End any
}

// NewText creates a text overlay operation.
func NewText(text string, opts TextOptions) (*Text, error) {
	op := &Text{
		text:     text,
		fontSize: opts.FontSize,
		color:    opts.Color,
		fontFile: opts.FontFile,
		pos: positionSpec{
			anchor:  opts.Position,
			x:       opts.X,
			y:       opts.Y,
			padding: opts.Padding,
		},
		win: window{start: opts.Start, end: opts.End},
	}
	if op.fontSize == 0 {
		op.fontSize = defaultFontSize
	}
	if op.color == "" {
		op.color = defaultFontColor
	}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return op, nil
}

// Validate checks the payload, position exclusivity, and window bounds.
func (t *Text) Validate() error {
	if t.text == "" {
		return errors.NewInvalidParameter("text payload is required")
	}
	if t.fontSize < 0 {
		return errors.NewInvalidParameter("font size must be positive")
	}
	if err := t.pos.validate(); err != nil {
		return err
	}
	return t.win.validate()
}

// escapeDrawtext escapes the characters that would corrupt the drawtext
// filter's own delimiter syntax. Backslash goes first so the escapes
// added for quote and colon are not escaped again.
func escapeDrawtext(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, `:`, `\:`)
	return s
}

// Apply registers the drawtext filter as a complex node so it can be
// mapped explicitly to the output alongside other labeled filters.
func (t *Text) Apply(b *ffmpeg.Builder) error {
	x, y := t.pos.exprs("w", "text_w", "h", "text_h")

	parts := []string{
		fmt.Sprintf("text='%s'", escapeDrawtext(t.text)),
		fmt.Sprintf("fontsize=%d", t.fontSize),
		fmt.Sprintf("fontcolor=%s", t.color),
	}
	if t.fontFile != "" {
		parts = append(parts, fmt.Sprintf("fontfile=%s", t.fontFile))
	}
	parts = append(parts, fmt.Sprintf("x=%s", x), fmt.Sprintf("y=%s", y))

	if t.win.isSet() {
		enable, err := t.win.enableExpr()
		if err != nil {
			return err
		}
		parts = append(parts, enable)
	}

	b.AddComplexFilter("drawtext="+strings.Join(parts, ":"), nil, nil)
	return nil
}

// Describe returns a log summary.
func (t *Text) Describe() string {
	return fmt.Sprintf("draw text %q", t.text)
}
