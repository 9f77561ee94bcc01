package ops

import (
	"fmt"

	"github.com/cutlass-video/cutlass/internal/errors"
	"github.com/cutlass-video/cutlass/internal/timefmt"
)

// Anchor names one of the nine predefined overlay positions.
type Anchor string

const (
	AnchorTopLeft      Anchor = "top-left"
	AnchorTopCenter    Anchor = "top-center"
	AnchorTopRight     Anchor = "top-right"
	AnchorMiddleLeft   Anchor = "middle-left"
	AnchorCenter       Anchor = "center"
	AnchorMiddleRight  Anchor = "middle-right"
	AnchorBottomLeft   Anchor = "bottom-left"
	AnchorBottomCenter Anchor = "bottom-center"
	AnchorBottomRight  Anchor = "bottom-right"
)

// validAnchor reports whether a is one of the nine recognized anchors.
func validAnchor(a Anchor) bool {
	switch a {
	case AnchorTopLeft, AnchorTopCenter, AnchorTopRight,
		AnchorMiddleLeft, AnchorCenter, AnchorMiddleRight,
		AnchorBottomLeft, AnchorBottomCenter, AnchorBottomRight:
		return true
	}
	return false
}

// anchorExprs returns the x and y position expressions for an anchor in
// terms of the given main and element dimension variable names, e.g.
// ("main_w", "overlay_w", "main_h", "overlay_h") for the overlay filter or
// ("w", "text_w", "h", "text_h") for drawtext.
func anchorExprs(a Anchor, mainW, elemW, mainH, elemH string, pad int) (x, y string) {
	left := fmt.Sprintf("%d", pad)
	hcenter := fmt.Sprintf("(%s-%s)/2", mainW, elemW)
	right := fmt.Sprintf("%s-%s-%d", mainW, elemW, pad)
	top := fmt.Sprintf("%d", pad)
	vcenter := fmt.Sprintf("(%s-%s)/2", mainH, elemH)
	bottom := fmt.Sprintf("%s-%s-%d", mainH, elemH, pad)

	switch a {
	case AnchorTopLeft:
		return left, top
	case AnchorTopCenter:
		return hcenter, top
	case AnchorTopRight:
		return right, top
	case AnchorMiddleLeft:
		return left, vcenter
	case AnchorMiddleRight:
		return right, vcenter
	case AnchorBottomLeft:
		return left, bottom
	case AnchorBottomCenter:
		return hcenter, bottom
	case AnchorBottomRight:
		return right, bottom
	default: // AnchorCenter
		return hcenter, vcenter
	}
}

// windowSentinelEnd stands in for "until the end of the stream" when only
// a start bound was given; the engine clamps it to the actual duration.
const windowSentinelEnd = 999999

// window is an optional visibility interval over the stream timestamp.
type window struct {
	start any
	end   any
}

func (w window) isSet() bool {
	return w.start != nil || w.end != nil
}

func (w window) validate() error {
	if w.start != nil {
		if _, err := timefmt.Convert(w.start); err != nil {
			return err
		}
	}
	if w.end != nil {
		if _, err := timefmt.Convert(w.end); err != nil {
			return err
		}
	}
	return nil
}

// enableExpr renders the gating expression over the current timestamp.
// Missing bounds default to the stream start and a large sentinel end.
func (w window) enableExpr() (string, error) {
	start := "0"
	if w.start != nil {
		s, err := timefmt.Format(w.start, timefmt.StyleSeconds)
		if err != nil {
			return "", err
		}
		start = s
	}
	end := fmt.Sprintf("%d", windowSentinelEnd)
	if w.end != nil {
		e, err := timefmt.Format(w.end, timefmt.StyleSeconds)
		if err != nil {
			return "", err
		}
		end = e
	}
	return fmt.Sprintf("enable='between(t,%s,%s)'", start, end), nil
}

// positionSpec holds the mutually exclusive anchor-vs-coordinate choice
// shared by the overlay and text operations.
type positionSpec struct {
	anchor  Anchor
	x, y    *int
	padding int
}

func (p positionSpec) validate() error {
	if p.anchor != "" && (p.x != nil || p.y != nil) {
		return errors.NewInvalidParameter("predefined position and explicit coordinates are mutually exclusive")
	}
	if p.anchor != "" && !validAnchor(p.anchor) {
		return errors.NewInvalidParameter("unknown position '%s'", p.anchor)
	}
	if (p.x == nil) != (p.y == nil) {
		return errors.NewInvalidParameter("explicit position requires both x and y")
	}
	if p.padding < 0 {
		return errors.NewInvalidParameter("padding must be non-negative")
	}
	return nil
}

// exprs resolves the position to x/y expressions using the given
// dimension variable names. The anchor defaults to center when nothing
// was specified.
func (p positionSpec) exprs(mainW, elemW, mainH, elemH string) (x, y string) {
	if p.x != nil && p.y != nil {
		return fmt.Sprintf("%d", *p.x), fmt.Sprintf("%d", *p.y)
	}
	anchor := p.anchor
	if anchor == "" {
		anchor = AnchorCenter
	}
	return anchorExprs(anchor, mainW, elemW, mainH, elemH, p.padding)
}
