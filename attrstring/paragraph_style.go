package attrstring

// StrutStyle pins a paragraph's line height to a synthetic minimum,
// independent of the metrics of the glyphs actually shaped onto it.
//
// Adapted from: skia/paragraph/strut_style.go (SPEC_FULL §D.2).
type StrutStyle struct {
	Enabled    bool
	FontSize   float64
	Height     float64 // multiplier of FontSize giving the strut height
	ForceApply bool    // use the strut height even when smaller than the line's own
}

// HeightBehavior controls whether the extra leading above the first line or
// below the last line of a paragraph is suppressed (SPEC_FULL §D.1).
//
// Adapted from: skia/paragraph/types.go TextHeightBehavior.
type HeightBehavior int

const (
	HeightBehaviorAll HeightBehavior = 0

	HeightBehaviorDisableFirstAscent HeightBehavior = 1 << (iota - 1)
	HeightBehaviorDisableLastDescent
)

// ParagraphStyle is the projection of paragraph-only attributes (§3),
// built once per paragraph from its first run's Attributes.
type ParagraphStyle struct {
	MarginLeft            float64
	MarginRight           float64
	Indent                float64
	MaxLines              int // 0 means unlimited
	LineSpacing           float64
	ParagraphSpacing      float64
	HangingPunctuation    bool
	TruncationMode        TruncationMode
	JustificationFactor   float64
	Align                 Align
	AlignLastLine         Align
	Strut                 StrutStyle
	HeightBehavior        HeightBehavior
}

// UnlimitedLines reports whether MaxLines imposes no cap.
func (p ParagraphStyle) UnlimitedLines() bool { return p.MaxLines <= 0 }

// DefaultParagraphStyle returns a ParagraphStyle with spec-mandated defaults:
// no margins/indent, unlimited lines, no hanging punctuation, tail truncation
// disabled until a mode is named, full justification factor.
func DefaultParagraphStyle() ParagraphStyle {
	return ParagraphStyle{
		JustificationFactor: 1.0,
		Align:               AlignLeft,
		AlignLastLine:       AlignLeft,
	}
}
