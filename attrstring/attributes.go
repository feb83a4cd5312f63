package attrstring

// FontHandle is an opaque reference to a caller-supplied font. The core never
// inspects it; it is forwarded to the Font oracle (see package font).
type FontHandle any

// DecorationStyle is the line style used for underline/strike decorations.
//
// Adapted from: skia/paragraph/decoration.go TextDecorationStyle.
type DecorationStyle int

const (
	DecorationSolid DecorationStyle = iota
	DecorationDouble
	DecorationDashed
	DecorationDotted
	DecorationWavy
)

// Align is the horizontal alignment of a line within its box.
//
// Adapted from: skia/paragraph/types.go TextAlign.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// TruncationMode selects where an overlong last line is elided. See C9.
type TruncationMode int

const (
	TruncateNone TruncationMode = iota
	TruncateHead
	TruncateMiddle
	TruncateTail
)

// AttachmentAlignment controls how an inline object aligns to the line's
// vertical metrics. Supplements the base attachment model (SPEC_FULL D.3).
type AttachmentAlignment int

const (
	AttachmentAlignBaseline AttachmentAlignment = iota
	AttachmentAlignAboveBaseline
	AttachmentAlignBelowBaseline
	AttachmentAlignTop
	AttachmentAlignBottom
	AttachmentAlignMiddle
)

// Attachment describes an inline object substituting for a single
// U+FFFC (object replacement character) in the string. Width reserves
// the glyph's horizontal advance; Height, YOffset, and Alignment position
// its box vertically relative to the line (glyph/glyph.go's
// placeholderYOffset), and XOffset nudges it horizontally. Image is opaque to the core exactly like
// FontHandle is — it is never inspected here, only carried through to
// whatever renderer the caller points at this run's glyphs, since
// drawing the object is a rasterization concern out of scope per §1.
type Attachment struct {
	Width, Height float64
	Image         any
	XOffset       float64
	YOffset       float64
	Alignment     AttachmentAlignment
}

// Field identifies one attribute for overlay/merge purposes (C1). Using an
// explicit bitmask instead of reflection keeps the flattener a closed,
// enumerable operation over a known field set, mirroring the teacher's
// StyleType enumeration in skia/paragraph/text_style.go.
type Field uint32

const (
	FieldColor Field = 1 << iota
	FieldBackgroundColor
	FieldFont
	FieldFontSize
	FieldLineHeight
	FieldUnderline
	FieldUnderlineColor
	FieldUnderlineStyle
	FieldStrike
	FieldStrikeColor
	FieldStrikeStyle
	FieldLink
	FieldFill
	FieldStroke
	FieldFeatures
	FieldWordSpacing
	FieldYOffset
	FieldCharacterSpacing
	FieldAttachment
	FieldScript
	FieldBidiLevel
	FieldAlign
	FieldAlignLastLine
	FieldMarginLeft
	FieldMarginRight
	FieldIndent
	FieldMaxLines
	FieldLineSpacing
	FieldParagraphSpacing
	FieldHangingPunctuation
	FieldTruncationMode
	FieldJustificationFactor

	fieldAll = FieldColor | FieldBackgroundColor | FieldFont | FieldFontSize |
		FieldLineHeight | FieldUnderline | FieldUnderlineColor | FieldUnderlineStyle |
		FieldStrike | FieldStrikeColor | FieldStrikeStyle | FieldLink | FieldFill |
		FieldStroke | FieldFeatures | FieldWordSpacing | FieldYOffset |
		FieldCharacterSpacing | FieldAttachment | FieldScript | FieldBidiLevel |
		FieldAlign | FieldAlignLastLine | FieldMarginLeft | FieldMarginRight |
		FieldIndent | FieldMaxLines | FieldLineSpacing | FieldParagraphSpacing |
		FieldHangingPunctuation | FieldTruncationMode | FieldJustificationFactor
)

// Attributes is the closed attribute record from spec §3. Set tracks which
// fields this particular Attributes value actually specifies; a run
// produced by C2 (the style defaulter) has Set == fieldAll, while adapter
// overlay runs (font substitution, script itemization) typically set a
// single field.
type Attributes struct {
	Set Field

	Color           string
	BackgroundColor string
	Font            FontHandle
	FontSize        float64
	HasLineHeight   bool
	LineHeight      float64

	Underline      bool
	UnderlineColor string
	UnderlineStyle DecorationStyle
	Strike         bool
	StrikeColor    string
	StrikeStyle    DecorationStyle

	HasLink bool
	Link    string

	Fill   bool
	Stroke bool

	Features []string

	WordSpacing      float64
	YOffset          float64
	CharacterSpacing float64

	Attachment *Attachment

	HasScript bool
	Script    string

	HasBidiLevel bool
	BidiLevel    int

	Align         Align
	AlignLastLine Align

	// Paragraph-only fields (§3): only the first run of a paragraph's
	// values are consulted, by ParagraphStyleOf, to build a ParagraphStyle.
	MarginLeft          float64
	MarginRight         float64
	Indent              float64
	MaxLines            int
	LineSpacing         float64
	ParagraphSpacing    float64
	HangingPunctuation  bool
	TruncationMode      TruncationMode
	JustificationFactor float64
}

// Overlay merges src onto base: for every field set in src, src's value
// wins; fields unset in src retain base's value. Implements the flattener's
// conflict policy (§4.1): "later sources in the input order override
// earlier sources on shared attribute keys."
func Overlay(base, src Attributes) Attributes {
	out := base
	if src.Set&FieldColor != 0 {
		out.Color = src.Color
	}
	if src.Set&FieldBackgroundColor != 0 {
		out.BackgroundColor = src.BackgroundColor
	}
	if src.Set&FieldFont != 0 {
		out.Font = src.Font
	}
	if src.Set&FieldFontSize != 0 {
		out.FontSize = src.FontSize
	}
	if src.Set&FieldLineHeight != 0 {
		out.HasLineHeight = src.HasLineHeight
		out.LineHeight = src.LineHeight
	}
	if src.Set&FieldUnderline != 0 {
		out.Underline = src.Underline
	}
	if src.Set&FieldUnderlineColor != 0 {
		out.UnderlineColor = src.UnderlineColor
	}
	if src.Set&FieldUnderlineStyle != 0 {
		out.UnderlineStyle = src.UnderlineStyle
	}
	if src.Set&FieldStrike != 0 {
		out.Strike = src.Strike
	}
	if src.Set&FieldStrikeColor != 0 {
		out.StrikeColor = src.StrikeColor
	}
	if src.Set&FieldStrikeStyle != 0 {
		out.StrikeStyle = src.StrikeStyle
	}
	if src.Set&FieldLink != 0 {
		out.HasLink = src.HasLink
		out.Link = src.Link
	}
	if src.Set&FieldFill != 0 {
		out.Fill = src.Fill
	}
	if src.Set&FieldStroke != 0 {
		out.Stroke = src.Stroke
	}
	if src.Set&FieldFeatures != 0 {
		out.Features = src.Features
	}
	if src.Set&FieldWordSpacing != 0 {
		out.WordSpacing = src.WordSpacing
	}
	if src.Set&FieldYOffset != 0 {
		out.YOffset = src.YOffset
	}
	if src.Set&FieldCharacterSpacing != 0 {
		out.CharacterSpacing = src.CharacterSpacing
	}
	if src.Set&FieldAttachment != 0 {
		out.Attachment = src.Attachment
	}
	if src.Set&FieldScript != 0 {
		out.HasScript = src.HasScript
		out.Script = src.Script
	}
	if src.Set&FieldBidiLevel != 0 {
		out.HasBidiLevel = src.HasBidiLevel
		out.BidiLevel = src.BidiLevel
	}
	if src.Set&FieldAlign != 0 {
		out.Align = src.Align
	}
	if src.Set&FieldAlignLastLine != 0 {
		out.AlignLastLine = src.AlignLastLine
	}
	if src.Set&FieldMarginLeft != 0 {
		out.MarginLeft = src.MarginLeft
	}
	if src.Set&FieldMarginRight != 0 {
		out.MarginRight = src.MarginRight
	}
	if src.Set&FieldIndent != 0 {
		out.Indent = src.Indent
	}
	if src.Set&FieldMaxLines != 0 {
		out.MaxLines = src.MaxLines
	}
	if src.Set&FieldLineSpacing != 0 {
		out.LineSpacing = src.LineSpacing
	}
	if src.Set&FieldParagraphSpacing != 0 {
		out.ParagraphSpacing = src.ParagraphSpacing
	}
	if src.Set&FieldHangingPunctuation != 0 {
		out.HangingPunctuation = src.HangingPunctuation
	}
	if src.Set&FieldTruncationMode != 0 {
		out.TruncationMode = src.TruncationMode
	}
	if src.Set&FieldJustificationFactor != 0 {
		out.JustificationFactor = src.JustificationFactor
	}
	out.Set = base.Set | src.Set
	return out
}

// Equal reports whether two Attributes describe the same style, used by
// the flattener to merge adjacent runs (§4.1).
func (a Attributes) Equal(b Attributes) bool {
	if a.Set != b.Set {
		return false
	}
	return a.Color == b.Color &&
		a.BackgroundColor == b.BackgroundColor &&
		a.Font == b.Font &&
		a.FontSize == b.FontSize &&
		a.HasLineHeight == b.HasLineHeight && a.LineHeight == b.LineHeight &&
		a.Underline == b.Underline && a.UnderlineColor == b.UnderlineColor && a.UnderlineStyle == b.UnderlineStyle &&
		a.Strike == b.Strike && a.StrikeColor == b.StrikeColor && a.StrikeStyle == b.StrikeStyle &&
		a.HasLink == b.HasLink && a.Link == b.Link &&
		a.Fill == b.Fill && a.Stroke == b.Stroke &&
		equalStrings(a.Features, b.Features) &&
		a.WordSpacing == b.WordSpacing && a.YOffset == b.YOffset && a.CharacterSpacing == b.CharacterSpacing &&
		a.Attachment == b.Attachment &&
		a.HasScript == b.HasScript && a.Script == b.Script &&
		a.HasBidiLevel == b.HasBidiLevel && a.BidiLevel == b.BidiLevel &&
		a.Align == b.Align && a.AlignLastLine == b.AlignLastLine &&
		a.MarginLeft == b.MarginLeft && a.MarginRight == b.MarginRight && a.Indent == b.Indent &&
		a.MaxLines == b.MaxLines && a.LineSpacing == b.LineSpacing && a.ParagraphSpacing == b.ParagraphSpacing &&
		a.HangingPunctuation == b.HangingPunctuation && a.TruncationMode == b.TruncationMode &&
		a.JustificationFactor == b.JustificationFactor
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
