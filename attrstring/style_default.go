package attrstring

// defaultAttributes returns the attribute set every run falls back to when a
// caller omits a field (§4.2). Black fill text at 12pt, solid decorations,
// left-aligned.
//
// Adapted from: skia/paragraph/text_style.go TextStyle's constructor defaults.
func defaultAttributes() Attributes {
	return Attributes{
		Set:            fieldAll,
		Color:          "black",
		FontSize:       12,
		Fill:           true,
		Align:               AlignLeft,
		AlignLastLine:       AlignLeft,
		UnderlineStyle:      DecorationSolid,
		StrikeStyle:         DecorationSolid,
		JustificationFactor: 1.0,
	}
}

// ApplyDefaults implements C2: it overlays every run's attributes onto
// defaultAttributes so the result has every field populated, then resolves
// the two fields whose default depends on another resolved field rather
// than on a fixed constant (§4.2: underlineColor and strikeColor fall back
// to the run's resolved color before falling back to "black").
func ApplyDefaults(as AttributedString) AttributedString {
	out := AttributedString{String: as.String, Runs: make([]Run, len(as.Runs))}
	for i, r := range as.Runs {
		merged := Overlay(defaultAttributes(), r.Attributes)
		merged.Set = fieldAll
		if merged.UnderlineColor == "" {
			merged.UnderlineColor = merged.Color
		}
		if merged.StrikeColor == "" {
			merged.StrikeColor = merged.Color
		}
		out.Runs[i] = Run{Start: r.Start, End: r.End, Attributes: merged}
	}
	return out
}

// ParagraphStyleOf projects the paragraph-only fields (§3) out of a
// paragraph's attributes. Per convention only the first run's values are
// consulted; callers pass as.AttributesAt(0) for a paragraph slice.
func ParagraphStyleOf(a Attributes) ParagraphStyle {
	return ParagraphStyle{
		MarginLeft:          a.MarginLeft,
		MarginRight:         a.MarginRight,
		Indent:              a.Indent,
		MaxLines:            a.MaxLines,
		LineSpacing:         a.LineSpacing,
		ParagraphSpacing:    a.ParagraphSpacing,
		HangingPunctuation:  a.HangingPunctuation,
		TruncationMode:      a.TruncationMode,
		JustificationFactor: a.JustificationFactor,
		Align:               a.Align,
		AlignLastLine:       a.AlignLastLine,
	}
}
