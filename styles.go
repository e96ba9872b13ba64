package displaynames

import "strings"

// width classifies a source key after marker parsing.
type width int

const (
	widthLong width = iota
	widthShort
	widthNarrow
	widthUnsupportedAlt
)

const altMarker = "-alt-"

// styleKey is the tagged form of an annotated source key: the bare base
// plus its width classification.
type styleKey struct {
	base  string
	width width
}

// parseStyleKey splits a source key on its embedded alternate marker.
// "-alt-short" and "-alt-narrow" select the matching width; a key without
// a marker is the long form. Any other "-alt-" annotation is a long-form
// alternate the output schema has no slot for, so it is tagged
// unsupported and the splitters drop it.
func parseStyleKey(key string) styleKey {
	idx := strings.Index(key, altMarker)
	if idx < 0 {
		return styleKey{base: key, width: widthLong}
	}

	variant := key[idx+len(altMarker):]
	switch {
	case strings.HasPrefix(variant, "narrow"):
		return styleKey{base: key[:idx], width: widthNarrow}
	case strings.HasPrefix(variant, "short"):
		return styleKey{base: key[:idx], width: widthShort}
	default:
		return styleKey{base: key[:idx], width: widthUnsupportedAlt}
	}
}

// SplitStyles buckets a flat annotated mapping into the three-width
// schema. Source keys are unique, so no de-duplication beyond plain map
// insertion is needed.
func SplitStyles(data map[string]string) WidthStyles {
	styles := newWidthStyles()
	for key, value := range data {
		switch parsed := parseStyleKey(key); parsed.width {
		case widthNarrow:
			styles.Narrow[parsed.base] = value
		case widthShort:
			styles.Short[parsed.base] = value
		case widthLong:
			styles.Long[parsed.base] = value
		}
	}
	return styles
}
