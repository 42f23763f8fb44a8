// Package cretrans is the orchestration layer on top of the directive
// model: it wires the ploverlang and rtflang dialect packages together
// into the four external translation entry points, an RTF dictionary
// file parser, an in-memory Dictionary container, and the ambient
// configuration/logging glue around them.
package cretrans

import (
	"github.com/stenocode/cretrans/directive"
	"github.com/stenocode/cretrans/ploverlang"
	"github.com/stenocode/cretrans/rtflang"
)

// PloverToRTF translates a single Plover steno-dictionary translation
// string into its RTF/CRE equivalent.
func PloverToRTF(translation string) string {
	return rtflang.Format(ploverlang.Parse(translation))
}

// RTFToPlover translates a single RTF/CRE translation body into its
// Plover equivalent.
func RTFToPlover(translation string) string {
	return ploverlang.Format(rtflang.Parse(translation))
}

// ParsePlover exposes the Plover parser's directive sequence directly,
// mainly for tests and diagnostics.
func ParsePlover(translation string) []directive.Directive {
	return ploverlang.Parse(translation)
}

// ParseRTFTranslation exposes the RTF parser's directive sequence
// directly, mainly for tests and diagnostics.
func ParseRTFTranslation(translation string) []directive.Directive {
	return rtflang.Parse(translation)
}
