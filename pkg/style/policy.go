package style

import (
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-contactform/pkg/contact"
)

// Token names read from theme manifests. Missing tokens keep the defaults.
const (
	TokenErrorColor        = "status-error-color"
	TokenErrorBackground   = "status-error-background"
	TokenSuccessColor      = "status-success-color"
	TokenSuccessBackground = "status-success-background"
	TokenInfoColor         = "status-info-color"
	TokenInfoBackground    = "status-info-background"
	TokenPadding           = "status-padding"
	TokenRadius            = "status-radius"
)

const (
	errorColor        = "#b00020"
	errorBackground   = "rgba(176,0,32,0.06)"
	successColor      = "#115e54"
	successBackground = "rgba(17,94,84,0.06)"
	padding           = "8px 10px"
	radius            = "6px"
)

// Policy is a static contact.StylePolicy.
type Policy struct {
	styles  map[contact.Severity]contact.Style
	cleared contact.Style
}

var _ contact.StylePolicy = (*Policy)(nil)

// Default returns the stock policy: red for errors, teal for success and info.
func Default() *Policy {
	return FromTokens(nil)
}

// FromTokens builds a policy from flat tokens, falling back to Default values.
func FromTokens(tokens map[string]string) *Policy {
	get := func(key, fallback string) string {
		if value := strings.TrimSpace(tokens[key]); value != "" {
			return value
		}
		return fallback
	}
	pad := get(TokenPadding, padding)
	rad := get(TokenRadius, radius)

	successFg := get(TokenSuccessColor, successColor)
	successBg := get(TokenSuccessBackground, successBackground)

	return &Policy{
		styles: map[contact.Severity]contact.Style{
			contact.SeverityError: {
				Color:        get(TokenErrorColor, errorColor),
				Background:   get(TokenErrorBackground, errorBackground),
				Padding:      pad,
				BorderRadius: rad,
			},
			contact.SeveritySuccess: {
				Color:        successFg,
				Background:   successBg,
				Padding:      pad,
				BorderRadius: rad,
			},
			contact.SeverityInfo: {
				Color:        get(TokenInfoColor, successFg),
				Background:   get(TokenInfoBackground, successBg),
				Padding:      pad,
				BorderRadius: rad,
			},
		},
		cleared: contact.Style{Background: "transparent"},
	}
}

// FromTheme builds a policy from a theme manifest, applying the variant's
// token overrides on top of the base tokens.
func FromTheme(manifest *theme.Manifest, variant string) *Policy {
	return FromTokens(Tokens(manifest, variant))
}

// Tokens merges base manifest tokens with the named variant's overrides.
func Tokens(manifest *theme.Manifest, variant string) map[string]string {
	if manifest == nil {
		return nil
	}
	out := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		out[key] = value
	}
	if v, ok := manifest.Variants[strings.TrimSpace(variant)]; ok {
		for key, value := range v.Tokens {
			out[key] = value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// StatusStyle implements contact.StylePolicy.
func (p *Policy) StatusStyle(severity contact.Severity) contact.Style {
	if style, ok := p.styles[severity]; ok {
		return style
	}
	return p.styles[contact.SeverityInfo]
}

// ClearedStyle implements contact.StylePolicy. Only the background is reset;
// the remaining properties keep whatever the last status applied.
func (p *Policy) ClearedStyle() contact.Style {
	return p.cleared
}
