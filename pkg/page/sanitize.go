package page

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	introPolicyOnce sync.Once
	introPolicy     *bluemonday.Policy
)

func sanitizeIntro(policy *bluemonday.Policy, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if policy == nil {
		policy = introSanitizer()
	}
	return strings.TrimSpace(policy.Sanitize(trimmed))
}

// introSanitizer allows basic text formatting and links; no scripts, styles
// or form controls may sneak into the section through the intro.
func introSanitizer() *bluemonday.Policy {
	introPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("p", "br", "strong", "em", "b", "i", "span", "ul", "ol", "li")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(true)
		policy.AllowAttrs("class").Globally()
		introPolicy = policy
	})
	return introPolicy
}
