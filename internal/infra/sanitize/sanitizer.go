// Package sanitize strips unsafe markup from user-submitted text.
package sanitize

import (
	"strings"

	"rewear/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

type htmlSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer returns a sanitizer with the strict policy: all tags
// stripped, text content preserved.
func NewHTMLSanitizer() service.Sanitizer {
	return &htmlSanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *htmlSanitizer) Sanitize(input string) string {
	return strings.TrimSpace(s.policy.Sanitize(input))
}
