package media

import (
	"regexp"
	"strings"
)

var absoluteURL = regexp.MustCompile(`(?i)^(?:https?:)?//`)

// Locator turns image references stored by the backend into fetchable URLs.
type Locator struct {
	Origin string
}

func NewLocator(origin string) Locator {
	return Locator{Origin: origin}
}

func (l Locator) Resolve(ref string) string {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return ""
	}

	if absoluteURL.MatchString(trimmed) || strings.HasPrefix(trimmed, "data:") || strings.HasPrefix(trimmed, "blob:") {
		return trimmed
	}

	if strings.HasPrefix(trimmed, "/") {
		return l.Origin + trimmed
	}

	return l.Origin + "/" + trimmed
}
