package links

import "regexp"

// Extractor scans free text for URL and mention substrings using a
// fixed ordered set of pattern categories. Matches are reported in
// category order; a substring matching several categories is reported
// once per category.
type Extractor struct {
	patterns []*regexp.Regexp
}

var patternSources = []string{
	// bare http/https URLs
	`(?i)https?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\\(),]|%[0-9a-fA-F]{2})+`,
	// protocol-less www domains
	`(?i)www\.[a-zA-Z0-9-]+(?:\.[a-zA-Z0-9-]+)*\.[a-zA-Z]{2,}`,
	// telegram short links
	`(?i)t\.me/[a-zA-Z0-9_]+`,
	`(?i)telegram\.me/[a-zA-Z0-9_]+`,
	// instagram links
	`(?i)instagram\.com/[a-zA-Z0-9_]+`,
	// @handle mentions
	`(?i)@[a-zA-Z0-9_]+`,
	// platform links with protocol
	`(?i)https?://(?:www\.)?(?:t\.me|telegram\.me)/[a-zA-Z0-9_]+`,
	`(?i)https?://(?:www\.)?instagram\.com/[a-zA-Z0-9_]+`,
}

func NewExtractor() *Extractor {
	patterns := make([]*regexp.Regexp, 0, len(patternSources))
	for _, source := range patternSources {
		patterns = append(patterns, regexp.MustCompile(source))
	}
	return &Extractor{patterns: patterns}
}

// Extract returns every matched substring from every category in
// category order. Duplicates across categories are kept.
func (e *Extractor) Extract(text string) []string {
	if text == "" {
		return nil
	}

	var found []string
	for _, pattern := range e.patterns {
		found = append(found, pattern.FindAllString(text, -1)...)
	}
	return found
}
