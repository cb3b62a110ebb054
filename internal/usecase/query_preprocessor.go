package usecase

import (
	"log"
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxQueryLength bounds the query sent to USDA
const maxQueryLength = 100

// QueryPreprocessor cleans typed food names before they are sent to USDA
type QueryPreprocessor struct {
	enableDebugLogging bool
}

var (
	// Characters that the USDA nginx proxy rejects with a 400
	specialCharsPattern = regexp.MustCompile(`[#%+@!^*()=\[\]{}<>|\\~` + "`" + `]`)

	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// NewQueryPreprocessor creates a new query preprocessor
func NewQueryPreprocessor(enableDebugLogging bool) *QueryPreprocessor {
	return &QueryPreprocessor{
		enableDebugLogging: enableDebugLogging,
	}
}

// PreprocessQuery makes a food name safe for the USDA search endpoint.
// Wording and case are preserved; only characters the API chokes on are
// replaced and whitespace is collapsed.
func (p *QueryPreprocessor) PreprocessQuery(foodName string) string {
	if foodName == "" {
		return ""
	}

	cleaned := strings.ReplaceAll(foodName, "&", " and ")
	cleaned = specialCharsPattern.ReplaceAllString(cleaned, " ")
	cleaned = multiSpacePattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	if len(cleaned) > maxQueryLength {
		cut := maxQueryLength
		for cut > 0 && !utf8.RuneStart(cleaned[cut]) {
			cut--
		}
		cleaned = cleaned[:cut]
		// Try to cut at word boundary
		if lastSpace := strings.LastIndex(cleaned, " "); lastSpace > maxQueryLength/2 {
			cleaned = cleaned[:lastSpace]
		}
	}

	if p.enableDebugLogging {
		log.Printf("[PREPROCESS] Input: %q -> Output: %q", foodName, cleaned)
	}

	return cleaned
}
