package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps header parsing to guard against oversized
// Accept-Language values.
const maxAcceptLanguageLength = 4096

type languageTag struct {
	tag     string
	quality float64
}

// ParseAcceptLanguage parses an Accept-Language header and returns the most
// applicable entry from available. Quality values (q=0.9) are honored; base
// languages match regional variants ("en" matches "en-US" and vice versa).
// If nothing matches, the first available language is returned.
func ParseAcceptLanguage(header string, available []Language) Language {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}

	tags := parseLanguageTags(header)

	var bestMatch Language
	var bestQuality float64 = -1
	var bestIsExact bool

	for _, avail := range available {
		availNorm := normalizeLanguageTag(string(avail))

		for _, tag := range tags {
			if tag.tag == availNorm {
				if tag.quality > bestQuality || (tag.quality == bestQuality && !bestIsExact) {
					bestMatch = avail
					bestQuality = tag.quality
					bestIsExact = true
				}
				break
			}

			if matchesLanguage(tag.tag, availNorm) {
				if !bestIsExact || tag.quality > bestQuality {
					bestMatch = avail
					bestQuality = tag.quality
					bestIsExact = false
				}
				break
			}
		}
	}

	if bestMatch != "" {
		return bestMatch
	}
	return available[0]
}

func parseLanguageTags(header string) []languageTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []languageTag

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart, qPart, hasQuality := strings.Cut(part, ";")
		langPart = strings.TrimSpace(langPart)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if langPart != "" && langPart != "*" {
			tags = append(tags, languageTag{
				tag:     normalizeLanguageTag(langPart),
				quality: quality,
			})
		}
	}

	slices.SortFunc(tags, func(a, b languageTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return tags
}

func normalizeLanguageTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// matchesLanguage reports whether a requested tag matches an available one,
// allowing base-language matches ("en" vs "en-us").
func matchesLanguage(requested, available string) bool {
	if requested == available {
		return true
	}

	reqBase, _, _ := strings.Cut(requested, "-")
	availBase, _, _ := strings.Cut(available, "-")
	return reqBase != "" && reqBase == availBase
}
