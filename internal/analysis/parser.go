package analysis

import (
	"regexp"
	"strings"
)

const (
	labelSummary  = "Summary"
	labelTags     = "Tags"
	labelDateTime = "DateTime"
	labelVenue    = "Venue"
	labelAuthor   = "Author"

	noneValue    = "none"
	unknownValue = "Unknown"
)

// listMarker matches an optional "1." / "2)" / "-" / "*" prefix some replies
// put before each label.
const listMarker = `(?:(?:\d+[.)]|[-*•])[ \t]+)?`

var labelPatterns = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp)
	for _, label := range []string{labelSummary, labelTags, labelDateTime, labelVenue, labelAuthor} {
		m[label] = regexp.MustCompile(`(?m)^[ \t]*` + listMarker + label + `:[ \t]*(.*?)[ \t\r]*$`)
	}
	return m
}()

// ParseResponse extracts the labeled fields from a completion reply. Summary
// and Tags are mandatory; everything else is optional.
func ParseResponse(text string) (Fields, error) {
	summary, ok := labelValue(text, labelSummary)
	if !ok {
		return Fields{}, ErrMalformedResponse
	}
	rawTags, ok := labelValue(text, labelTags)
	if !ok {
		return Fields{}, ErrMalformedResponse
	}

	dateTime, _ := labelValue(text, labelDateTime)
	venue, _ := labelValue(text, labelVenue)
	author, _ := labelValue(text, labelAuthor)

	return Fields{
		Summary:  summary,
		Tags:     ParseTags(rawTags),
		DateTime: absentIf(dateTime, noneValue),
		Venue:    absentIf(venue, noneValue),
		Author:   absentIf(author, noneValue, unknownValue),
	}, nil
}

// ParseTags splits a bracketed or bare comma list. It never returns an empty
// slice.
func ParseTags(raw string) []string {
	tags := make([]string, 0, MaxTags)
	for _, t := range strings.Split(raw, ",") {
		t = strings.Trim(t, "[] \t\"'")
		if t == "" {
			continue
		}
		tags = append(tags, t)
		if len(tags) == MaxTags {
			break
		}
	}
	if len(tags) == 0 {
		return []string{DefaultTag}
	}
	return tags
}

// labelValue returns the trimmed value of the first "Label: value" line.
func labelValue(text, label string) (string, bool) {
	m := labelPatterns[label].FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	v := strings.TrimSpace(m[1])
	return v, v != ""
}

func absentIf(v string, sentinels ...string) string {
	for _, s := range sentinels {
		if v == s {
			return ""
		}
	}
	return v
}
