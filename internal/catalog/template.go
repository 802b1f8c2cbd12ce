package catalog

import (
	"fmt"
	"regexp"
	"strconv"
)

// templateToken matches a $n placeholder. Only plain decimal references are
// supported; there is no ${n} or $name form in catalog data.
var templateToken = regexp.MustCompile(`\$([0-9]+)`)

// ExpandTemplate replaces every $n token in tmpl with values[n-1].
// References are 1-based: $1 is the first value. A reference to $0 or to an
// index beyond len(values) returns ErrTemplateIndex; a non-participating
// (empty) value substitutes as the empty string.
func ExpandTemplate(tmpl string, values []string) (string, error) {
	var expandErr error
	out := templateToken.ReplaceAllStringFunc(tmpl, func(token string) string {
		n, err := strconv.Atoi(token[1:])
		if err != nil || n < 1 || n > len(values) {
			if expandErr == nil {
				expandErr = fmt.Errorf("%w: %s in %q", ErrTemplateIndex, token, tmpl)
			}
			return token
		}
		return values[n-1]
	})
	if expandErr != nil {
		return "", expandErr
	}
	return out, nil
}

// maxTemplateIndex returns the highest $n reference in tmpl, or 0 when the
// template has none. Used for eager bounds validation at catalog load.
func maxTemplateIndex(tmpl string) int {
	max := 0
	for _, m := range templateToken.FindAllStringSubmatch(tmpl, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}
