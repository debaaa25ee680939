package markup

import (
	"errors"
	"regexp"
	"strings"
)

var ErrPatternNotFound = errors.New("pattern not found")

// The name ends where the enclosing text node or attribute value ends.
var locationNameRe = regexp.MustCompile(`Weather\s+forecast\s+for\s+([^<>"\r\n]+)`)

// LocationName returns the place name from the "Weather forecast for <name>"
// text embedded in a meteogram.
func LocationName(meteogram string) (string, error) {
	match := locationNameRe.FindStringSubmatch(meteogram)
	if match == nil {
		return "", ErrPatternNotFound
	}

	name := strings.TrimSpace(match[1])
	if name == "" {
		return "", ErrPatternNotFound
	}

	return name, nil
}
