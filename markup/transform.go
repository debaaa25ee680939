// Package markup rewrites meteogram SVGs served by yr.no.
//
// Every function here works on the raw markup with fixed patterns that are
// coupled to yr.no's current output. When the upstream markup drifts only the
// patterns in this package need to change. A pattern that no longer matches
// leaves the document untouched.
package markup

import (
	"regexp"
	"strconv"
	"strings"
)

// Transform rewrites a meteogram and returns the result.
type Transform func(meteogram string) string

// symbolColor is the label color of the dark variant.
const symbolColor = "#a2a5b3"

var (
	backgroundStyleRe = regexp.MustCompile(`style="background-color:#[0-9A-Fa-f]+"`)
	backgroundRectRe  = regexp.MustCompile(
		`<rect\s+x="0"\s+y="0"\s+width="782"\s+height="391"\s+fill="#[0-9A-Fa-f]+"\s*/>`)

	darkSymbolRes = []*regexp.Regexp{
		regexp.MustCompile(`(cy="18"\s+r="1\.25"\s+stroke=")currentColor` +
			`("\s+stroke-width="1\.5"/><path stroke=")currentColor` +
			`("\s+stroke-width="1\.5"\s+d="M12)`),
		regexp.MustCompile(`(viewBox="0\s+0\s+24\s+24"><path\s+fill=")currentColor` +
			`("\s+d="M2\.04 12l-\.747-\.06\.748\.06zm19\.92)`),
		regexp.MustCompile(`(<path\s+stroke=")currentColor` +
			`("\s+stroke-width="1\.5"\s+d="M18 12H2m7\.268-7A2)`),
	}

	rootSizeRe = regexp.MustCompile(
		`(<svg\s+xmlns:xlink="http://www\.w3\.org/1999/xlink"\s+width="782"\s+height=)"391"`)
)

// MakeTransparent removes the background color of a meteogram.
func MakeTransparent(meteogram string) string {
	meteogram = backgroundStyleRe.ReplaceAllString(meteogram, "")
	meteogram = backgroundRectRe.ReplaceAllString(meteogram, "")

	return meteogram
}

// UnhideDarkDetails replaces the currentColor placeholders of the dark
// variant with explicit colors. Some renderers (Safari) resolve them to black
// on the black background.
func UnhideDarkDetails(meteogram string) string {
	// Symbols first, they get the label color instead of white.
	for _, re := range darkSymbolRes {
		meteogram = re.ReplaceAllStringFunc(meteogram, func(match string) string {
			return strings.ReplaceAll(match, "currentColor", symbolColor)
		})
	}

	return strings.ReplaceAll(meteogram, "currentColor", "#FFFFFF")
}

// Crop limits the view of a meteogram to the chart and moves the "Served by"
// text and logos below it.
func Crop(meteogram string) string {
	const height = "300"

	meteogram = rootSizeRe.ReplaceAllString(meteogram,
		`${1}"`+height+`" viewBox="0 85 782 `+height+`"`)

	baseY := 363.0
	meteogram = strings.ReplaceAll(meteogram,
		"translate(612, 22.25)", "translate(612, "+formatCoord(baseY)+")")
	meteogram = strings.ReplaceAll(meteogram,
		`y="24.28"`, `y="`+formatCoord(baseY+1.79)+`"`)
	meteogram = strings.ReplaceAll(meteogram,
		`y="20"`, `y="`+formatCoord(baseY-2.5)+`"`)

	return meteogram
}

// formatCoord prints the shortest decimal that round-trips, keeping at least
// one fractional digit: 363 -> "363.0", 364.79 -> "364.79".
func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
