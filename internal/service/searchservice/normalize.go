package searchservice

import (
	"net/url"
	"regexp"
	"strings"
)

// Hostname/path segments that commonly pollute product URLs and would
// otherwise match the model-code pattern.
var noiseTokens = []string{"HTTPS", "WWW", "COM", "NAVER", "BRAND", "PRODUCTS", "VIEW", "SHOP"}

// letters-then-digits or digits-then-letters, then any alphanumerics.
var modelCodeRe = regexp.MustCompile(`([A-Z]+[0-9]+|[0-9]+[A-Z]+)[A-Z0-9]*`)

// ModelCode extracts a candidate product model code from a URL. Total: any
// input yields a (possibly empty) string.
func ModelCode(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	path := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		path = u.Path
	}

	path = strings.ToUpper(path)
	for _, w := range noiseTokens {
		path = strings.ReplaceAll(path, w, "")
	}

	return modelCodeRe.FindString(path)
}
