package dsfr

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/html"

	"github.com/yacobolo/dsfrkit/internal/config"
)

// maxSuggestionDistance bounds the edit distance of a suggested class.
const maxSuggestionDistance = 2

// UnknownClass is a fr- class used in markup that the known set lacks.
type UnknownClass struct {
	Class      string `json:"class"`
	Line       int    `json:"line"`
	Element    string `json:"element"`
	Suggestion string `json:"suggestion,omitempty"` // closest known class of the same block
}

// AuditClasses reports every fr- class of the markup in r that is not in
// known. Icon classes live in a separate stylesheet and are not checked.
func AuditClasses(r io.Reader, known ClassSet) ([]UnknownClass, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading markup: %w", err)
	}

	var (
		unknown []UnknownClass
		element string
		line    = 1
		seen    int
	)

	input := parse.NewInputBytes(content)
	lexer := html.NewLexer(input)
	for {
		tt, _ := lexer.Next()
		if tt == html.ErrorToken {
			break
		}

		switch tt {
		case html.StartTagToken:
			element = string(lexer.Text())
		case html.AttributeToken:
			if string(lexer.AttrKey()) != "class" {
				continue
			}
			offset := input.Offset()
			line += bytes.Count(content[seen:offset], []byte("\n"))
			seen = offset

			for _, class := range strings.Fields(unquote(lexer.AttrVal())) {
				if !strings.HasPrefix(class, "fr-") || isIconClass(class) || known.Has(class) {
					continue
				}
				unknown = append(unknown, UnknownClass{
					Class:      class,
					Line:       line,
					Element:    element,
					Suggestion: suggestClass(class, known),
				})
			}
		}
	}

	if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, &config.ParseError{Path: "markup", Err: err}
	}
	return unknown, nil
}

func unquote(val []byte) string {
	s := string(val)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func isIconClass(class string) bool {
	return strings.HasPrefix(class, "fr-icon-") || strings.HasPrefix(class, "fr-fi-")
}

// block returns the BEM block of a class: "fr-btn--lg" gives "fr-btn".
func block(class string) string {
	if i := strings.Index(class, "__"); i >= 0 {
		class = class[:i]
	}
	if i := strings.Index(class, "--"); i >= 0 {
		class = class[:i]
	}
	return class
}

// suggestClass returns the known class closest to class, looking first in
// the same block, or "" when nothing is close enough.
func suggestClass(class string, known ClassSet) string {
	sorted := known.Sorted()
	best, bestDist := "", maxSuggestionDistance+1
	b := block(class)
	for _, candidate := range sorted {
		if block(candidate) != b && !strings.HasPrefix(candidate, b) {
			continue
		}
		if d := editDistance(class, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	if best == "" {
		for _, candidate := range sorted {
			if d := editDistance(class, candidate); d < bestDist {
				best, bestDist = candidate, d
			}
		}
	}
	return best
}

// editDistance is the Levenshtein distance over bytes; class names are ASCII.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
