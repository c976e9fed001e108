// Package docs holds the built-in help pages served by the topic command.
// Each page is a markdown file embedded in the binary; the page name is the
// file name without extension.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var pages embed.FS

// Get returns the named pages concatenated in order, separated by blank
// lines so each renders as its own section. The name "*" expands in place to
// every topic; "readme" is the index page and only appears when asked for by
// name.
func Get(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range expand(names) {
		content, err := pages.ReadFile(name + ".md")
		if err != nil {
			return "", fmt.Errorf("topic %q not found: %w", name, err)
		}
		b.Write(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Topics lists the available topic names in lexical order, without the
// readme index page.
func Topics() []string {
	// the pattern is a valid constant, Glob cannot fail on it.
	matches, _ := fs.Glob(pages, "*.md")

	var names []string
	for _, match := range matches {
		name := strings.TrimSuffix(match, ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func expand(names []string) []string {
	expanded := make([]string, 0, len(names))
	for _, name := range names {
		if name == "*" {
			expanded = append(expanded, Topics()...)
			continue
		}
		expanded = append(expanded, name)
	}
	return expanded
}
