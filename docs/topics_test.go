package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the topic names listed in readme.md, one per
// bullet of the form "* name: description".
func readmeTopics(t *testing.T) []string {
	t.Helper()

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topics = append(topics, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

func TestTopics(t *testing.T) {
	// The readme is the index: every topic it lists must load, and every
	// topic file must be listed, so the two cannot drift apart.
	listed := readmeTopics(t)

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := Get(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".md")
		if name == "readme" {
			continue
		}
		found := false
		for _, topic := range listed {
			if topic == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", name)
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, err := Get("no-such-topic"); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}

func TestGet_Star(t *testing.T) {
	all, err := Get("*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, topic := range Topics() {
		content, err := Get(topic)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("star expansion misses topic %q", topic)
		}
	}
	if readme, _ := Get("readme"); strings.Contains(all, readme) {
		t.Error("star expansion should not include the readme index")
	}
}

func TestTopicStructure(t *testing.T) {
	// Every page must open with a level-1 heading, so concatenated topics
	// render as separate sections.
	for _, topic := range append(Topics(), "readme") {
		t.Run(topic, func(t *testing.T) {
			content, err := Get(topic)
			if err != nil {
				t.Fatal(err)
			}

			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			first := root.FirstChild()
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("topic %q does not start with a heading, got %T", topic, first)
			}
			if heading.Level != 1 {
				t.Errorf("topic %q starts with a level %d heading, want level 1", topic, heading.Level)
			}
		})
	}
}
