package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"mixwise/internal/util"
)

const defaultInstructions = "1. Combine ingredients in shaker with ice. 2. Shake well for 15 seconds. 3. Strain into chilled glass. 4. Garnish and serve."

var reNumberedStart = regexp.MustCompile(`^\d+\.`)

// CleanInstructions normalizes free-form instruction text: scraped
// markup is stripped, whitespace collapsed, and unnumbered text is
// split on sentence-ending periods and renumbered. Missing text gets
// the generic 4-step instructions.
func CleanInstructions(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return defaultInstructions
	}

	text := util.CollapseSpaces(stripMarkup(raw))
	if text == "" {
		return defaultInstructions
	}
	if reNumberedStart.MatchString(text) {
		return text
	}

	steps := make([]string, 0, 4)
	for _, sentence := range strings.Split(text, ".") {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		steps = append(steps, fmt.Sprintf("%d. %s.", len(steps)+1, sentence))
	}
	return strings.Join(steps, " ")
}

func stripMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return doc.Text()
}
