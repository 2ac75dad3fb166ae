// Package fixtures provides reusable test data generators so that tests
// needing length-controlled article content do not duplicate it inline.
package fixtures

import (
	"fmt"
	"strings"
)

// sentences is a bank of neutral news-style sentences cycled by the
// generators below.
var sentences = []string{
	"City officials announced the new transit plan at a press briefing on Tuesday.",
	"Analysts said the quarterly results exceeded expectations across the region.",
	"The research team published its findings after a two year study.",
	"Residents gathered downtown to hear the mayor outline the budget proposal.",
	"The company confirmed it will expand operations to three new markets next year.",
	"Weather services issued an advisory for the coastal areas through the weekend.",
	"Negotiators returned to the table after talks stalled earlier this month.",
	"The museum unveiled a restored collection that had been in storage for decades.",
}

// ArticleText generates plain article text of approximately target
// characters. The result is always at least target characters long unless
// target is smaller than the first sentence.
func ArticleText(target int) string {
	var b strings.Builder
	for i := 0; b.Len() < target; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sentences[i%len(sentences)])
	}
	return b.String()
}

// ArticleHTML generates a complete HTML document with the given number of
// paragraphs wrapped in an article element, suitable for readability
// extraction tests.
func ArticleHTML(title string, paragraphs int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<!DOCTYPE html>\n<html>\n<head><title>%s</title></head>\n<body>\n<article>\n<h1>%s</h1>\n", title, title)
	for i := 0; i < paragraphs; i++ {
		fmt.Fprintf(&b, "<p>%s</p>\n", sentences[i%len(sentences)])
	}
	b.WriteString("</article>\n</body>\n</html>")
	return b.String()
}
