package fixtures

import (
	"strings"
	"testing"
)

func TestArticleText_MeetsTargetLength(t *testing.T) {
	for _, target := range []int{100, 500, 2000} {
		got := ArticleText(target)
		if len(got) < target {
			t.Errorf("ArticleText(%d) length = %d, want >= %d", target, len(got), target)
		}
		// No run-away growth: one extra sentence at most.
		if len(got) > target+200 {
			t.Errorf("ArticleText(%d) length = %d, far over target", target, len(got))
		}
	}
}

func TestArticleText_IsDeterministic(t *testing.T) {
	if ArticleText(300) != ArticleText(300) {
		t.Error("ArticleText should be deterministic for the same target")
	}
}

func TestArticleHTML_Structure(t *testing.T) {
	doc := ArticleHTML("Launch Coverage", 3)
	if !strings.Contains(doc, "<title>Launch Coverage</title>") {
		t.Error("missing title element")
	}
	if !strings.Contains(doc, "<article>") || !strings.Contains(doc, "</article>") {
		t.Error("missing article element")
	}
	if got := strings.Count(doc, "<p>"); got != 3 {
		t.Errorf("paragraph count = %d, want 3", got)
	}
}
