package termtext

import (
	"strings"
	"testing"
)

func TestLink(t *testing.T) {
	link := Link("https://example.com/docs", "文档 docs")
	if !strings.Contains(link, "https://example.com/docs") {
		t.Errorf("Expected url in link, got %q", link)
	}
	if got := StripANSI(link); got != "文档 docs" {
		t.Errorf("StripANSI(Link) = %q, want %q", got, "文档 docs")
	}
	if got := VisibleWidth(link); got != 9 {
		t.Errorf("VisibleWidth(Link) = %d, want 9", got)
	}
}

func TestLink_EmptyURL(t *testing.T) {
	if got := Link("", "text"); got != "text" {
		t.Errorf("Link with empty url = %q, want %q", got, "text")
	}
}
