package version

import (
	"strings"
	"testing"
)

func withBuildInfo(t *testing.T, version, commit string) {
	t.Helper()
	oldVersion, oldCommit := Version, Commit
	Version, Commit = version, commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		want    string
	}{
		{"dev build", "dev", "none", "dev"},
		{"empty version", "", "none", "dev"},
		{"long commit", "1.2.0", "abc1234def5678", "1.2.0 (abc1234)"},
		{"short commit", "1.2.0", "abc", "1.2.0 (abc)"},
		{"empty commit", "1.2.0", "", "1.2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.version, tt.commit)
			if got := Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetails(t *testing.T) {
	withBuildInfo(t, "1.2.0", "abc1234def")

	details := Details()
	for _, want := range []string{"termnote 1.2.0 (abc1234)", "commit:   abc1234def", Platform(), GoVersion} {
		if !strings.Contains(details, want) {
			t.Errorf("Details() missing %q:\n%s", want, details)
		}
	}
}
