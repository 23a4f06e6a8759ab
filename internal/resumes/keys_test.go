package resumes

import "testing"

func TestKeyLayout(t *testing.T) {
	if got := resumeKey("u1", "r1"); got != "resumes/u1/r1.pdf" {
		t.Fatalf("resumeKey = %q", got)
	}
	if got := resumePrefix("u1"); got != "resumes/u1/" {
		t.Fatalf("resumePrefix = %q", got)
	}
	if got := suggestionKey("u1", "r1", "s1"); got != "suggestions/u1/r1/s1" {
		t.Fatalf("suggestionKey = %q", got)
	}
	if got := suggestionsPrefix("u1", "r1"); got != "suggestions/u1/r1/" {
		t.Fatalf("suggestionsPrefix = %q", got)
	}
}

func TestResumeIDFromKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"resumes/u1/abc-123.pdf", "abc-123"},
		{"resumes/u1/nested/doc.pdf", "doc"},
		{"resumes/u1/noextension", ""},
		{"resumes/u1/", ""},
	}
	for _, tt := range tests {
		if got := resumeIDFromKey(tt.key); got != tt.want {
			t.Errorf("resumeIDFromKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
