package resumes

import (
	"fmt"
	"path"
	"strings"
)

// Storage layout is a compatibility contract with already-stored data:
//
//	resumes/{userId}/{resumeId}.pdf
//	suggestions/{userId}/{resumeId}/{suggestionId}

func resumeKey(userID, resumeID string) string {
	return fmt.Sprintf("resumes/%s/%s.pdf", userID, resumeID)
}

func resumePrefix(userID string) string {
	return fmt.Sprintf("resumes/%s/", userID)
}

func suggestionKey(userID, resumeID, suggestionID string) string {
	return fmt.Sprintf("suggestions/%s/%s/%s", userID, resumeID, suggestionID)
}

func suggestionsPrefix(userID, resumeID string) string {
	return fmt.Sprintf("suggestions/%s/%s/", userID, resumeID)
}

// resumeIDFromKey derives the resume id from a stored object key. Returns
// "" for keys that do not look like resume documents.
func resumeIDFromKey(key string) string {
	base := path.Base(key)
	ext := path.Ext(base)
	if ext == "" {
		return ""
	}
	return strings.TrimSuffix(base, ext)
}
