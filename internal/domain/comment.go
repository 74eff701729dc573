package domain

import (
	"fmt"
	"strings"
	"time"
)

// Comment is one entry in a section's discussion thread. The author
// fields are a snapshot taken at posting time; later role changes never
// rewrite history. Replies nest exactly one level: a reply's Replies
// slice is always empty, enforced by the annotation engine.
type Comment struct {
	ID          string
	AuthorID    string
	AuthorName  string
	AuthorRole  Role
	Content     string
	Timestamp   time.Time
	SectionKey  string
	Attachments []Attachment
	Replies     []Comment
}

// SectionKey builds the composite partition key that addresses a
// project section's comment thread.
func SectionKey(projectID string, section SectionKind) string {
	return fmt.Sprintf("%s:%s", projectID, section)
}

// SplitSectionKey breaks a section key back into its parts. The second
// return is false when the key is malformed or names an unknown section.
func SplitSectionKey(key string) (projectID string, section SectionKind, ok bool) {
	idx := strings.LastIndex(key, ":")
	if idx <= 0 || idx == len(key)-1 {
		return "", "", false
	}
	section = SectionKind(key[idx+1:])
	if !ValidSections[section] {
		return "", "", false
	}
	return key[:idx], section, true
}
