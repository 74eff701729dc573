package domain

import "time"

// Attachment is validated file metadata. Identity is assigned at
// registration and the record is immutable afterwards; the bytes behind
// URI are the byte-storage collaborator's problem, never the core's.
type Attachment struct {
	ID         string
	Name       string
	MimeType   string
	SizeBytes  int64
	URI        string
	UploadedBy string
	UploadedAt time.Time
}
