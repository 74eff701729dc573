// Package attachment validates and records file metadata. It never
// touches bytes: persisting content behind an accepted attachment's URI
// is the byte-storage collaborator's job, invoked by the host after
// registration succeeds.
package attachment

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"planboard/internal/domain"
)

// File is the inbound metadata for a file awaiting registration.
type File struct {
	Name      string
	MimeType  string
	SizeBytes int64
	URI       string
}

// Rejected names a file dropped from a batch and why. Rejection is
// per-file data, not an error: it never aborts the rest of the batch.
type Rejected struct {
	Name   string
	Reason string
}

const (
	ReasonExtension = "extension not allowed"
	ReasonSize      = "file exceeds size limit"
)

// Config holds the registry's recognized options. Both are overridable
// per registry instance, not globally fixed.
type Config struct {
	MaxFileSizeBytes  int64
	AllowedExtensions []string
}

// DefaultConfig returns the stock validation rules: 10 MiB per file and
// the standard document/image formats.
func DefaultConfig() Config {
	return Config{
		MaxFileSizeBytes:  10 << 20,
		AllowedExtensions: []string{"pdf", "doc", "docx", "png", "jpg", "jpeg", "xlsx", "pptx"},
	}
}

// Registry validates files against its config and assigns identity to
// the ones that pass.
type Registry struct {
	maxSize int64
	allowed map[string]bool
}

// NewRegistry builds a registry from cfg, falling back to defaults for
// unset fields. Extensions are matched case-insensitively and may be
// given with or without a leading dot.
func NewRegistry(cfg Config) *Registry {
	defaults := DefaultConfig()
	if cfg.MaxFileSizeBytes <= 0 {
		cfg.MaxFileSizeBytes = defaults.MaxFileSizeBytes
	}
	if len(cfg.AllowedExtensions) == 0 {
		cfg.AllowedExtensions = defaults.AllowedExtensions
	}
	allowed := make(map[string]bool, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}
	return &Registry{maxSize: cfg.MaxFileSizeBytes, allowed: allowed}
}

// Register validates a single file. On success it returns a fresh
// attachment record; on failure it returns the rejection reason and the
// file is never partially registered.
func (r *Registry) Register(f File, uploadedBy string) (domain.Attachment, *Rejected) {
	if !r.allowed[extensionOf(f.Name)] {
		return domain.Attachment{}, &Rejected{Name: f.Name, Reason: ReasonExtension}
	}
	if f.SizeBytes > r.maxSize {
		return domain.Attachment{}, &Rejected{Name: f.Name, Reason: ReasonSize}
	}
	return domain.Attachment{
		ID:         uuid.New().String(),
		Name:       f.Name,
		MimeType:   f.MimeType,
		SizeBytes:  f.SizeBytes,
		URI:        f.URI,
		UploadedBy: uploadedBy,
		UploadedAt: time.Now().UTC(),
	}, nil
}

// RegisterBatch validates each file independently and returns the
// accepted subset plus the rejects for caller reporting.
func (r *Registry) RegisterBatch(files []File, uploadedBy string) ([]domain.Attachment, []Rejected) {
	accepted := make([]domain.Attachment, 0, len(files))
	rejected := make([]Rejected, 0)
	for _, f := range files {
		att, reject := r.Register(f, uploadedBy)
		if reject != nil {
			rejected = append(rejected, *reject)
			continue
		}
		accepted = append(accepted, att)
	}
	return accepted, rejected
}

// AllowedExtensions returns the normalized allow-list, sorted.
func (r *Registry) AllowedExtensions() []string {
	exts := lo.Keys(r.allowed)
	sort.Strings(exts)
	return exts
}

// extensionOf derives the extension from the final dot of name,
// lowercased. A name without a dot has no extension.
func extensionOf(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}
