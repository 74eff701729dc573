package attachment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterBatch_Defaults(t *testing.T) {
	registry := NewRegistry(Config{})

	files := []File{
		{Name: "a.pdf", MimeType: "application/pdf", SizeBytes: 1 << 20, URI: "blob:a"},
		{Name: "b.exe", MimeType: "application/octet-stream", SizeBytes: 1 << 20, URI: "blob:b"},
		{Name: "c.png", MimeType: "image/png", SizeBytes: 20 << 20, URI: "blob:c"},
	}

	accepted, rejected := registry.RegisterBatch(files, "u1")

	require.Len(t, accepted, 1)
	assert.Equal(t, "a.pdf", accepted[0].Name)
	assert.NotEmpty(t, accepted[0].ID)
	assert.Equal(t, "u1", accepted[0].UploadedBy)
	assert.False(t, accepted[0].UploadedAt.IsZero())

	require.Len(t, rejected, 2)
	assert.Equal(t, Rejected{Name: "b.exe", Reason: ReasonExtension}, rejected[0])
	assert.Equal(t, Rejected{Name: "c.png", Reason: ReasonSize}, rejected[1])
}

func TestRegister_ExtensionRules(t *testing.T) {
	registry := NewRegistry(Config{})

	tests := []struct {
		name     string
		accepted bool
	}{
		{"report.PDF", true},
		{"photo.final.JPEG", true},
		{"noextension", false},
		{"trailing-dot.", false},
		{"script.sh", false},
	}

	for _, tc := range tests {
		_, reject := registry.Register(File{Name: tc.name, SizeBytes: 1}, "u1")
		if tc.accepted {
			assert.Nil(t, reject, "name=%s", tc.name)
		} else {
			require.NotNil(t, reject, "name=%s", tc.name)
			assert.Equal(t, ReasonExtension, reject.Reason)
		}
	}
}

func TestRegister_SizeCeilingBoundary(t *testing.T) {
	registry := NewRegistry(Config{})

	_, reject := registry.Register(File{Name: "exact.pdf", SizeBytes: 10 << 20}, "u1")
	assert.Nil(t, reject, "exactly at the ceiling is accepted")

	_, reject = registry.Register(File{Name: "over.pdf", SizeBytes: 10<<20 + 1}, "u1")
	require.NotNil(t, reject)
	assert.Equal(t, ReasonSize, reject.Reason)
}

func TestNewRegistry_Overrides(t *testing.T) {
	registry := NewRegistry(Config{
		MaxFileSizeBytes:  1024,
		AllowedExtensions: []string{".TXT", "csv"},
	})

	assert.Equal(t, []string{"csv", "txt"}, registry.AllowedExtensions())

	_, reject := registry.Register(File{Name: "notes.txt", SizeBytes: 1024}, "u1")
	assert.Nil(t, reject)

	_, reject = registry.Register(File{Name: "notes.txt", SizeBytes: 1025}, "u1")
	require.NotNil(t, reject)
	assert.Equal(t, ReasonSize, reject.Reason)

	_, reject = registry.Register(File{Name: "a.pdf", SizeBytes: 10}, "u1")
	require.NotNil(t, reject)
	assert.Equal(t, ReasonExtension, reject.Reason, "override replaces the default list")
}
