package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFileKindFromExt(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"waiver.pdf", FileKindPDF},
		{"Waiver.PDF", FileKindPDF},
		{"photo.jpeg", FileKindImage},
		{"scan.webp", FileKindImage},
		{"form.docx", FileKindDoc},
		{"archive.zip", FileKindUnknown},
		{"noextension", FileKindUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectFileKindFromExt(tc.filename), "file %q", tc.filename)
	}
}

func TestIsAllowedDocumentKind(t *testing.T) {
	assert.True(t, IsAllowedDocumentKind(FileKindPDF))
	assert.True(t, IsAllowedDocumentKind(FileKindImage))
	assert.True(t, IsAllowedDocumentKind(FileKindDoc))
	assert.False(t, IsAllowedDocumentKind(FileKindUnknown))
	assert.False(t, IsAllowedDocumentKind("exe"))
}

func TestIsValidModerationStatus(t *testing.T) {
	assert.True(t, IsValidModerationStatus(ModerationPending))
	assert.True(t, IsValidModerationStatus(ModerationApproved))
	assert.True(t, IsValidModerationStatus(ModerationRejected))
	assert.False(t, IsValidModerationStatus("archived"))
	assert.False(t, IsValidModerationStatus(""))
}
