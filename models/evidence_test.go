package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEvidenceImageExtension(t *testing.T) {
	assert.True(t, IsEvidenceImageExtension(".jpg"))
	assert.True(t, IsEvidenceImageExtension(".webp"))
	assert.False(t, IsEvidenceImageExtension(".JPG"), "callers lower case the extension")
	assert.False(t, IsEvidenceImageExtension(""))
	assert.False(t, IsEvidenceImageExtension(".averyveryverylongext"))

	// evidences.image_extension is a VARCHAR(16)
	for _, extension := range EvidenceImageExtensions {
		assert.LessOrEqual(t, len(extension), 16, extension)
	}
}
