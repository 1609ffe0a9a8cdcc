package models

import (
	"fmt"
	"io"
	"mime/multipart"
	"slices"
	"time"

	"github.com/google/uuid"
)

const EvidenceImageFolder = "evidences"

// EvidenceImageExtensions lists the accepted image extensions, lower cased.
// Every entry fits the evidences.image_extension column.
var EvidenceImageExtensions = []string{
	".bmp", ".gif", ".heic", ".heif", ".jpeg", ".jpg", ".png", ".tif", ".tiff", ".webp",
}

func IsEvidenceImageExtension(extension string) bool {
	return slices.Contains(EvidenceImageExtensions, extension)
}

type Evidence struct {
	Id             uuid.UUID
	Name           string
	Description    string
	ImageId        uuid.UUID
	ImageExtension string
	CaseId         uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (e Evidence) ImageKey() string {
	return EvidenceImageKey(e.ImageId, e.ImageExtension)
}

func EvidenceImageKey(imageId uuid.UUID, extension string) string {
	return fmt.Sprintf("%s/%s%s", EvidenceImageFolder, imageId, extension)
}

type CreateEvidenceInput struct {
	Name        string                `json:"name" validate:"required,notblank,max=256"`
	Description string                `json:"description" validate:"required,notblank"`
	Image       *multipart.FileHeader `json:"image" validate:"required"`
	CaseId      uuid.UUID
	OfficerId   uuid.UUID
}

type CreateEvidenceAttributes struct {
	Id             uuid.UUID
	Name           string
	Description    string
	ImageId        uuid.UUID
	ImageExtension string
	CaseId         uuid.UUID
	CreatedAt      time.Time
}

type Blob struct {
	FileName   string
	ReadCloser io.ReadCloser
}

type EvidenceImage struct {
	Evidence    Evidence
	ContentType string
	Blob        Blob
}
