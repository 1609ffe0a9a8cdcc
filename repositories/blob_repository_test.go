package repositories

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/police-department/evidence-manager/models"
)

func TestBlobRepository_FileBucket(t *testing.T) {
	ctx := context.Background()
	bucketUrl := "file://" + t.TempDir()
	repo := NewBlobRepository()
	fileName := "evidences/3f1c9a52-1c55-4d0a-8a55-8c3e3a1a9b10.png"

	writer, err := repo.OpenStream(ctx, bucketUrl, fileName)
	require.NoError(t, err)
	_, err = io.Copy(writer, strings.NewReader("image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	blob, err := repo.GetBlob(ctx, bucketUrl, fileName)
	require.NoError(t, err)
	content, err := io.ReadAll(blob.ReadCloser)
	require.NoError(t, err)
	require.NoError(t, blob.ReadCloser.Close())
	assert.Equal(t, "image bytes", string(content))
	assert.Equal(t, fileName, blob.FileName)

	require.NoError(t, repo.DeleteFile(ctx, bucketUrl, fileName))
	_, err = repo.GetBlob(ctx, bucketUrl, fileName)
	assert.ErrorIs(t, err, models.NotFoundError)

	// deleting twice is fine
	assert.NoError(t, repo.DeleteFile(ctx, bucketUrl, fileName))
}
