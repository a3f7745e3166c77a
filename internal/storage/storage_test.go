package storage

import (
	"context"
	"strings"
	"testing"

	"crossbox/gym-api/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTrainerPhotoKey(t *testing.T) {
	key, err := TrainerPhotoKey("t-1", "image/PNG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "trainers/t-1/"))
	assert.True(t, strings.HasSuffix(key, ".png"))

	other, err := TrainerPhotoKey("t-1", "image/png")
	require.NoError(t, err)
	assert.NotEqual(t, key, other)

	_, err = TrainerPhotoKey("t-1", "application/pdf")
	assert.Error(t, err)
}

func TestS3Storage_PresignedURLs(t *testing.T) {
	cfg := config.S3Config{
		Endpoint:        "http://localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		BucketName:      "trainer-photos",
	}

	store, err := NewS3Storage(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	// Presigning is local signing only; no request reaches the endpoint.
	putURL, err := store.GeneratePresignedUploadURL(context.Background(), "trainers/t-1/a.jpg", "image/jpeg", 0)
	require.NoError(t, err)
	assert.Contains(t, putURL, "localhost:9000/trainer-photos/trainers/t-1/a.jpg")
	assert.Contains(t, putURL, "X-Amz-Expires=900")

	getURL, err := store.GeneratePresignedDownloadURL(context.Background(), "trainers/t-1/a.jpg", 0)
	require.NoError(t, err)
	assert.Contains(t, getURL, "X-Amz-Signature=")
}
