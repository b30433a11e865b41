package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMinioAPI struct {
	bucketExists bool
	madeBucket   bool
	putKey       string
	putType      string
	putBody      []byte
	removedKey   string
	putErr       error
	removeErr    error
}

func (f *fakeMinioAPI) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, nil
}
func (f *fakeMinioAPI) MakeBucket(_ context.Context, _ string, _ minio.MakeBucketOptions) error {
	f.madeBucket = true
	return nil
}
func (f *fakeMinioAPI) PutObject(_ context.Context, _, objectName string, reader io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	f.putKey = objectName
	f.putType = opts.ContentType
	f.putBody, _ = io.ReadAll(reader)
	return minio.UploadInfo{Key: objectName}, nil
}
func (f *fakeMinioAPI) RemoveObject(_ context.Context, _, objectName string, _ minio.RemoveObjectOptions) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removedKey = objectName
	return nil
}

func TestNewClientCreatesMissingBucket(t *testing.T) {
	api := &fakeMinioAPI{bucketExists: false}
	_, err := NewClientWithAPI(context.Background(), api, "assets", "https://cdn.test")
	require.NoError(t, err)
	assert.True(t, api.madeBucket)
}

func TestNewClientKeepsExistingBucket(t *testing.T) {
	api := &fakeMinioAPI{bucketExists: true}
	_, err := NewClientWithAPI(context.Background(), api, "assets", "https://cdn.test")
	require.NoError(t, err)
	assert.False(t, api.madeBucket)
}

func TestUpload(t *testing.T) {
	api := &fakeMinioAPI{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, "assets", "https://cdn.test/")
	require.NoError(t, err)

	obj, err := c.Upload(context.Background(), "profile-pictures", "Photo.PNG",
		bytes.NewBufferString("image bytes"), 11, "image/png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(obj.Key, "profile-pictures/"))
	assert.True(t, strings.HasSuffix(obj.Key, ".png"), "extension is lowercased: %s", obj.Key)
	assert.Equal(t, "https://cdn.test/"+obj.Key, obj.URL)
	assert.Equal(t, obj.Key, api.putKey)
	assert.Equal(t, "image/png", api.putType)
	assert.Equal(t, []byte("image bytes"), api.putBody)
}

func TestUploadKeysAreUnique(t *testing.T) {
	api := &fakeMinioAPI{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, "assets", "https://cdn.test")
	require.NoError(t, err)

	first, err := c.Upload(context.Background(), "covers", "a.jpg", bytes.NewReader(nil), 0, "image/jpeg")
	require.NoError(t, err)
	second, err := c.Upload(context.Background(), "covers", "a.jpg", bytes.NewReader(nil), 0, "image/jpeg")
	require.NoError(t, err)

	assert.NotEqual(t, first.Key, second.Key)
}

func TestUploadError(t *testing.T) {
	api := &fakeMinioAPI{bucketExists: true, putErr: errors.New("network down")}
	c, err := NewClientWithAPI(context.Background(), api, "assets", "https://cdn.test")
	require.NoError(t, err)

	_, err = c.Upload(context.Background(), "covers", "a.jpg", bytes.NewReader(nil), 0, "image/jpeg")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	api := &fakeMinioAPI{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, "assets", "https://cdn.test")
	require.NoError(t, err)

	require.NoError(t, c.Delete(context.Background(), "covers/old.png"))
	assert.Equal(t, "covers/old.png", api.removedKey)
}
