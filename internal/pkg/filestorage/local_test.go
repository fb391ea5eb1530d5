package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["image"][0]
}

func TestSaveAndDeleteWithSubdirectory(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base, "/uploads")
	require.NoError(t, err)

	stored, err := storage.SaveFileWithPath(uploadHeader(t, "proof.jpg", "image-bytes"), "summaries")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored, "/uploads/summaries/"), stored)
	assert.True(t, strings.HasSuffix(stored, ".jpg"), stored)

	physical := storage.GetFullPath(stored)
	require.NotEmpty(t, physical)
	assert.Equal(t, filepath.Join(base, "summaries"), filepath.Dir(physical))

	content, err := os.ReadFile(physical)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))

	require.NoError(t, storage.DeleteFile(stored))
	_, err = os.Stat(physical)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveAndDeleteAtRoot(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base, "/uploads")
	require.NoError(t, err)

	stored, err := storage.SaveFile(uploadHeader(t, "photo.png", "pixels"))
	require.NoError(t, err)

	physical := storage.GetFullPath(stored)
	assert.Equal(t, base, filepath.Dir(physical))

	require.NoError(t, storage.DeleteFile(stored))
	_, err = os.Stat(physical)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveWithoutBaseURL(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base, "")
	require.NoError(t, err)

	stored, err := storage.SaveFileWithPath(uploadHeader(t, "proof.jpg", "x"), "summaries")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored, filepath.Join("uploads", "summaries")), stored)

	physical := storage.GetFullPath(stored)
	_, err = os.Stat(physical)
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(stored))
	_, err = os.Stat(physical)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteFileEdgeCases(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	// blank path and already-gone files are no-ops
	assert.NoError(t, storage.DeleteFile(""))
	assert.NoError(t, storage.DeleteFile("/uploads/summaries/never-existed.jpg"))

	// traversal attempts are refused
	assert.Error(t, storage.DeleteFile("/uploads/../../etc/passwd"))
}

func TestSaveNilFileHeader(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	stored, err := storage.SaveFile(nil)
	require.NoError(t, err)
	assert.Empty(t, stored)
}
