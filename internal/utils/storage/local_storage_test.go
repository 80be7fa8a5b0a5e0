package storage

import (
	"career-bridge/internal/testutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://localhost:8080/files"

func TestLocalStorageUploadAndLinks(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, testBaseURL+"/")

	key, err := s.UploadFile("abc", testutil.FileHeader(t, "file", "Scan.PDF", testutil.PDF), "marksheets", AllowDocument...)
	require.NoError(t, err)
	assert.Equal(t, "marksheets/abc.pdf", key)

	written, err := os.ReadFile(filepath.Join(dir, "marksheets", "abc.pdf"))
	require.NoError(t, err)
	assert.Equal(t, testutil.PDF, written)

	link := s.GetPublicLinkKey(key)
	assert.Equal(t, testBaseURL+"/marksheets/abc.pdf", link)
	assert.Equal(t, key, s.GetObjectKeyFromLink(link))
	assert.Empty(t, s.GetObjectKeyFromLink("https://elsewhere.example.com/marksheets/abc.pdf"))
}

func TestLocalStorageRejectsDisallowedType(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, testBaseURL)

	_, err := s.UploadFile("photo", testutil.FileHeader(t, "file", "cv.pdf", testutil.PDF), "profile-photos", AllowImage...)
	require.ErrorIs(t, err, ErrFileTypeNotAllowed)

	_, statErr := os.Stat(filepath.Join(dir, "profile-photos", "photo.pdf"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLocalStorageEmptyFile(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), testBaseURL)

	_, err := s.UploadFile("x", nil, "resumes")
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = s.UpdateFile("resumes/x.pdf", testutil.FileHeader(t, "file", "x.pdf", []byte{}))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestLocalStorageUpdateAndDelete(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, testBaseURL)

	key, err := s.UploadFile("photo", testutil.FileHeader(t, "file", "me.png", testutil.PNG), "profile-photos", AllowImage...)
	require.NoError(t, err)

	replacement := append([]byte{}, testutil.PNG...)
	replacement[len(replacement)-1] = 0x01
	updated, err := s.UpdateFile(key, testutil.FileHeader(t, "file", "me.png", replacement), AllowImage...)
	require.NoError(t, err)
	assert.Equal(t, key, updated)

	written, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, replacement, written)

	require.NoError(t, s.DeleteFile(key))
	_, statErr := os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(statErr))

	// deleting twice is not an error
	assert.NoError(t, s.DeleteFile(key))
}
