package storage

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	AllowImage    = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	AllowDocument = []string{"application/pdf", "image/jpeg", "image/png"}

	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrEmptyFile          = errors.New("file is empty")
)

// FileStorage stores uploaded multipart files under an object key of the form
// folder/name.ext and hands out public links for them.
type FileStorage interface {
	UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error)
	UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error)
	DeleteFile(objectKey string) error
	GetPublicLinkKey(objectKey string) string
	GetObjectKeyFromLink(link string) string
}

// detectType sniffs the file content and checks it against allowedTypes. An
// empty allow list accepts anything.
func detectType(file multipart.File, allowedTypes []string) (string, error) {
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", err
	}
	if _, err := file.Seek(0, 0); err != nil {
		return "", err
	}

	if len(allowedTypes) == 0 {
		return mtype.String(), nil
	}
	for _, allowed := range allowedTypes {
		if mtype.Is(allowed) {
			return allowed, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrFileTypeNotAllowed, mtype.String())
}

func objectKey(folder string, fileName string, header *multipart.FileHeader) string {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if folder == "" {
		return fileName + ext
	}
	return folder + "/" + fileName + ext
}
