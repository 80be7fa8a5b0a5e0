package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// localStorage keeps uploads on disk. The app serves baseDir under baseURL.
type localStorage struct {
	baseDir string
	baseURL string
}

func NewLocalStorage(baseDir string, baseURL string) FileStorage {
	return &localStorage{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (l *localStorage) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	if file == nil || file.Size == 0 {
		return "", ErrEmptyFile
	}
	key := objectKey(folder, fileName, file)
	if err := l.write(key, file, allowedTypes); err != nil {
		return "", err
	}
	return key, nil
}

func (l *localStorage) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	if file == nil || file.Size == 0 {
		return "", ErrEmptyFile
	}
	if err := l.write(objectKey, file, allowedTypes); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (l *localStorage) write(key string, header *multipart.FileHeader, allowedTypes []string) error {
	src, err := header.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if _, err := detectType(src, allowedTypes); err != nil {
		return err
	}

	target := filepath.Join(l.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
		return err
	}
	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

func (l *localStorage) DeleteFile(objectKey string) error {
	err := os.Remove(filepath.Join(l.baseDir, filepath.FromSlash(objectKey)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (l *localStorage) GetPublicLinkKey(objectKey string) string {
	return l.baseURL + "/" + objectKey
}

func (l *localStorage) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, l.baseURL+"/") {
		return ""
	}
	return strings.TrimPrefix(link, l.baseURL+"/")
}
