package entity

import (
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat файл не jpg/jpeg/png
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrEmptyImage пустой файл
	ErrEmptyImage = errors.New("empty image")
	// ErrImageTooLarge слишком много пикселей для декодирования
	ErrImageTooLarge = errors.New("image too large")
)

// AllowedExtensions допустимые расширения загружаемых файлов
var AllowedExtensions = []string{"jpg", "jpeg", "png"}

// ValidateImageName проверяет расширение файла
func ValidateImageName(name string) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// UploadedImage изображение, готовое к показу. Живёт только в рамках одного рендера.
type UploadedImage struct {
	Filename    string
	Format      string // jpeg или png
	ContentType string
	Width       int
	Height      int
	Data        []byte
}

// DataURI кодирует изображение для встраивания в страницу
func (i *UploadedImage) DataURI() string {
	return "data:" + i.ContentType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}
