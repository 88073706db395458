package vision

import (
	"fmt"
	"path/filepath"
	"strings"

	"ai-diagnostics/internal/domain/entity"
)

const (
	// DefaultMaxDisplayWidth ширина колонки, под которую масштабируется изображение
	DefaultMaxDisplayWidth = 1000
	// DefaultMaxPixels предел как у PIL (Image.MAX_IMAGE_PIXELS)
	DefaultMaxPixels int64 = 89478485
)

// checkPixels отклоняет изображения больше maxPixels до полного декодирования
func checkPixels(width, height int, maxPixels int64) error {
	if maxPixels <= 0 {
		return nil
	}
	if int64(width)*int64(height) > maxPixels {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", entity.ErrImageTooLarge, width, height, maxPixels)
	}
	return nil
}

// formatFromName определяет формат по расширению (jpg и jpeg -> jpeg)
func formatFromName(name string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "png":
		return "png"
	default:
		return "jpeg"
	}
}

func contentType(format string) string {
	if format == "png" {
		return "image/png"
	}
	return "image/jpeg"
}

// displaySize уменьшает размеры с сохранением пропорций, если ширина больше maxWidth
func displaySize(width, height, maxWidth int) (int, int, bool) {
	if maxWidth <= 0 || width <= maxWidth {
		return width, height, false
	}
	scale := float64(maxWidth) / float64(width)
	newH := int(float64(height) * scale)
	if newH < 1 {
		newH = 1
	}
	return maxWidth, newH, true
}
