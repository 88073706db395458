package port

import (
	"context"

	"ai-diagnostics/internal/domain/entity"
)

// ImageDecoder интерфейс декодера загруженных изображений
type ImageDecoder interface {
	// Decode проверяет и декодирует файл, возвращает изображение для показа
	Decode(ctx context.Context, filename string, data []byte) (*entity.UploadedImage, error)
}
