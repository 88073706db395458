//go:build !gocv
// +build !gocv

package vision

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"

	"ai-diagnostics/internal/domain/entity"
	"ai-diagnostics/internal/domain/port"
)

// Decoder декодирует jpg/png на чистом Go и уменьшает широкие изображения
type Decoder struct {
	MaxWidth  int
	MaxPixels int64 // 0 отключает проверку
}

// NewDecoder создаёт декодер
func NewDecoder(maxWidth int, maxPixels int64) *Decoder {
	return &Decoder{MaxWidth: maxWidth, MaxPixels: maxPixels}
}

// Decode проверяет расширение, декодирует и готовит изображение к показу
func (d *Decoder) Decode(ctx context.Context, filename string, data []byte) (*entity.UploadedImage, error) {
	_ = ctx
	if err := entity.ValidateImageName(filename); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, entity.ErrEmptyImage
	}

	// Сначала читаем только заголовок, чтобы не распаковывать огромные изображения
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	if err := checkPixels(cfg.Width, cfg.Height, d.MaxPixels); err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	if format != "jpeg" && format != "png" {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnsupportedFormat, format)
	}

	bounds := img.Bounds()
	w, h, scaled := displaySize(bounds.Dx(), bounds.Dy(), d.MaxWidth)
	if !scaled {
		return &entity.UploadedImage{
			Filename:    filename,
			Format:      format,
			ContentType: contentType(format),
			Width:       w,
			Height:      h,
			Data:        data,
		}, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, dst)
	default:
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", filename, err)
	}

	return &entity.UploadedImage{
		Filename:    filename,
		Format:      format,
		ContentType: contentType(format),
		Width:       w,
		Height:      h,
		Data:        buf.Bytes(),
	}, nil
}

var _ port.ImageDecoder = (*Decoder)(nil)
