//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"gocv.io/x/gocv"

	"ai-diagnostics/internal/domain/entity"
	"ai-diagnostics/internal/domain/port"
)

// Decoder декодирует изображения через OpenCV
type Decoder struct {
	MaxWidth  int
	MaxPixels int64 // 0 отключает проверку
}

// NewDecoder создаёт декодер на gocv
func NewDecoder(maxWidth int, maxPixels int64) *Decoder {
	return &Decoder{MaxWidth: maxWidth, MaxPixels: maxPixels}
}

// Decode проверяет расширение, декодирует и при необходимости уменьшает изображение.
func (d *Decoder) Decode(ctx context.Context, filename string, data []byte) (*entity.UploadedImage, error) {
	_ = ctx
	if err := entity.ValidateImageName(filename); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, entity.ErrEmptyImage
	}

	// OpenCV не умеет читать только заголовок, размеры берём стандартным декодером
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	if err := checkPixels(cfg.Width, cfg.Height, d.MaxPixels); err != nil {
		return nil, err
	}

	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	defer mat.Close()
	if mat.Empty() {
		return nil, fmt.Errorf("decode %s: %w", filename, errors.New("failed to decode image"))
	}

	if err := checkPixels(mat.Cols(), mat.Rows(), d.MaxPixels); err != nil {
		return nil, err
	}

	format := formatFromName(filename)
	w, h, scaled := displaySize(mat.Cols(), mat.Rows(), d.MaxWidth)
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

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(mat, &resized, image.Pt(w, h), 0, 0, gocv.InterpolationArea)

	ext := gocv.JPEGFileExt
	if format == "png" {
		ext = gocv.PNGFileExt
	}
	buf, err := gocv.IMEncode(ext, resized)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", filename, err)
	}
	defer buf.Close()

	// GetBytes ссылается на память OpenCV, копируем до Close
	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())

	return &entity.UploadedImage{
		Filename:    filename,
		Format:      format,
		ContentType: contentType(format),
		Width:       w,
		Height:      h,
		Data:        out,
	}, nil
}

var _ port.ImageDecoder = (*Decoder)(nil)
