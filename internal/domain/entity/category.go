package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory возвращается для категории вне фиксированного набора
var ErrUnknownCategory = errors.New("unknown category")

// Category область тела, для которой показываются результаты
type Category string

const (
	CategoryBrain Category = "Brain"
	CategoryHeart Category = "Heart"
	CategoryLungs Category = "Lungs"
	CategorySkin  Category = "Skin"
)

// DefaultCategory выбирается, пока пользователь ничего не выбрал
const DefaultCategory = CategoryBrain

var categories = []Category{CategoryBrain, CategoryHeart, CategoryLungs, CategorySkin}

// Categories возвращает все категории в порядке отображения
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory разбирает название категории без учёта регистра
func ParseCategory(s string) (Category, error) {
	name := strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(name, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Valid сообщает, входит ли категория в набор
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// UploadPrompt подпись к полю загрузки
func (c Category) UploadPrompt() string {
	if c == CategorySkin {
		return "Choose an image file"
	}
	return "Choose a scan file"
}

// ImageCaption подпись под загруженным изображением
func (c Category) ImageCaption() string {
	return fmt.Sprintf("%s Image", c)
}

func (c Category) String() string {
	return string(c)
}
