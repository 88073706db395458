package entity

// PresentationImageURL внешняя картинка панели презентации
const PresentationImageURL = "https://images.unsplash.com/photo-1584362917165-526a968579e8?auto=format&fit=crop&q=80&w=1000"

// Presentation статичное содержимое панели презентации
type Presentation struct {
	Heading      string
	ImageURL     string
	ImageCaption string
	Section      string
	Highlights   []string
}

// NewPresentation каждый раз возвращает одинаковое содержимое
func NewPresentation() *Presentation {
	return &Presentation{
		Heading:      "AI-Powered Medical Diagnostics",
		ImageURL:     PresentationImageURL,
		ImageCaption: "Advanced Medical Imaging",
		Section:      "Highlights",
		Highlights: []string{
			"Real-time Machine Learning Analysis",
			"Tailored for Multi-Organ Diagnostics",
			"Built with Go",
		},
	}
}
