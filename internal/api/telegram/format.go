package telegram

import (
	"fmt"
	"strings"

	app "ai-diagnostics/internal/application"
	"ai-diagnostics/internal/domain/entity"
)

func progressText(percent int) string {
	return fmt.Sprintf("⏳ %s %d%%", app.ProcessingLabel, percent)
}

// FormatView превращает результат рендера в текст сообщения
func FormatView(v *app.View) string {
	if v.Report == nil {
		return v.Placeholder
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\n", v.ImageCaption)

	sb.WriteString("Findings\n")
	for _, f := range v.Report.Findings {
		fmt.Fprintf(&sb, "%s %s — Probability: %s\n", f.Icon, f.Name, f.Percent)
	}

	sb.WriteString("\nProcessing Information\n")
	for _, m := range v.Report.Metrics {
		fmt.Fprintf(&sb, "%s: %s\n", m.Label, m.Value)
	}

	sb.WriteString("\nClinical Recommendations\n")
	for _, r := range v.Report.Recommendations {
		fmt.Fprintf(&sb, "- %s\n", r)
	}

	return strings.TrimRight(sb.String(), "\n")
}

// FormatPresentation текст панели презентации
func FormatPresentation(p *entity.Presentation) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\n%s\n", p.Heading, p.Section)
	for _, h := range p.Highlights {
		fmt.Fprintf(&sb, "- %s\n", h)
	}
	return strings.TrimRight(sb.String(), "\n")
}
