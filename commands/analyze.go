package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	app "ai-diagnostics/internal/application"
	"ai-diagnostics/internal/domain/entity"
	"ai-diagnostics/internal/domain/port"
	"ai-diagnostics/internal/infrastructure/storage"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Render the findings for a local image in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("category")
		imagePath, _ := cmd.Flags().GetString("image")
		showPresentation, _ := cmd.Flags().GetBool("presentation")

		category, err := entity.ParseCategory(name)
		if err != nil {
			return err
		}

		c := newContainer(cfg, storage.NewMemorySessionRepository())
		in := app.ViewInput{Category: category, ShowPresentation: showPresentation}

		if imagePath != "" {
			data, err := os.ReadFile(imagePath)
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}
			img, err := c.Decoder.Decode(cmd.Context(), filepath.Base(imagePath), data)
			if err != nil {
				return err
			}
			in.Upload = img
		}

		out := cmd.OutOrStdout()

		var bar *pterm.ProgressbarPrinter
		reporter := port.ProgressFunc(func(p int) {
			if bar == nil {
				bar, _ = pterm.DefaultProgressbar.
					WithTotal(100).
					WithTitle(app.ProcessingLabel).
					WithWriter(out).
					Start()
			}
			if bar != nil {
				bar.Add(p - bar.Current)
			}
		})

		view, err := c.DiagnosticsService.Render(cmd.Context(), in, reporter)
		if bar != nil {
			_, _ = bar.Stop()
		}
		if err != nil {
			return err
		}

		return printView(out, view)
	},
}

func init() {
	analyzeCmd.Flags().StringP("category", "c", string(entity.DefaultCategory), "Brain, Heart, Lungs or Skin")
	analyzeCmd.Flags().StringP("image", "i", "", "path to a jpg, jpeg or png file")
	analyzeCmd.Flags().Bool("presentation", false, "also print the presentation panel")
	rootCmd.AddCommand(analyzeCmd)
}

func printView(w io.Writer, v *app.View) error {
	pterm.Fprintln(w, pterm.DefaultHeader.Sprint(v.Title))
	pterm.Fprintln(w, v.Subtitle)

	if v.Report == nil {
		pterm.Fprintln(w, pterm.Info.Sprint(v.Placeholder))
	} else {
		pterm.Fprintln(w, v.ImageCaption, fmt.Sprintf("(%dx%d)", v.Image.Width, v.Image.Height))

		section(w, "Findings")
		rows := pterm.TableData{{"", "Finding", "Probability"}}
		for _, f := range v.Report.Findings {
			rows = append(rows, []string{f.Icon, f.Name, f.Percent})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
		if err != nil {
			return err
		}
		pterm.Fprintln(w, table)

		section(w, "Processing Information")
		for _, m := range v.Report.Metrics {
			pterm.Fprintln(w, m.Label+": "+m.Value)
		}

		section(w, "Clinical Recommendations")
		if err := bulletList(w, v.Report.Recommendations); err != nil {
			return err
		}
	}

	if p := v.Presentation; p != nil {
		section(w, p.Heading)
		pterm.Fprintln(w, p.ImageCaption+": "+p.ImageURL)
		section(w, p.Section)
		if err := bulletList(w, p.Highlights); err != nil {
			return err
		}
	}

	return nil
}

func section(w io.Writer, title string) {
	pterm.Fprintln(w, pterm.DefaultSection.Sprint(title))
}

func bulletList(w io.Writer, items []string) error {
	list := make([]pterm.BulletListItem, 0, len(items))
	for _, it := range items {
		list = append(list, pterm.BulletListItem{Level: 0, Text: it})
	}
	out, err := pterm.DefaultBulletList.WithItems(list).Srender()
	if err != nil {
		return err
	}
	pterm.Fprintln(w, out)
	return nil
}
