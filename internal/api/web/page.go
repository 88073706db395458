package web

import (
	"html/template"

	app "ai-diagnostics/internal/application"
)

// page данные шаблона поверх app.View
type page struct {
	*app.View
	ImageSrc      template.URL
	Progress      int
	ProgressLabel string
	Error         string
	// Уже загруженное изображение уходит обратно в форму, чтобы пережить следующий submit
	UploadName string
	UploadData string
}

var pageTemplate = template.Must(template.New("index").Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <link rel="icon" href="data:image/svg+xml,<svg xmlns=%22http://www.w3.org/2000/svg%22 viewBox=%220 0 100 100%22><text y=%22.9em%22 font-size=%2290%22>🧬</text></svg>" />
  <style>
    body { font-family: system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; background:#f3f4f6; margin:0; }
    .header { background:white; padding:1rem; margin-bottom:2rem; box-shadow:0 1px 3px rgba(0,0,0,0.1); }
    .header h1 { margin:0; }
    .header p { color:#666; margin:0.25rem 0 0; }
    .layout { display:flex; gap:16px; padding:0 20px; }
    .sidebar { flex:0 0 200px; }
    .cols { flex:1; display:flex; flex-wrap:wrap; gap:16px; }
    .col { flex:1 1 320px; }
    .card { background:white; padding:1.5rem; border-radius:0.5rem; box-shadow:0 1px 3px rgba(0,0,0,0.1); margin-bottom:1rem; }
    .finding { background:#f9f9f9; padding:0.75rem; border-radius:0.5rem; margin-bottom:0.5rem; }
    .finding span { float:right; }
    .metrics { display:flex; gap:16px; }
    .metric { flex:1; }
    .metric .label { color:#666; font-size:14px; }
    .metric .value { font-size:28px; }
    .info { background:#e0f2fe; color:#075985; padding:0.75rem; border-radius:0.5rem; }
    .error { background:#fee2e2; color:#991b1b; padding:0.75rem; border-radius:0.5rem; margin-bottom:1rem; }
    progress { width:100%; }
    img { max-width:100%; }
    figcaption { color:#666; font-size:14px; text-align:center; }
    .presentation { padding:0 20px 20px; }
    .button { display:inline-block; padding:8px 12px; border-radius:8px; border:1px solid #d1d5db; background:white; color:#111827; cursor:pointer; }
  </style>
</head>
<body>
  <div class="header">
    <h1>{{.Title}}</h1>
    <p>{{.Subtitle}}</p>
  </div>

  <form id="diagnostics" class="layout" method="post" action="/analyze" enctype="multipart/form-data">
    <div class="sidebar card">
      <strong>Select Analysis Type</strong>
      {{range .Categories}}
      <div><label><input type="radio" name="category" value="{{.Category}}"{{if .Selected}} checked{{end}} /> {{.Category}}</label></div>
      {{end}}
      <input type="hidden" name="presentation" value="{{if .ShowPresentation}}1{{else}}0{{end}}" />
      {{if .UploadData}}
      <input type="hidden" name="upload_name" value="{{.UploadName}}" />
      <input type="hidden" name="upload_data" value="{{.UploadData}}" />
      {{end}}
    </div>

    <div class="cols">
      <div class="col">
        <div class="card">
          <h3>Upload Scan/Image</h3>
          {{if .Error}}<div class="error">{{.Error}}</div>{{end}}
          <label>{{.UploadPrompt}}<br />
            <input type="file" name="image" accept=".jpg,.jpeg,.png,image/jpeg,image/png" />
          </label>
          <button type="submit">Analyze</button>
          {{if .Image}}
          <figure>
            <img src="{{.ImageSrc}}" alt="{{.ImageCaption}}" />
            <figcaption>{{.ImageCaption}}</figcaption>
          </figure>
          {{end}}
        </div>
      </div>

      <div class="col">
        <div class="card">
          <h3>Analysis Results</h3>
          {{with .Report}}
          <div>{{$.ProgressLabel}}</div>
          <progress max="100" value="{{$.Progress}}"></progress>

          <h3>Findings</h3>
          {{range .Findings}}
          <div class="finding">{{.Icon}} <strong>{{.Name}}</strong><span>Probability: {{.Percent}}</span></div>
          {{end}}

          <h3>Processing Information</h3>
          <div class="metrics">
            {{range .Metrics}}
            <div class="metric"><div class="label">{{.Label}}</div><div class="value">{{.Value}}</div></div>
            {{end}}
          </div>

          <h3>Clinical Recommendations</h3>
          <ul>
            {{range .Recommendations}}<li>{{.}}</li>{{end}}
          </ul>
          {{else}}
          <div class="info">{{.Placeholder}}</div>
          {{end}}
        </div>
      </div>
    </div>
  </form>

  <div class="presentation">
    <button class="button" type="submit" form="diagnostics" name="toggle" value="1">View Presentation</button>
    {{with .Presentation}}
    <h2>{{.Heading}}</h2>
    <figure>
      <img src="{{.ImageURL}}" alt="{{.ImageCaption}}" />
      <figcaption>{{.ImageCaption}}</figcaption>
    </figure>
    <h3>{{.Section}}</h3>
    <ul>
      {{range .Highlights}}<li>{{.}}</li>{{end}}
    </ul>
    {{end}}
  </div>
</body>
</html>
`
