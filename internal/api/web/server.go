package web

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pterm/pterm"

	app "ai-diagnostics/internal/application"
	"ai-diagnostics/internal/container"
	"ai-diagnostics/internal/domain/entity"
	"ai-diagnostics/internal/domain/port"
)

const (
	uploadField     = "image"
	uploadNameField = "upload_name"
	uploadDataField = "upload_data"
)

type ctxKey struct{}

// Server веб-интерфейс: одна страница, один рендер на запрос
type Server struct {
	app            *container.Container
	log            *pterm.Logger
	mux            *http.ServeMux
	maxUploadBytes int64
}

func New(c *container.Container, log *pterm.Logger, maxUploadBytes int64) *Server {
	s := &Server{
		app:            c,
		log:            log,
		mux:            http.NewServeMux(),
		maxUploadBytes: maxUploadBytes,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/analyze", s.handleAnalyze)
	s.mux.HandleFunc("/healthz", s.handleHealth)
}

// ServeHTTP добавляет request id и пишет строку лога на каждый запрос
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := uuid.NewString()
	w.Header().Set("X-Request-Id", id)

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))

	s.log.Info("request", s.log.Args(
		"id", id,
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"duration", time.Since(start).String(),
	))
}

// Handler возвращает корневой обработчик для http.Server
func (s *Server) Handler() http.Handler {
	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	category, err := categoryParam(r.URL.Query().Get("category"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	in := app.ViewInput{
		Category:         category,
		ShowPresentation: boolParam(r.URL.Query().Get("presentation")),
	}
	s.render(w, r, http.StatusOK, in, "")
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if r.ContentLength > s.maxUploadBytes {
		http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	category, err := categoryParam(r.FormValue("category"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	in := app.ViewInput{
		Category:         category,
		ShowPresentation: boolParam(r.FormValue("presentation")),
	}

	if boolParam(r.FormValue("toggle")) {
		in.ShowPresentation = app.TogglePresentation(in.ShowPresentation)
	}

	filename, data, err := readUpload(r)
	if err != nil {
		http.Error(w, "invalid upload", http.StatusBadRequest)
		return
	}
	if data == nil {
		s.render(w, r, http.StatusOK, in, "")
		return
	}

	img, err := s.app.Decoder.Decode(r.Context(), filename, data)
	switch {
	case errors.Is(err, entity.ErrUnsupportedFormat):
		s.render(w, r, http.StatusUnsupportedMediaType, in, "Unsupported file type. Allowed: jpg, jpeg, png.")
		return
	case errors.Is(err, entity.ErrImageTooLarge):
		s.log.Warn("image too large", s.log.Args("id", requestID(r), "file", filename, "error", err.Error()))
		s.render(w, r, http.StatusRequestEntityTooLarge, in, "Image is too large.")
		return
	case err != nil:
		s.log.Warn("decode upload", s.log.Args("id", requestID(r), "file", filename, "error", err.Error()))
		s.render(w, r, http.StatusBadRequest, in, "Could not read the uploaded image.")
		return
	}

	in.Upload = img
	s.render(w, r, http.StatusOK, in, "")
}

// readUpload берёт новый файл из формы, а если его нет, то изображение с прошлого рендера.
// nil data означает, что загрузки нет.
func readUpload(r *http.Request) (string, []byte, error) {
	file, header, err := r.FormFile(uploadField)
	if err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return "", nil, err
		}
		return header.Filename, data, nil
	}
	if !errors.Is(err, http.ErrMissingFile) {
		return "", nil, err
	}

	encoded := r.FormValue(uploadDataField)
	if encoded == "" {
		return "", nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("previous upload: %w", err)
	}
	return r.FormValue(uploadNameField), data, nil
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, in app.ViewInput, notice string) {
	var progress int
	reporter := port.ProgressFunc(func(p int) {
		progress = p
		if p%25 == 0 {
			s.log.Debug(app.ProcessingLabel, s.log.Args("id", requestID(r), "progress", p))
		}
	})

	view, err := s.app.DiagnosticsService.Render(r.Context(), in, reporter)
	if err != nil {
		s.log.Error("render", s.log.Args("id", requestID(r), "error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	p := page{
		View:          view,
		Progress:      progress,
		ProgressLabel: app.ProcessingLabel,
		Error:         notice,
	}
	if view.Image != nil {
		p.ImageSrc = template.URL(view.Image.DataURI())
		p.UploadName = view.Image.Filename
		p.UploadData = base64.StdEncoding.EncodeToString(view.Image.Data)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		s.log.Error("template", s.log.Args("id", requestID(r), "error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func categoryParam(v string) (entity.Category, error) {
	if v == "" {
		return entity.DefaultCategory, nil
	}
	c, err := entity.ParseCategory(v)
	if err != nil {
		return "", fmt.Errorf("invalid category: %w", err)
	}
	return c, nil
}

func boolParam(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(ctxKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
