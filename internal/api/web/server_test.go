package web

import (
	"bytes"
	"html"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	app "ai-diagnostics/internal/application"
	"ai-diagnostics/internal/container"
	"ai-diagnostics/internal/infrastructure/catalog"
	"ai-diagnostics/internal/infrastructure/storage"
	"ai-diagnostics/internal/infrastructure/vision"
	"ai-diagnostics/internal/logger"
)

func newTestServer(maxUpload int64) *Server {
	return newTestServerWithPixels(maxUpload, vision.DefaultMaxPixels)
}

func newTestServerWithPixels(maxUpload, maxPixels int64) *Server {
	c := container.New(
		storage.NewMemorySessionRepository(),
		catalog.NewStaticCatalog(),
		vision.NewDecoder(vision.DefaultMaxDisplayWidth, maxPixels),
		app.NewSimulator(app.DefaultProgressSteps, 0),
	)
	return New(c, logger.NewWithWriter("disabled", io.Discard), maxUpload)
}

func uploadRequest(t *testing.T, category, filename string, data []byte) *http.Request {
	t.Helper()
	return formRequest(t, map[string]string{"category": category, "presentation": "0"}, filename, data)
}

func formRequest(t *testing.T, fields map[string]string, filename string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return buf.Bytes()
}

func TestIndex_Placeholder(t *testing.T) {
	srv := newTestServer(1 << 20)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, "AI Diagnostics")
	require.Contains(t, body, "Powered by Machine Learning")
	require.Contains(t, body, app.Placeholder)
	require.NotContains(t, body, "Findings")
	require.NotContains(t, body, "Clinical Recommendations")
	require.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestIndex_SkinPrompt(t *testing.T) {
	srv := newTestServer(1 << 20)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?category=skin", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Choose an image file")
	require.Contains(t, w.Body.String(), `value="Skin" checked`)
}

func TestIndex_BadCategory(t *testing.T) {
	srv := newTestServer(1 << 20)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?category=Liver", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIndex_NotFound(t *testing.T) {
	srv := newTestServer(1 << 20)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/other", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestIndex_PresentationFromQuery(t *testing.T) {
	srv := newTestServer(1 << 20)

	get := func(target string) string {
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, w.Code)
		return w.Body.String()
	}

	hidden := get("/?category=Heart")
	require.NotContains(t, hidden, "AI-Powered Medical Diagnostics")
	require.Contains(t, hidden, `name="toggle"`)

	shown := get("/?category=Heart&presentation=true")
	require.Contains(t, shown, "AI-Powered Medical Diagnostics")
	require.Contains(t, shown, "photo-1584362917165-526a968579e8")
	require.Contains(t, shown, "Built with Go")
	require.Contains(t, shown, `name="presentation" value="1"`)

	require.Equal(t, hidden, get("/?category=Heart&presentation=false"))
}

var uploadDataRe = regexp.MustCompile(`name="upload_data" value="([^"]*)"`)

// carriedUpload достаёт изображение, которое страница вернула в скрытом поле
func carriedUpload(t *testing.T, body string) string {
	t.Helper()
	m := uploadDataRe.FindStringSubmatch(body)
	require.Len(t, m, 2, "upload_data field missing")
	return html.UnescapeString(m[1])
}

func TestAnalyze_PresentationToggleKeepsUpload(t *testing.T) {
	srv := newTestServer(1 << 20)

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, uploadRequest(t, "Lungs", "scan.png", testPNG(t)))
	require.Equal(t, http.StatusOK, w.Code)
	first := w.Body.String()
	require.Contains(t, first, "Pulmonary Nodules")
	require.NotContains(t, first, "AI-Powered Medical Diagnostics")

	toggle := func(presentation, data string) string {
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, formRequest(t, map[string]string{
			"category":     "Lungs",
			"presentation": presentation,
			"toggle":       "1",
			"upload_name":  "scan.png",
			"upload_data":  data,
		}, "", nil))
		require.Equal(t, http.StatusOK, w.Code)
		return w.Body.String()
	}

	shown := toggle("0", carriedUpload(t, first))
	require.Contains(t, shown, "Pulmonary Nodules")
	require.Contains(t, shown, "92.0%")
	require.Contains(t, shown, "AI-Powered Medical Diagnostics")
	require.Contains(t, shown, "Lungs Image")
	require.NotContains(t, shown, app.Placeholder)

	hidden := toggle("1", carriedUpload(t, shown))
	require.Contains(t, hidden, "Pulmonary Nodules")
	require.NotContains(t, hidden, "AI-Powered Medical Diagnostics")
	require.Equal(t, first, hidden)
}

func TestAnalyze_ToggleWithoutUpload(t *testing.T) {
	srv := newTestServer(1 << 20)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, formRequest(t, map[string]string{"category": "Skin", "presentation": "0", "toggle": "1"}, "", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "AI-Powered Medical Diagnostics")
	require.Contains(t, w.Body.String(), app.Placeholder)
	require.NotContains(t, w.Body.String(), "upload_data")
}

func TestAnalyze_NewFileReplacesCarriedUpload(t *testing.T) {
	srv := newTestServer(1 << 20)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, formRequest(t, map[string]string{
		"category":    "Brain",
		"upload_name": "old.png",
		"upload_data": "not base64 at all",
	}, "new.png", testPNG(t)))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `name="upload_name" value="new.png"`)
	require.Contains(t, w.Body.String(), "Cerebral Microbleeds")
}

func TestAnalyze_BrokenCarriedUpload(t *testing.T) {
	srv := newTestServer(1 << 20)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, formRequest(t, map[string]string{
		"category":    "Brain",
		"upload_name": "scan.png",
		"upload_data": "%%%",
	}, "", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyze_TooManyPixels(t *testing.T) {
	srv := newTestServerWithPixels(1<<20, 63)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, uploadRequest(t, "Brain", "scan.png", testPNG(t)))

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	require.Contains(t, w.Body.String(), "Image is too large.")
	require.Contains(t, w.Body.String(), app.Placeholder)
}

func TestAnalyze_LungsPNG(t *testing.T) {
	srv := newTestServer(1 << 20)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, uploadRequest(t, "Lungs", "scan.png", testPNG(t)))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, "🟥 <strong>Pulmonary Nodules</strong><span>Probability: 92.0%</span>")
	require.Contains(t, body, "<li>Repeat imaging</li><li>Pulmonary function tests</li><li>Consult pulmonologist</li>")
	require.Contains(t, body, "2.3s")
	require.Contains(t, body, "92%")
	require.Contains(t, body, "Lungs Image")
	require.Contains(t, body, `src="data:image/png;base64,`)
	require.Contains(t, body, `<progress max="100" value="100">`)
	require.NotContains(t, body, app.Placeholder)
}

func TestAnalyze_NoFileShowsPlaceholder(t *testing.T) {
	srv := newTestServer(1 << 20)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, uploadRequest(t, "Brain", "", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), app.Placeholder)
	require.NotContains(t, w.Body.String(), "Cerebral Microbleeds")
}

func TestAnalyze_UnsupportedType(t *testing.T) {
	srv := newTestServer(1 << 20)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, uploadRequest(t, "Brain", "scan.gif", []byte("GIF89a")))

	require.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	require.Contains(t, w.Body.String(), "Unsupported file type")
	require.Contains(t, w.Body.String(), app.Placeholder)
}

func TestAnalyze_BrokenImage(t *testing.T) {
	srv := newTestServer(1 << 20)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, uploadRequest(t, "Brain", "scan.png", []byte("nope")))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Could not read the uploaded image.")
}

func TestAnalyze_TooLarge(t *testing.T) {
	srv := newTestServer(64)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, uploadRequest(t, "Brain", "scan.png", bytes.Repeat([]byte{1}, 1024)))
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestAnalyze_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(1 << 20)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analyze", nil))
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(1 << 20)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.HasPrefix(w.Body.String(), "ok"))
}
