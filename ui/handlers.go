package ui

import (
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"tablescrub/adapters/render"
	"tablescrub/domain/clean"
	"tablescrub/internal/errors"
	"tablescrub/internal/pipeline"
)

// indexView is the data for the upload form page.
type indexView struct {
	Error string
}

// resultsView is the data for the post-upload results page.
type resultsView struct {
	HealthScore  int
	OriginalRows int
	CleanedRows  int
	Digest       template.HTML
	Downloads    []downloadLink
}

type downloadLink struct {
	Label string
	Href  string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderIndex(w, http.StatusOK, "")
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	maxBytes := s.cfg.Storage.MaxUploadMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1024*1024)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		s.renderIndex(w, http.StatusBadRequest, "invalid upload request")
		return
	}

	file, header, err := r.FormFile("dataset")
	if err != nil {
		s.renderIndex(w, http.StatusBadRequest, "no dataset file selected")
		return
	}
	defer file.Close()

	strategy, err := clean.ParseStrategy(r.FormValue("fill_strategy"))
	if err != nil {
		s.renderIndex(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		s.renderIndex(w, http.StatusServiceUnavailable, "server is shutting down")
		return
	}
	defer s.sem.Release(1)

	storedPath, err := s.storage.Store(ctx, file, header.Filename)
	if err != nil {
		s.log.Warn("upload rejected: %v", err)
		s.renderIndex(w, statusForError(err), err.Error())
		return
	}

	// every run writes into its own directory named after the stored upload
	runName := strings.TrimSuffix(filepath.Base(storedPath), filepath.Ext(storedPath))
	outDir := filepath.Join(s.cfg.Storage.OutputDir, runName)

	result, err := s.runner.Run(ctx, storedPath, outDir, strategy)
	if err != nil {
		s.log.Error("pipeline run failed for %s: %v", storedPath, err)
		s.renderIndex(w, statusForError(err), err.Error())
		return
	}

	view := resultsView{
		HealthScore:  result.Report.HealthScore,
		OriginalRows: result.Report.OriginalRowCount,
		CleanedRows:  result.Report.CleanedRowCount,
		Digest:       s.digestHTML(result.Artifacts[render.MarkdownRenderer{}.Name()]),
		Downloads:    s.downloadLinks(result),
	}
	if err := s.templates.ExecuteTemplate(w, "results", view); err != nil {
		s.log.Error("cannot render results page: %v", err)
	}
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	rel := chi.URLParam(r, "*")
	full := filepath.Join(s.cfg.Storage.OutputDir, filepath.FromSlash(rel))

	// keep downloads inside the output root
	inside, err := filepath.Rel(s.cfg.Storage.OutputDir, full)
	if err != nil || strings.HasPrefix(inside, "..") {
		http.NotFound(w, r)
		return
	}
	if _, err := os.Stat(full); err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filepath.Base(full)+"\"")
	http.ServeFile(w, r, full)
}

func (s *Server) renderIndex(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, "index", indexView{Error: msg}); err != nil {
		s.log.Error("cannot render index page: %v", err)
	}
}

// digestHTML renders the run's Markdown digest artifact to HTML for the
// results page. A missing digest degrades to an empty section.
func (s *Server) digestHTML(mdPath string) template.HTML {
	if mdPath == "" {
		return ""
	}
	data, err := os.ReadFile(mdPath)
	if err != nil {
		s.log.Warn("cannot read digest %s: %v", mdPath, err)
		return ""
	}
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return template.HTML(markdown.ToHTML(data, p, renderer))
}

// downloadLinks maps the run's artifacts to /download/ URLs relative to the
// output root.
func (s *Server) downloadLinks(result *pipeline.Result) []downloadLink {
	links := make([]downloadLink, 0, len(result.Artifacts)+1)
	if href, ok := s.downloadHref(result.CleanedCSV); ok {
		links = append(links, downloadLink{Label: "Cleaned CSV", Href: href})
	}
	labels := []struct{ name, label string }{
		{render.JSONRenderer{}.Name(), "JSON summary"},
		{render.TextRenderer{}.Name(), "Text report"},
		{render.MarkdownRenderer{}.Name(), "Markdown report"},
		{render.ExcelRenderer{}.Name(), "Excel workbook"},
	}
	for _, l := range labels {
		if path, ok := result.Artifacts[l.name]; ok {
			if href, ok := s.downloadHref(path); ok {
				links = append(links, downloadLink{Label: l.label, Href: href})
			}
		}
	}
	return links
}

func (s *Server) downloadHref(path string) (string, bool) {
	rel, err := filepath.Rel(s.cfg.Storage.OutputDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return "/download/" + filepath.ToSlash(rel), true
}

func statusForError(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput, errors.CodeFormatError, errors.CodeConfigInvalid:
		return http.StatusBadRequest
	case errors.CodeIOError:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
