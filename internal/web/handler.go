package web

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/tammam101/temox/backend/internal/catalog"
	"github.com/tammam101/temox/backend/internal/common"
	"github.com/tammam101/temox/backend/internal/contact"
	"github.com/tammam101/temox/backend/internal/models"
	"github.com/tammam101/temox/backend/internal/store"
)

// AssetStore defines the interface for static asset storage.
type AssetStore interface {
	Open(ctx context.Context, key string) (*store.Asset, error)
}

// Handler holds the page handlers.
type Handler struct {
	views     *Views
	catalog   *catalog.Catalog
	validate  contact.Validator
	submitter contact.Submitter
	log       *slog.Logger
}

func NewHandler(views *Views, c *catalog.Catalog, v contact.Validator, s contact.Submitter, log *slog.Logger) *Handler {
	return &Handler{views: views, catalog: c, validate: v, submitter: s, log: log}
}

func render(w http.ResponseWriter, r *http.Request, c templ.Component, status int) {
	templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
}

// Home serves GET /.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.views.Home(h.catalog.List()), http.StatusOK)
}

// ServiceDetail serves GET /services/{slug}. Unknown slugs get the
// not-found view.
func (h *Handler) ServiceDetail(w http.ResponseWriter, r *http.Request) {
	svc, err := h.catalog.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		h.NotFound(w, r)
		return
	}
	render(w, r, h.views.ServiceDetail(svc, h.catalog.List()), http.StatusOK)
}

// ContactForm serves GET /contact. A known ?service= slug is pre-selected.
func (h *Handler) ContactForm(w http.ResponseWriter, r *http.Request) {
	preselect := r.URL.Query().Get("service")
	if !h.catalog.Has(preselect) {
		preselect = ""
	}
	form := contact.NewForm(h.validate, preselect)
	render(w, r, h.views.Contact(form, h.catalog.List()), http.StatusOK)
}

// ContactSubmit serves POST /contact.
func (h *Handler) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := r.ParseForm(); err != nil {
		form := contact.NewForm(h.validate, "")
		render(w, r, h.views.Contact(form, h.catalog.List()), http.StatusBadRequest)
		return
	}

	form := contact.NewForm(h.validate, "")
	form.Values = models.ContactRequest{
		FullName:    strings.TrimSpace(r.PostFormValue("fullName")),
		Email:       strings.TrimSpace(r.PostFormValue("email")),
		Phone:       strings.TrimSpace(r.PostFormValue("phone")),
		ServiceType: r.PostFormValue("serviceType"),
		Details:     strings.TrimSpace(r.PostFormValue("details")),
	}

	status := http.StatusOK
	if err := form.Submit(r.Context(), h.submitter, r.RemoteAddr); err != nil {
		// the submitter has already logged the cause
		status = http.StatusInternalServerError
	} else if form.State == contact.StateIdle {
		status = http.StatusUnprocessableEntity
	}
	render(w, r, h.views.Contact(form, h.catalog.List()), status)
}

// NotFound renders the not-found view with a 404 status.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.views.NotFound(h.catalog.List()), http.StatusNotFound)
}

// Assets streams static files from object storage.
type Assets struct {
	store AssetStore
	log   *slog.Logger
}

func NewAssets(s AssetStore, log *slog.Logger) *Assets {
	return &Assets{store: s, log: log}
}

// Serve handles GET /assets/*.
func (a *Assets) Serve(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if key == "" || strings.Contains(key, "..") {
		http.NotFound(w, r)
		return
	}

	asset, err := a.store.Open(r.Context(), key)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		a.log.ErrorContext(r.Context(), "open asset", "key", key, "error", err)
		http.Error(w, "asset unavailable", http.StatusInternalServerError)
		return
	}
	defer asset.Body.Close()

	if asset.ContentType != "" {
		w.Header().Set("Content-Type", asset.ContentType)
	}
	if asset.Size >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(asset.Size, 10))
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := io.Copy(w, asset.Body); err != nil {
		a.log.WarnContext(r.Context(), "stream asset", "key", key, "error", err)
	}
}
