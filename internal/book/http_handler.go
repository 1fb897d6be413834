package book

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"bookcatalog/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	logger  *slog.Logger
}

func NewHTTPHandler(service *Service, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, logger: logger}
}

// Routes registers the catalog on mux under /api/books and /books. The
// collection routes also answer with a trailing slash.
func (h *HTTPHandler) Routes(mux *http.ServeMux) {
	for _, prefix := range []string{"/api/books", "/books"} {
		for _, collection := range []string{prefix, prefix + "/{$}"} {
			mux.HandleFunc("GET "+collection, h.List)
			mux.HandleFunc("POST "+collection, h.Create)
			mux.HandleFunc("DELETE "+collection, h.DeleteAll)
		}
		mux.HandleFunc("GET "+prefix+"/{id}", h.Get)
		mux.HandleFunc("POST "+prefix+"/{id}", h.AddComment)
		mux.HandleFunc("DELETE "+prefix+"/{id}", h.Delete)
	}
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	h.writeJSON(w, r, books, err)
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, ok := readBody(w, r)
	if !ok {
		return
	}
	created, err := h.service.Create(r.Context(), fields("title"))
	h.writeJSON(w, r, created, err)
}

// DeleteAll handles DELETE /books
func (h *HTTPHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	msg, err := h.service.DeleteAll(r.Context())
	h.writeText(w, r, msg, err)
}

// Get handles GET /books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), r.PathValue("id"))
	h.writeJSON(w, r, b, err)
}

// AddComment handles POST /books/{id}
func (h *HTTPHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	fields, ok := readBody(w, r)
	if !ok {
		return
	}
	b, err := h.service.AddComment(r.Context(), r.PathValue("id"), fields("comment"))
	h.writeJSON(w, r, b, err)
}

// Delete handles DELETE /books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	msg, err := h.service.Delete(r.Context(), r.PathValue("id"))
	h.writeText(w, r, msg, err)
}

func (h *HTTPHandler) writeJSON(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, v)
}

func (h *HTTPHandler) writeText(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.Text(w, http.StatusOK, msg)
}

// writeError maps a failed operation to its response. Diagnostics are client
// input problems and go out as status 200 text; everything else is a 500 with
// a generic body.
func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var diag Diagnostic
	if errors.As(err, &diag) {
		httpx.Text(w, http.StatusOK, diag.Error())
		return
	}
	h.logger.Error("book request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", httpx.RequestIDFrom(r),
		"error", err,
	)
	httpx.ServerError(w)
}

// readBody returns a lookup over the request fields. JSON bodies are used when
// the content type says so, form and query values otherwise. A body that does
// not decode yields no fields. A body over the size limit is answered with 413
// and ok is false.
func readBody(w http.ResponseWriter, r *http.Request) (fields func(string) string, ok bool) {
	none := func(string) string { return "" }

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if r.Body == nil {
			return none, true
		}
		var doc map[string]any
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			if tooLarge(err) {
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				return nil, false
			}
			return none, true
		}
		return func(key string) string { return fieldString(doc[key]) }, true
	}

	if err := r.ParseForm(); err != nil {
		if tooLarge(err) {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return nil, false
		}
		return none, true
	}
	return r.Form.Get, true
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// fieldString converts a decoded JSON value to the text stored for it. Falsy
// values (null, false, 0, "") and nested arrays or objects count as missing.
func fieldString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return v.String()
		}
		if f != 0 {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	return ""
}
