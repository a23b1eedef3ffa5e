package server

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/UnknownOlympus/employee-directory/internal/lib/logger/sl"
	"github.com/UnknownOlympus/employee-directory/internal/models"
	"github.com/UnknownOlympus/employee-directory/internal/services/employees"
)

//go:embed templates/directory.html
var templatesFS embed.FS

var directoryTemplate = template.Must(template.New("directory.html").Funcs(template.FuncMap{
	"pathEscape": func(identifier models.EmployeeID) string { return url.PathEscape(string(identifier)) },
}).ParseFS(templatesFS, "templates/directory.html"))

// Directory is the page state machine the UI drives.
type Directory interface {
	Screen() employees.Screen
	Search(query string)
	GoTo(page int)
	Prev()
	Next()
	Edit(identifier models.EmployeeID) bool
	SetForm(input models.EmployeeInput)
	CancelEdit()
	Submit(ctx context.Context) error
	Delete(ctx context.Context, identifier models.EmployeeID) error
}

// UI serves the single directory page. Every action redirects back to it; failures are
// logged and the page is shown as it is.
type UI struct {
	directory Directory
	log       *slog.Logger
}

func NewUI(directory Directory, log *slog.Logger) *UI {
	return &UI{directory: directory, log: log}
}

// Register mounts the page and its actions on mux.
func (u *UI) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", u.page)
	mux.HandleFunc("GET /api/screen", u.screen)
	mux.HandleFunc("POST /search", u.search)
	mux.HandleFunc("POST /page", u.paginate)
	mux.HandleFunc("POST /employees", u.submit)
	mux.HandleFunc("POST /employees/{id}/edit", u.edit)
	mux.HandleFunc("POST /employees/{id}/delete", u.remove)
	mux.HandleFunc("POST /form/cancel", u.cancel)
}

func (u *UI) page(writer http.ResponseWriter, req *http.Request) {
	var buf bytes.Buffer
	if err := directoryTemplate.Execute(&buf, u.directory.Screen()); err != nil {
		u.log.ErrorContext(req.Context(), "Failed to render directory page", sl.Err(err))
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(writer); err != nil {
		u.log.WarnContext(req.Context(), "Failed to write directory page", sl.Err(err))
	}
}

func (u *UI) screen(writer http.ResponseWriter, req *http.Request) {
	writer.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(writer).Encode(u.directory.Screen()); err != nil {
		u.log.ErrorContext(req.Context(), "Failed to write screen", sl.Err(err))
	}
}

func (u *UI) search(writer http.ResponseWriter, req *http.Request) {
	u.directory.Search(req.FormValue("q"))
	backToPage(writer, req)
}

func (u *UI) paginate(writer http.ResponseWriter, req *http.Request) {
	switch value := req.FormValue("page"); value {
	case "prev":
		u.directory.Prev()
	case "next":
		u.directory.Next()
	default:
		page, err := strconv.Atoi(value)
		if err != nil {
			u.log.DebugContext(req.Context(), "Ignoring invalid page number", "page", value)
			break
		}
		u.directory.GoTo(page)
	}

	backToPage(writer, req)
}

func (u *UI) submit(writer http.ResponseWriter, req *http.Request) {
	u.directory.SetForm(models.EmployeeInput{
		Name:  req.FormValue("name"),
		Email: req.FormValue("email"),
		Role:  req.FormValue("role"),
	})

	if err := u.directory.Submit(req.Context()); err != nil {
		u.log.DebugContext(req.Context(), "Submit failed", sl.Err(err))
	}

	backToPage(writer, req)
}

func (u *UI) edit(writer http.ResponseWriter, req *http.Request) {
	u.directory.Edit(models.EmployeeID(req.PathValue("id")))
	backToPage(writer, req)
}

func (u *UI) remove(writer http.ResponseWriter, req *http.Request) {
	if err := u.directory.Delete(req.Context(), models.EmployeeID(req.PathValue("id"))); err != nil {
		u.log.DebugContext(req.Context(), "Delete failed", sl.Err(err))
	}

	backToPage(writer, req)
}

func (u *UI) cancel(writer http.ResponseWriter, req *http.Request) {
	u.directory.CancelEdit()
	backToPage(writer, req)
}

func backToPage(writer http.ResponseWriter, req *http.Request) {
	http.Redirect(writer, req, "/", http.StatusSeeOther)
}
