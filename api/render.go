package api

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/checkmarble/marble-todos/models"
)

//go:embed templates/*.html static/*
var assetsFS embed.FS

const (
	pageLists    = "lists.html"
	pageNewList  = "new_list.html"
	pageList     = "list.html"
	pageEditList = "edit_list.html"
	pageNotFound = "not_found.html"
	pageError    = "error.html"
)

var pages = []string{pageLists, pageNewList, pageList, pageEditList, pageNotFound, pageError}

var templateFuncs = template.FuncMap{
	"listClass": func(list models.List) string { return list.DisplayClass() },
	"todoClass": func(todo models.Todo) string { return todo.DisplayClass() },
}

// pageData is the view model shared by every page. Pages only read the fields they need.
type pageData struct {
	Flash    Flash
	Lists    []models.List
	List     models.List
	Todos    []models.Todo
	ListName string
	TodoName string
	// shown on the error page so that a failure can be found in the logs
	RequestId string
}

// Renderer executes a page inside the common layout. Each page gets its own template set
// because all of them define the same "content" block.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tmpl, err := template.New("layout.html").
			Funcs(templateFuncs).
			ParseFS(assetsFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse template %s", page)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

func (r *Renderer) render(page string, data pageData) ([]byte, error) {
	tmpl, ok := r.pages[page]
	if !ok {
		return nil, errors.Newf("unknown page %s", page)
	}
	var b bytes.Buffer
	if err := tmpl.ExecuteTemplate(&b, "layout.html", data); err != nil {
		return nil, errors.Wrapf(err, "could not render page %s", page)
	}
	return b.Bytes(), nil
}

// HTML writes the page, falling back to a bare 500 if the template itself fails.
func (r *Renderer) HTML(c *gin.Context, status int, page string, data pageData) {
	body, err := r.render(page, data)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	c.Data(status, "text/html; charset=utf-8", body)
}

func staticFS() http.FileSystem {
	sub, err := fs.Sub(assetsFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
