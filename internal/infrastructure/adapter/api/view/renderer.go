package view

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/locale"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templates embed.FS

const dateLayout = "2006-01-02 15:04"

// Renderer renders the HTML views with the request's language, user and
// support contact filled in.
type Renderer struct {
	locale         *locale.Store
	supportContact string
	tmpl           *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer(store *locale.Store, supportContact string) (*Renderer, error) {
	funcs := template.FuncMap{
		"t":     store.T,
		"tf":    store.Tf,
		"money": func(d decimal.Decimal) string { return entity.FormatMoney(d) },
		"date":  func(t time.Time) string { return t.Format(dateLayout) },
	}

	tmpl, err := template.New("views").Funcs(funcs).ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{
		locale:         store,
		supportContact: supportContact,
		tmpl:           tmpl,
	}, nil
}

// Template returns the parsed template set for gin.Engine.SetHTMLTemplate
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// Render writes the named view
func (r *Renderer) Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Lang"] = middleware.CurrentLanguage(c)
	data["CurrentUser"] = middleware.CurrentUser(c)
	data["Support"] = r.supportContact
	data["Languages"] = locale.SupportedLanguages

	c.HTML(status, name, data)
}

// RenderError writes the generic failure page
func (r *Renderer) RenderError(c *gin.Context, status int) {
	r.Render(c, status, "error.html", nil)
}

// Message translates key into the request's language
func (r *Renderer) Message(c *gin.Context, key string, args ...any) string {
	lang := middleware.CurrentLanguage(c)
	if len(args) == 0 {
		return r.locale.T(lang, key)
	}
	return r.locale.Tf(lang, key, args...)
}
