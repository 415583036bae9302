// Package web holds the server-rendered pages and the static assets they
// reference. Both are embedded into the binary.
package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/MKhiriev/go-natours/models"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.gohtml
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Page names accepted by Render.
const (
	PageOverview = "overview"
	PageTour     = "tour"
	PageLogin    = "login"
	PageAccount  = "account"
	PageError    = "error"
)

// AlertBooking is the alert query value set by the checkout success URL.
const AlertBooking = "booking"

var alertMessages = map[string]string{
	AlertBooking: "Your booking was successful! Please check your email for a confirmation. " +
		"If your booking doesn't show up here immediately, please come back later.",
}

var ErrUnknownPage = errors.New("unknown page")

// AlertMessage returns the banner text for an alert query value, or an
// empty string when the value is unknown.
func AlertMessage(key string) string {
	return alertMessages[key]
}

// Page is the data every template receives.
type Page struct {
	Title string

	// User is the logged-in user, nil for anonymous visitors.
	User *models.User

	// Alert is rendered as a success banner that the page script hides
	// after a few seconds.
	Alert string

	Tours   []models.Tour
	Tour    *models.Tour
	Reviews []models.Review

	// Message is the error text on the error page.
	Message string
}

// Views renders the embedded page templates.
type Views struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"price": func(d decimal.Decimal) string { return d.StringFixed(0) },
	"month": func(p models.Tour) string {
		if len(p.StartDates) == 0 {
			return ""
		}
		return p.StartDates[0].Format("January 2006")
	},
	"firstWord": func(s string) string {
		if f := strings.Fields(s); len(f) > 0 {
			return f[0]
		}
		return s
	},
	"stars": func(rating int) []bool {
		stars := make([]bool, 5)
		for i := range stars {
			stars[i] = i < rating
		}
		return stars
	},
}

// NewViews parses every page together with the shared layout.
func NewViews() (*Views, error) {
	pages := []string{PageOverview, PageTour, PageLogin, PageAccount, PageError}

	views := &Views{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFiles,
			"templates/base.gohtml",
			"templates/"+page+".gohtml",
		)
		if err != nil {
			return nil, fmt.Errorf("error parsing %s template: %w", page, err)
		}
		views.pages[page] = tmpl
	}

	return views, nil
}

// Render executes page into w. The output is buffered so a template error
// never leaves a half-written page behind.
func (v *Views) Render(w io.Writer, page string, data Page) error {
	tmpl, ok := v.pages[page]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("error rendering %s: %w", page, err)
	}

	_, err := buf.WriteTo(w)
	return err
}

// Static returns the asset tree rooted so that "css/style.css" resolves.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
