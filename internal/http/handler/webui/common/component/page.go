package component

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))

type NavbarLink struct {
	Label  string
	Href   string
	Active bool
}

type NavbarVModel struct {
	Links []NavbarLink
}

type PageVModel struct {
	Title  string
	Navbar *NavbarVModel
	// Flash is a one shot message displayed above the page content
	Flash string
}

type pageVModel struct {
	PageVModel
	StylesheetURL string
	ScriptURL     string
	Body          template.HTML
}

// Page wraps body in the application layout
func Page(vmodel PageVModel, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		html, err := templ.ToGoHTML(ctx, body)
		if err != nil {
			return errors.WithStack(err)
		}

		data := pageVModel{
			PageVModel:    vmodel,
			StylesheetURL: string(BaseURL(ctx, WithPath("assets", "style.css"))),
			ScriptURL:     string(BaseURL(ctx, WithPath("assets", "form.js"))),
			Body:          html,
		}

		if err := templates.ExecuteTemplate(w, "page.html", data); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
}

// FillNavbarVModel returns the application navigation with the link
// matching the current path marked as active
func FillNavbarVModel(ctx context.Context) *NavbarVModel {
	links := []NavbarLink{
		{Label: "Feedback", Href: string(BaseURL(ctx, WithPath("feedback")))},
		{Label: "Results", Href: string(BaseURL(ctx, WithPath("results")))},
	}

	for i := range links {
		links[i].Active = MatchPath(ctx, links[i].Href)
	}

	return &NavbarVModel{Links: links}
}

type ErrorPageVModel struct {
	Message string
}

func ErrorPage(vmodel ErrorPageVModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			data := struct {
				ErrorPageVModel
				HomeURL string
			}{
				ErrorPageVModel: vmodel,
				HomeURL:         string(BaseURL(ctx)),
			}

			return errors.WithStack(templates.ExecuteTemplate(w, "error_page.html", data))
		})

		page := Page(PageVModel{Title: "Error", Navbar: FillNavbarVModel(ctx)}, body)

		return errors.WithStack(page.Render(ctx, w))
	})
}
