package form

import (
	"embed"
	"html"
	"html/template"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))

const ratingEmptyLabel = "Select rating from 1 to 5"

// RatingChoices are the values offered by rating fields
var RatingChoices = []string{"1", "2", "3", "4", "5"}

// DefaultFieldRenderer renders fields as plain HTML inputs
type DefaultFieldRenderer struct{}

var _ FieldRenderer = &DefaultFieldRenderer{}

// RenderField renders a field according to its kind
func (r *DefaultFieldRenderer) RenderField(ctx FieldContext) (templ.Component, error) {
	switch ctx.Kind {
	case KindText:
		return DefaultInput(ctx), nil
	case KindTextarea:
		return DefaultTextarea(ctx), nil
	case KindRating:
		return DefaultRating(ctx), nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "could not render field '%s' of kind '%s'", ctx.Name, ctx.Kind)
	}
}

type fieldVModel struct {
	FieldContext
	Attrs      template.HTMLAttr
	EmptyLabel string
	Choices    []ratingChoice
}

type ratingChoice struct {
	ID       string
	Value    string
	Label    string
	Checked  bool
	Selected bool
}

func DefaultInput(ctx FieldContext) templ.Component {
	return templ.FromGoHTML(templates.Lookup("text.html"), newFieldVModel(ctx))
}

func DefaultTextarea(ctx FieldContext) templ.Component {
	return templ.FromGoHTML(templates.Lookup("textarea.html"), newFieldVModel(ctx))
}

func DefaultRating(ctx FieldContext) templ.Component {
	vmodel := newFieldVModel(ctx)
	vmodel.EmptyLabel = ratingEmptyLabel

	current := 0
	if slices.Contains(RatingChoices, ctx.Value) {
		current, _ = strconv.Atoi(ctx.Value)
	}

	vmodel.Choices = make([]ratingChoice, 0, len(RatingChoices))
	for i, value := range RatingChoices {
		choice := i + 1
		vmodel.Choices = append(vmodel.Choices, ratingChoice{
			ID:       ctx.InputID() + "-" + value,
			Value:    value,
			Label:    ctx.Options.ChoiceLabel(choice),
			Checked:  value == ctx.Value,
			Selected: choice <= current,
		})
	}

	return templ.FromGoHTML(templates.Lookup("rating.html"), vmodel)
}

func newFieldVModel(ctx FieldContext) fieldVModel {
	if ctx.Options == nil {
		ctx.Options = NewRenderOptions()
	}

	return fieldVModel{
		FieldContext: ctx,
		Attrs:        renderAttributes(ctx.Attributes, ctx.Options.Attributes),
	}
}

var attributeNamePattern = regexp.MustCompile(`^[a-zA-Z_:][-a-zA-Z0-9_:.]*$`)

// Attributes managed by the form itself
var boundAttributes = []string{
	"id", "name", "value", "type", "checked", "rows", "class", "placeholder",
	"aria-describedby", "aria-invalid", "data-field", "data-field-error",
}

func renderAttributes(sets ...map[string]string) template.HTMLAttr {
	merged := make(map[string]string)
	for _, attrs := range sets {
		for k, v := range attrs {
			merged[strings.ToLower(k)] = v
		}
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		if !attributeNamePattern.MatchString(name) || strings.HasPrefix(name, "on") || slices.Contains(boundAttributes, name) {
			continue
		}
		names = append(names, name)
	}

	slices.Sort(names)

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(" ")
		sb.WriteString(name)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(merged[name]))
		sb.WriteString(`"`)
	}

	return template.HTMLAttr(sb.String())
}
