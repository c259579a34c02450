package form

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

func render(t *testing.T, component templ.Component) string {
	t.Helper()

	var buf bytes.Buffer
	if err := component.Render(context.Background(), &buf); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return buf.String()
}

func assertContains(t *testing.T, html string, fragments ...string) {
	t.Helper()

	for _, f := range fragments {
		if !strings.Contains(html, f) {
			t.Errorf("expected output to contain %q, got:\n%s", f, html)
		}
	}
}

func TestRenderTextField(t *testing.T) {
	form := New(newTestConfig(t))
	form.SetValue("email_address", `john"<doe>`)
	form.ValidateField("email_address")

	component, err := form.RenderField("email_address", WithSize("small"), WithFullWidth())
	if err != nil {
		t.Fatalf("%+v", err)
	}

	html := render(t, component)

	assertContains(t, html,
		`type="text"`,
		`name="email_address"`,
		`value="john&#34;&lt;doe&gt;"`,
		`aria-describedby="email_address-error"`,
		`aria-invalid="true"`,
		`id="email_address-error"`,
		`>Invalid email</p>`,
		`is-small`,
		`is-fullwidth`,
		`has-error`,
	)
}

func TestRenderFieldWithoutErrorShowsPlaceholder(t *testing.T) {
	form := New(newTestConfig(t))

	component, err := form.RenderField("name")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	html := render(t, component)

	assertContains(t, html, `id="name-error"`, "&nbsp;</p>")

	if strings.Contains(html, "aria-invalid") {
		t.Errorf("expected no aria-invalid attribute, got:\n%s", html)
	}
}

func TestRenderTextareaField(t *testing.T) {
	form := New(newTestConfig(t))
	form.SetValue("comment", "Lorem <b>ipsum</b>")

	component, err := form.RenderField("comment", WithRows(7))
	if err != nil {
		t.Fatalf("%+v", err)
	}

	html := render(t, component)

	assertContains(t, html,
		`<textarea`,
		`rows="7"`,
		`Lorem &lt;b&gt;ipsum&lt;/b&gt;</textarea>`,
	)
}

func TestRenderRatingField(t *testing.T) {
	form := New(newTestConfig(t))

	component, err := form.RenderField("rating", WithChoiceLabel(func(choice int) string {
		return "choice " + RatingChoices[choice-1]
	}))
	if err != nil {
		t.Fatalf("%+v", err)
	}

	html := render(t, component)

	assertContains(t, html,
		`rating-empty is-active`,
		`Select rating from 1 to 5`,
		`value="" checked`,
		`aria-label="choice 1"`,
		`aria-label="choice 5"`,
	)

	if strings.Contains(html, `is-selected`) {
		t.Errorf("expected no selected choice, got:\n%s", html)
	}

	form.SetValue("rating", "2")

	component, err = form.RenderField("rating")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	html = render(t, component)

	assertContains(t, html, `value="2" aria-label="2 Stars" checked`)

	if strings.Contains(html, "rating-empty is-active") {
		t.Errorf("expected empty affordance to be inactive, got:\n%s", html)
	}

	if count := strings.Count(html, "is-selected"); count != 2 {
		t.Errorf("expected 2 highlighted choices, got %d", count)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	renderer := &DefaultFieldRenderer{}

	_, err := renderer.RenderField(FieldContext{Name: "color", Kind: Kind("select"), Options: NewRenderOptions()})
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestRenderAttributes(t *testing.T) {
	attrs := renderAttributes(
		map[string]string{"maxlength": "256", "name": "override"},
		map[string]string{"data-Test": `a"b`, "onclick": "alert(1)", "bad name": "x"},
	)

	got := string(attrs)
	want := ` data-test="a&#34;b" maxlength="256"`

	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderForm(t *testing.T) {
	form := New(newTestConfig(t))

	view := View{
		AccessibilityLabel: "Feedback form",
		Title:              "Feedback Form",
		Action:             "/feedback",
		FieldEndpoint:      "/feedback/fields",
	}

	html := render(t, form.Render(view, func(fields Lookup) templ.Component {
		return templ.Join(
			fields.Field("comment"),
			fields.Field("name"),
		)
	}))

	assertContains(t, html,
		`aria-label="Feedback form"`,
		`<h2 class="form-title">Feedback Form</h2>`,
		`action="/feedback"`,
		`data-field-endpoint="/feedback/fields"`,
		`type="submit">Submit</button>`,
	)

	if strings.Index(html, `name="comment"`) > strings.Index(html, `name="name"`) {
		t.Errorf("expected layout order to be honored, got:\n%s", html)
	}

	if strings.Contains(html, `name="rating"`) {
		t.Errorf("expected only laid out fields to be rendered, got:\n%s", html)
	}
}

func TestRenderFormDefaultLayout(t *testing.T) {
	form := New(newTestConfig(t))

	html := render(t, form.Render(View{Title: "All fields", SubmitLabel: "Send"}, nil))

	for _, name := range form.Config().Names() {
		assertContains(t, html, `data-field="`+name+`"`)
	}

	assertContains(t, html, `type="submit">Send</button>`)
}

func TestRenderFormUnknownField(t *testing.T) {
	form := New(newTestConfig(t))

	component := form.Render(View{Title: "Broken"}, func(fields Lookup) templ.Component {
		return fields.Field("unknown")
	})

	var buf bytes.Buffer
	err := component.Render(context.Background(), &buf)
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

type stubRenderer struct {
	rendered []string
}

func (r *stubRenderer) RenderField(ctx FieldContext) (templ.Component, error) {
	r.rendered = append(r.rendered, ctx.Name)
	return templ.Raw("<stub>" + ctx.Name + "</stub>"), nil
}

func TestCustomFieldRenderer(t *testing.T) {
	byName := &stubRenderer{}
	byKind := &stubRenderer{}

	form := New(
		newTestConfig(t),
		WithFieldRenderer("name", byName),
		WithFieldRenderer(string(KindTextarea), byKind),
	)

	html := render(t, form.Render(View{}, nil))

	assertContains(t, html, "<stub>name</stub>", "<stub>comment</stub>", `name="email_address"`)

	if len(byName.rendered) != 1 || byName.rendered[0] != "name" {
		t.Errorf("unexpected name renderer calls: %v", byName.rendered)
	}
	if len(byKind.rendered) != 1 || byKind.rendered[0] != "comment" {
		t.Errorf("unexpected kind renderer calls: %v", byKind.rendered)
	}
}

func TestRenderRatingFieldOutOfRange(t *testing.T) {
	form := New(newTestConfig(t))
	form.SetValue("rating", "9")

	component, err := form.RenderField("rating")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	html := render(t, component)

	if count := strings.Count(html, "is-selected"); count != 0 {
		t.Errorf("expected no highlighted choice, got %d", count)
	}

	if count := strings.Count(html, " checked"); count != 0 {
		t.Errorf("expected no checked choice, got %d", count)
	}
}

func TestRenderPlaceholderIsNotDuplicated(t *testing.T) {
	config := MustConfig(Field{
		Name:        "name",
		Kind:        KindText,
		Label:       "Name",
		Placeholder: "Jane Doe",
		Attributes:  map[string]string{"placeholder": "Override", "maxlength": "256"},
		Validate:    Rules(),
	})

	component, err := New(config).RenderField("name", WithAttributes(map[string]string{"Placeholder": "Option"}))
	if err != nil {
		t.Fatalf("%+v", err)
	}

	html := render(t, component)

	if count := strings.Count(html, "placeholder="); count != 1 {
		t.Errorf("expected a single placeholder attribute, got %d:\n%s", count, html)
	}

	assertContains(t, html, `placeholder="Jane Doe"`, `maxlength="256"`)
}
