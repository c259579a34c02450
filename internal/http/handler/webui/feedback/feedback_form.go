package feedback

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"io"
	"log/slog"

	"github.com/a-h/templ"
	"github.com/pkg/errors"

	"github.com/bornholm/feedback/internal/http/handler/webui/common/form"
)

//go:embed feedback.yml
var rawFeedbackDefinition []byte

// FeedbackConfig is the configuration of the feedback form
var FeedbackConfig = mustLoadDefinition(rawFeedbackDefinition)

func mustLoadDefinition(data []byte) *form.Config {
	config, err := form.LoadDefinition(bytes.NewReader(data))
	if err != nil {
		panic(errors.Wrap(err, "could not load feedback form definition"))
	}

	return config
}

func newFeedbackForm(logger *slog.Logger) *form.Form {
	return form.New(FeedbackConfig, form.WithLogger(logger))
}

func feedbackView(ctx context.Context) form.View {
	return form.View{
		AccessibilityLabel: "Feedback form",
		Title:              "Feedback Form",
		Action:             string(baseURL(ctx, "feedback")),
		FieldEndpoint:      string(baseURL(ctx, "feedback", "fields")),
		SubmitLabel:        "Submit",
	}
}

type feedbackLayoutVModel struct {
	Name         template.HTML
	EmailAddress template.HTML
	Rating       template.HTML
	Comment      template.HTML
}

// feedbackLayout places name and email side by side, the rating and
// the comment below them
func feedbackLayout(fields form.Lookup) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var (
			vmodel feedbackLayoutVModel
			err    error
		)

		parts := []struct {
			target *template.HTML
			field  templ.Component
		}{
			{&vmodel.Name, fields.Field("name", form.WithSize("small"), form.WithFullWidth())},
			{&vmodel.EmailAddress, fields.Field("email_address", form.WithSize("small"), form.WithFullWidth())},
			{&vmodel.Rating, fields.Field("rating")},
			{&vmodel.Comment, fields.Field("comment", form.WithRows(4), form.WithFullWidth())},
		}

		for _, p := range parts {
			if *p.target, err = templ.ToGoHTML(ctx, p.field); err != nil {
				return errors.WithStack(err)
			}
		}

		if err := templates.ExecuteTemplate(w, "feedback_form.html", vmodel); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
}
