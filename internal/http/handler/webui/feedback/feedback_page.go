package feedback

import (
	"context"
	"html/template"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pkg/errors"

	"github.com/bornholm/feedback/internal/http/handler/webui/common"
	"github.com/bornholm/feedback/internal/http/handler/webui/common/component"
	"github.com/bornholm/feedback/internal/http/handler/webui/common/form"
	"github.com/bornholm/feedback/internal/slogx"
	"github.com/bornholm/feedback/internal/store"
)

type FeedbackPageVModel struct {
	Page component.PageVModel
	Form *form.Form
}

func (h *Handler) getFeedbackPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillFeedbackPageViewModel(w, r, newFeedbackForm(h.logger))
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	templ.Handler(FeedbackPage(*vmodel)).ServeHTTP(w, r)
}

func (h *Handler) postFeedbackPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	feedbackForm := newFeedbackForm(h.logger)

	if err := feedbackForm.Handle(r); err != nil {
		common.HandleError(w, r, common.NewBadRequest(err, "The submitted form could not be read."))
		return
	}

	var created *store.Review

	accepted, err := feedbackForm.Submit(ctx, func(ctx context.Context, values form.Values) error {
		review, err := reviewFromValues(values)
		if err != nil {
			return errors.WithStack(err)
		}

		if err := h.reviews.Create(ctx, review); err != nil {
			return errors.WithStack(err)
		}

		created = review

		return nil
	})
	if err != nil {
		submissionsTotal.WithLabelValues(outcomeFailed).Inc()
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if !accepted {
		submissionsTotal.WithLabelValues(outcomeRejected).Inc()
		observeFieldErrors(feedbackForm.Errors())

		vmodel, err := h.fillFeedbackPageViewModel(w, r, feedbackForm)
		if err != nil {
			common.HandleError(w, r, errors.WithStack(err))
			return
		}

		templ.Handler(FeedbackPage(*vmodel), templ.WithStatus(http.StatusUnprocessableEntity)).ServeHTTP(w, r)
		return
	}

	submissionsTotal.WithLabelValues(outcomeAccepted).Inc()

	h.logger.InfoContext(ctx, "review submitted", "review_id", created.PublicID, "rating", created.Rating)

	if err := h.addFlash(w, r, flashSubmitted); err != nil {
		h.logger.WarnContext(ctx, "could not add flash message", slogx.Error(errors.WithStack(err)))
	}

	http.Redirect(w, r, string(baseURL(ctx, "results")), http.StatusSeeOther)
}

// reviewFromValues shapes a review from a validated submission. Values are
// kept as validated so the stored review satisfies the form rules.
func reviewFromValues(values form.Values) (*store.Review, error) {
	rating, err := strconv.Atoi(values["rating"])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid rating '%s'", values["rating"])
	}

	return store.NewReview(
		values["name"],
		values["email_address"],
		rating,
		values["comment"],
	), nil
}

func (h *Handler) fillFeedbackPageViewModel(w http.ResponseWriter, r *http.Request, feedbackForm *form.Form) (*FeedbackPageVModel, error) {
	vmodel := &FeedbackPageVModel{
		Form: feedbackForm,
	}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		func(ctx context.Context, vmodel *FeedbackPageVModel, r *http.Request) error {
			vmodel.Page = component.PageVModel{
				Title:  "Feedback",
				Navbar: component.FillNavbarVModel(ctx),
				Flash:  h.popFlash(w, r),
			}
			return nil
		},
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func FeedbackPage(vmodel FeedbackPageVModel) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		rendered, err := templ.ToGoHTML(ctx, vmodel.Form.Render(feedbackView(ctx), feedbackLayout))
		if err != nil {
			return errors.WithStack(err)
		}

		data := struct{ Form template.HTML }{Form: rendered}

		if err := templates.ExecuteTemplate(w, "feedback_page.html", data); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})

	return component.Page(vmodel.Page, body)
}
