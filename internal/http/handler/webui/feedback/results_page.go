package feedback

import (
	"context"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/pkg/errors"

	"github.com/bornholm/feedback/internal/http/handler/webui/common"
	"github.com/bornholm/feedback/internal/http/handler/webui/common/component"
	"github.com/bornholm/feedback/internal/store"
	"github.com/bornholm/feedback/internal/store/repository/review"
)

var (
	ErrInvalidPage    = errors.New("invalid page")
	ErrPageOutOfRange = errors.New("page out of range")
)

type TimelineEntry struct {
	Name         string
	RatingLabel  string
	Comment      template.HTML
	ISODate      string
	RelativeDate string
}

type ResultsPageVModel struct {
	Page         component.PageVModel
	Total        int64
	Distribution review.Distribution
	Reviews      []*store.Review
	CurrentPage  int
	PageCount    int
}

func (h *Handler) getResultsPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillResultsPageViewModel(w, r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	templ.Handler(ResultsPage(*vmodel)).ServeHTTP(w, r)
}

func (h *Handler) fillResultsPageViewModel(w http.ResponseWriter, r *http.Request) (*ResultsPageVModel, error) {
	vmodel := &ResultsPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		func(ctx context.Context, vmodel *ResultsPageVModel, r *http.Request) error {
			vmodel.Page = component.PageVModel{
				Title:  "Results",
				Navbar: component.FillNavbarVModel(ctx),
				Flash:  h.popFlash(w, r),
			}
			return nil
		},
		h.fillResultsPageDistributionVModel,
		h.fillResultsPageTimelineVModel,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillResultsPageDistributionVModel(ctx context.Context, vmodel *ResultsPageVModel, r *http.Request) error {
	distribution, err := h.reviews.Distribution(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Distribution = distribution

	return nil
}

func (h *Handler) fillResultsPageTimelineVModel(ctx context.Context, vmodel *ResultsPageVModel, r *http.Request) error {
	total, err := h.reviews.Count(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Total = total
	vmodel.PageCount = int((total + int64(h.opts.PageSize) - 1) / int64(h.opts.PageSize))
	vmodel.CurrentPage = 1

	if rawPage := r.URL.Query().Get("page"); rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		if err != nil || page < 1 {
			return common.NewBadRequest(errors.Wrapf(ErrInvalidPage, "page %q", rawPage), "This page does not exist.")
		}

		vmodel.CurrentPage = page
	}

	if total > 0 && vmodel.CurrentPage > vmodel.PageCount {
		return common.NewNotFound(errors.Wrapf(ErrPageOutOfRange, "page %d of %d", vmodel.CurrentPage, vmodel.PageCount), "This page does not exist.")
	}

	reviews, err := h.reviews.List(ctx, h.opts.PageSize, (vmodel.CurrentPage-1)*h.opts.PageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Reviews = reviews

	return nil
}

type resultsPageData struct {
	Total       int64
	FeedbackURL string
	Chart       []ChartSegment
	Legend      []LegendEntry
	Reviews     []TimelineEntry
	PreviousURL string
	NextURL     string
}

func ResultsPage(vmodel ResultsPageVModel) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		data := resultsPageData{
			Total:       vmodel.Total,
			FeedbackURL: string(baseURL(ctx, "feedback")),
			Chart:       chartSegments(vmodel.Distribution),
			Legend:      legendEntries(vmodel.Distribution),
			Reviews:     make([]TimelineEntry, 0, len(vmodel.Reviews)),
		}

		for _, r := range vmodel.Reviews {
			comment, err := renderComment(r.Comment)
			if err != nil {
				return errors.WithStack(err)
			}

			data.Reviews = append(data.Reviews, TimelineEntry{
				Name:         r.Name,
				RatingLabel:  store.RatingLabel(r.Rating),
				Comment:      comment,
				ISODate:      r.CreatedAt.UTC().Format(time.RFC3339),
				RelativeDate: component.RelativeTime(r.CreatedAt),
			})
		}

		if vmodel.CurrentPage > 1 {
			data.PreviousURL = string(component.CurrentURL(ctx, component.WithValues("page", strconv.Itoa(vmodel.CurrentPage-1))))
		}

		if vmodel.CurrentPage < vmodel.PageCount {
			data.NextURL = string(component.CurrentURL(ctx, component.WithValues("page", strconv.Itoa(vmodel.CurrentPage+1))))
		}

		if err := templates.ExecuteTemplate(w, "results_page.html", data); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})

	return component.Page(vmodel.Page, body)
}
