package reviews

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"

	"github.com/bornholm/feedback/internal/http/handler/webui/common/form"
	"github.com/bornholm/feedback/internal/http/handler/webui/feedback"
	"github.com/bornholm/feedback/internal/store"
)

var ErrInvalidReview = errors.New("invalid review")

func (c *commands) importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Import reviews from a YAML file",
		ArgsUsage: "FILE.yml",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "skip-invalid",
				Usage: "Skip reviews failing validation instead of aborting",
			},
		},
		Action: c.importReviews,
	}
}

func (c *commands) importReviews(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return errors.New("missing file argument")
	}

	file, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}

	defer file.Close()

	records, err := store.ReadReviewRecords(file)
	if err != nil {
		return errors.Wrapf(err, "could not read '%s'", path)
	}

	repo, err := c.repository(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	// Every record is checked before anything is written
	valid := make([]store.ReviewRecord, 0, len(records))
	invalid := 0

	for i, r := range records {
		if err := validateRecord(r); err != nil {
			if !cmd.Bool("skip-invalid") {
				return errors.Wrapf(err, "review #%d", i)
			}

			fmt.Fprintf(c.out, "skipping review #%d: %s\n", i, err)
			invalid++
			continue
		}

		valid = append(valid, r)
	}

	imported, existing := 0, 0

	for _, r := range valid {
		if r.ID != "" {
			_, err := repo.GetByPublicID(ctx, r.ID)
			if err == nil {
				existing++
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(err)
			}
		}

		if err := repo.Create(ctx, r.Review()); err != nil {
			return errors.Wrapf(err, "could not import review from '%s'", r.Name)
		}

		imported++
	}

	fmt.Fprintf(c.out, "imported %d reviews, %d already present, %d invalid\n", imported, existing, invalid)

	return nil
}

// validateRecord applies the rules of the feedback form to an imported review
func validateRecord(r store.ReviewRecord) error {
	f := form.New(feedback.FeedbackConfig)

	f.SetValue("name", r.Name)
	f.SetValue("email_address", r.EmailAddress)
	f.SetValue("rating", strconv.Itoa(r.Rating))
	f.SetValue("comment", r.Comment)

	if !f.ValidateAll() {
		return nil
	}

	messages := make([]string, 0)
	for _, name := range feedback.FeedbackConfig.Names() {
		if message := f.Error(name); message != "" {
			messages = append(messages, name+": "+message)
		}
	}

	return errors.Wrap(ErrInvalidReview, strings.Join(messages, ", "))
}
