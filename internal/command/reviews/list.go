package reviews

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/bornholm/feedback/internal/store"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown format")

func (c *commands) listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List reviews, newest first",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of reviews to list, 0 for all",
				Value: 20,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format, text or yaml",
				Value: formatText,
			},
		},
		Action: c.list,
	}
}

func (c *commands) list(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	if format != formatText && format != formatYAML {
		return errors.Wrapf(ErrUnknownFormat, "format '%s'", format)
	}

	repo, err := c.repository(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	reviews, err := repo.List(ctx, cmd.Int("limit"), 0)
	if err != nil {
		return errors.Wrap(err, "could not list reviews")
	}

	if format == formatYAML {
		return errors.WithStack(store.WriteReviewRecords(c.out, reviews))
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tRATING\tNAME\tEMAIL\tSUBMITTED")

	for _, r := range reviews {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.PublicID, store.RatingLabel(r.Rating), r.Name, r.EmailAddress, humanize.Time(r.CreatedAt))
	}

	return errors.WithStack(w.Flush())
}
