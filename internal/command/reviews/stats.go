package reviews

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

const barWidth = 30

func (c *commands) statsCommand() *cli.Command {
	return &cli.Command{
		Name:   "stats",
		Usage:  "Print the rating distribution",
		Action: c.stats,
	}
}

func (c *commands) stats(ctx context.Context, cmd *cli.Command) error {
	repo, err := c.repository(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	distribution, err := repo.Distribution(ctx)
	if err != nil {
		return errors.Wrap(err, "could not compute distribution")
	}

	total := distribution.Total()

	fmt.Fprintf(c.out, "%s reviews\n", humanize.Comma(total))

	if total == 0 {
		return nil
	}

	var sum int64
	for _, rc := range distribution {
		sum += int64(rc.Rating) * rc.Count
	}

	fmt.Fprintf(c.out, "average rating: %.2f\n\n", float64(sum)/float64(total))

	for _, rc := range distribution {
		ratio := float64(rc.Count) / float64(total)
		bar := strings.Repeat("#", int(ratio*barWidth+0.5))

		fmt.Fprintf(c.out, "%-10s %-*s %5.1f%% (%d)\n", rc.Label, barWidth, bar, ratio*100, rc.Count)
	}

	return nil
}
