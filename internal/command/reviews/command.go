package reviews

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/bornholm/feedback/internal/store"
	"github.com/bornholm/feedback/internal/store/repository/review"
)

// StoreFunc opens the store the commands operate on
type StoreFunc func(ctx context.Context) (*store.Store, error)

type commands struct {
	openStore StoreFunc
	out       io.Writer
}

func (c *commands) repository(ctx context.Context) (*review.Repository, error) {
	st, err := c.openStore(ctx)
	if err != nil {
		return nil, err
	}

	return review.NewRepository(st), nil
}

// NewCommand returns the root command of the reviews CLI
func NewCommand(openStore StoreFunc, out io.Writer) *cli.Command {
	c := &commands{
		openStore: openStore,
		out:       out,
	}

	return &cli.Command{
		Name:   "reviews",
		Usage:  "Inspect and manage collected feedback",
		Writer: out,
		Commands: []*cli.Command{
			c.listCommand(),
			c.statsCommand(),
			c.importCommand(),
		},
	}
}
