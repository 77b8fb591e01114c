package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	verprompt "github.com/bcomnes/verprompt/pkg"
)

func choicesCmd() *cli.Command {
	return &cli.Command{
		Name:      "choices",
		Usage:     "List the next versions offered for a version without prompting",
		ArgsUsage: "<current-version>",
		Description: `Prints the release type choices that would be presented for the given
version, in presentation order. The shortcodes can be passed to --select.`,
		Action: func(_ context.Context, cmd *cli.Command) error {
			current, err := currentVersionArg(cmd)
			if err != nil {
				return err
			}
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.Root().ErrWriter, cfg.LogLevel)
			if err != nil {
				return err
			}

			choices, err := verprompt.ReleaseChoices(current)
			if err != nil {
				return err
			}
			logger.Debug("generated choices", "version", current, "count", len(choices))

			return writeOutput(cmd.Root().Writer, outputFormat(cfg.Format), choices, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				for i, c := range choices {
					fmt.Fprintf(tw, "%d)\t%s\t%s\t%s\n", i+1, c.Short, c.Value, c.Label)
				}
				return tw.Flush()
			})
		},
	}
}
