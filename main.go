// Package main implements a CLI tool that asks which kind of release is being
// made and prints the next semantic version.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"
	"golang.org/x/mod/semver"

	verprompt "github.com/bcomnes/verprompt/pkg"
)

const name = "verprompt"

var errMissingVersion = errors.New("<current-version> positional argument is required")

// rootFlags returns new flag values on every call. urfave/cli keeps the
// parsed value and set state on the flag itself.
func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"t"},
			Value:   string(formatText),
			Usage:   fmt.Sprintf("Output format (supported values: %s)", supportedFormats()),
			Sources: cli.EnvVars("VERPROMPT_FORMAT"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "warn",
			Usage:   "Log level (debug, info, warn, error)",
			Sources: cli.EnvVars("VERPROMPT_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Config file (default is ./" + defaultConfigFile + " when present)",
			Sources: cli.EnvVars("VERPROMPT_CONFIG"),
		},
		&cli.StringSliceFlag{
			Name:    "select",
			Aliases: []string{"s"},
			Usage: "Answer the questions without prompting, one shortcode or number per question " +
				"(e.g. --select minor --select alpha). May be repeated.",
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newApp wires the command tree to the given streams. Questions are written
// to errOut so that out only carries the result.
func newApp(in io.Reader, out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     "choose the next semantic version of a package",
		UsageText: name + " [options] <current-version>",
		ArgsUsage: "<current-version>",
		Description: `Asks which kind of release is being made (build, patch, minor, major or a
prerelease channel) and prints the resulting version.

When the current version is a prerelease (e.g. 2.0.0-alpha.2) the choices are
limited to its lifecycle: stay in the channel, move to a later channel (alpha,
beta, rc) or go to production. For a production release, a patch, minor or
major bump is followed by a second question asking whether it is a prerelease.

Examples:
  verprompt 2.0.0
  verprompt --select minor --select alpha 2.0.0
  verprompt --format json 2.1.0-rc.10
  verprompt choices 2.0.0-alpha.2`,
		Version:   Version,
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags:     rootFlags(),
		Commands:  []*cli.Command{choicesCmd()},
		Action:    bumpAction,
	}
}

func bumpAction(ctx context.Context, cmd *cli.Command) error {
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

	var prompter verprompt.Prompter
	if answers := cmd.StringSlice("select"); len(answers) > 0 {
		prompter = verprompt.NewScriptedPrompter(answers...)
	} else {
		prompter = verprompt.NewLinePrompter(cmd.Root().Reader, cmd.Root().ErrWriter)
	}

	bump, err := verprompt.New(prompter, verprompt.WithLogger(logger)).Run(ctx, current)
	if err != nil {
		return err
	}
	logger.Info("version selected",
		"old", bump.OldVersion,
		"new", bump.NewVersion,
		"releaseType", bump.ReleaseType)

	return writeOutput(cmd.Root().Writer, outputFormat(cfg.Format), bump, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, bump.NewVersion)
		return err
	})
}

// currentVersionArg returns the single positional argument with any "v"
// prefix removed, rejecting anything that is not a full semantic version.
func currentVersionArg(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", errMissingVersion
	}
	arg := cmd.Args().First()
	if strings.HasPrefix(arg, "-") {
		return "", errors.New("flags must be specified before the version, please reorder your arguments")
	}

	canonical := "v" + strings.TrimPrefix(arg, "v")
	if !semver.IsValid(canonical) || semver.Canonical(canonical) != canonical {
		return "", fmt.Errorf("current version %q is not a valid major.minor.patch semver", arg)
	}
	return strings.TrimPrefix(canonical, "v"), nil
}
