package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/advdv/agres/agcdkutil"
	"github.com/advdv/agres/cmd/agres/internal/config"
	"github.com/advdv/agres/cmd/agres/internal/initwizard"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

func initCmd() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Initialize a project configuration file through a wizard",
		ArgsUsage: "[directory]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "accessible",
				Usage: "Run the wizard in accessible (non-TUI) mode",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing configuration file",
			},
		},
		Action: runInit,
	}
}

func runInit(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.Args().First()
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return errors.Wrap(err, "failed to get current working directory")
		}
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return errors.Wrap(err, "failed to get absolute path")
	}
	dir = absDir

	configPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(configPath); err == nil && !cmd.Bool("force") {
		return errors.Newf("%s already exists, use --force to overwrite", configPath)
	}

	var runner initwizard.FormRunner = initwizard.NewInteractiveRunner()
	if cmd.Bool("accessible") {
		runner = initwizard.NewAccessibleRunner(os.Stdout, os.Stdin)
	}

	wizard := initwizard.New(initwizard.NewFormBuilder(), runner)
	result, err := wizard.Run(filepath.Base(dir))
	if err != nil {
		return errors.Wrap(err, "wizard failed")
	}

	if err := config.WriteToFile(dir, result.Config(), config.NewWriter()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.Writer, "wrote %s\n", configPath)

	kind := agcdkutil.EnvironmentKind(result.EnvironmentKind)
	if kind != agcdkutil.EnvironmentSandbox {
		fmt.Fprintf(cmd.Writer, "export %s=%s in deployment environments of this kind\n",
			agcdkutil.EnvKind, kind)
	}

	return nil
}
