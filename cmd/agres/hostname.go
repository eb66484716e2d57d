package main

import (
	"context"
	"fmt"

	"github.com/advdv/agres/agcdk/agcdkhostname"
	"github.com/advdv/agres/cmd/agres/internal/config"
	"github.com/urfave/cli/v3"
)

func hostnameCmd() *cli.Command {
	return &cli.Command{
		Name:  "hostname",
		Usage: "Show the hostname deployments would resolve for this environment",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "hostname",
				Usage: "Fully-qualified hostname, used verbatim when set",
			},
			&cli.StringFlag{
				Name:  "subdomain",
				Usage: "Subdomain label, e.g. api",
			},
			&cli.StringFlag{
				Name:  "domain",
				Usage: "DNS zone to compose under, defaults to the project's base domain",
			},
			&cli.StringFlag{
				Name:  "env",
				Usage: "Environment qualifier appended to the subdomain, e.g. dev1",
			},
			&cli.StringFlag{
				Name:  "component",
				Usage: "Extra leading label, e.g. ws",
			},
		},
		Action: config.RunWithConfig(runHostname),
	}
}

func runHostname(ctx context.Context, cmd *cli.Command, cfg config.Config) error {
	hcfg := agcdkhostname.Config{
		Explicit: cmd.String("hostname"),
	}

	// Only compose from parts when any part is given, so a bare invocation
	// still reflects what the environment variables would resolve to.
	if cmd.String("subdomain") != "" || cmd.String("env") != "" || cmd.String("component") != "" {
		domain := cmd.String("domain")
		if domain == "" {
			domain = cfg.Inner.BaseDomainName
		}

		hcfg.Structured = &agcdkhostname.Structured{
			Subdomain: cmd.String("subdomain"),
			Domain:    domain,
			Env:       cmd.String("env"),
			Component: cmd.String("component"),
		}
	}

	hostname, err := agcdkhostname.Resolve(hcfg)
	if err != nil {
		return err
	}

	if hostname == "" {
		fmt.Fprintln(cmd.Writer, "(no hostname configured)")
		return nil
	}

	fmt.Fprintln(cmd.Writer, hostname)
	return nil
}
