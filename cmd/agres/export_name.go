package main

import (
	"context"
	"fmt"

	"github.com/advdv/agres/agcdk/agcdkresolve"
	"github.com/advdv/agres/agcdkutil"
	"github.com/advdv/agres/cmd/agres/internal/config"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

func exportNameCmd() *cli.Command {
	return &cli.Command{
		Name:  "export-name",
		Usage: "Show the cross-stack export name for a shared resource",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "namespace",
				Usage: "Resource namespace: certificate or zone",
				Value: "certificate",
			},
			&cli.StringFlag{
				Name:  "domain",
				Usage: "Domain the resource covers, defaults to the wildcard of the project's base domain",
			},
			&cli.StringFlag{
				Name:  "kind",
				Usage: "Provider environment kind publishing the export, defaults to sandbox",
			},
		},
		Action: config.RunWithConfig(runExportName),
	}
}

func runExportName(ctx context.Context, cmd *cli.Command, cfg config.Config) error {
	var namespace string
	switch cmd.String("namespace") {
	case "certificate":
		namespace = agcdkresolve.NamespaceCertificate
	case "zone":
		namespace = agcdkresolve.NamespaceZone
	default:
		return errors.Newf("unknown namespace %q: use certificate or zone", cmd.String("namespace"))
	}

	domain := cmd.String("domain")
	if domain == "" {
		switch namespace {
		case agcdkresolve.NamespaceCertificate:
			domain = "*." + cfg.Inner.BaseDomainName
		default:
			domain = cfg.Inner.BaseDomainName
		}
	}

	kind := agcdkutil.EnvironmentKind(cmd.String("kind"))
	if kind == "" {
		// Exports are published by provider environments; when this
		// environment is a consumer, name the sandbox provider's export.
		kind = agcdkutil.ClassifyEnvironment(agcdkutil.DefaultEnviron)
		if kind.IsConsumer() {
			kind = agcdkutil.EnvironmentSandbox
		}
	}

	projectKey := cfg.Inner.ProjectKey
	if v, ok := agcdkutil.DefaultEnviron(agcdkutil.EnvProjectKey); ok && v != "" {
		projectKey = v
	}

	fmt.Fprintln(cmd.Writer, agcdkresolve.ExportName(kind, projectKey, namespace, domain))
	return nil
}
