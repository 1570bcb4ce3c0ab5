/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package migrate

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	dhubAuthClient "github.com/dataops-cloud/dhub-cli/internal/client"
	"github.com/dataops-cloud/dhub-cli/internal/formatter"
	"github.com/dataops-cloud/dhub-cli/internal/migrate"
)

// MigrateCmd runs the metadata migration pipeline over an entity export
var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate metadata between DataHub environments",
	Long: `Migrate dataset metadata (tags, glossary terms, domain assignments,
structured properties and per-field tags and terms) from a source
environment export into a target environment. The export is loaded,
environment specific strings are rewritten using the mutations file,
each entity is matched against the target, the metadata facets are
diffed source-wins, and one change proposal is emitted per difference.
In dry-run mode the proposals are written as JSON files to the output
directory; in live mode they are submitted to the target DataHub
ingestion API.`,
	Example: `dhub migrate --input export.json --target-env prod --dry-run
dhub migrate --input export.json --target-env prod --target-file prod-export.json --dry-run
dhub migrate --input export.json --target-env prod --env prod --dry-run=false`,
	PreRun: func(cmd *cobra.Command, args []string) {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(input) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No input export file found to migrate\n", formatter.RedColor))
		}
		targetEnv, err := cmd.Flags().GetString("target-env")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(targetEnv) == 0 {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No target environment found to migrate to\n", formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		options := migrate.Options{}
		var err error
		options.InputPath, err = cmd.Flags().GetString("input")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		options.TargetEnv, err = cmd.Flags().GetString("target-env")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		options.MutationsPath, err = cmd.Flags().GetString("mutations-file")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		options.OutputDir, err = cmd.Flags().GetString("output-dir")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		options.DryRun, err = cmd.Flags().GetBool("dry-run")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		options.Verbose, err = cmd.Flags().GetBool("verbose")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		targetFile, err := cmd.Flags().GetString("target-file")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		uploadURI, err := cmd.Flags().GetString("upload-uri")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		var target migrate.TargetSource
		var submitter migrate.Submitter

		if targetFile != "" {
			fileTarget, err := migrate.NewFileTargetSource(targetFile)
			if err != nil {
				logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
			}
			target = fileTarget
		}

		ctx := cmd.Context()
		if options.DryRun {
			submitter = &migrate.DirEmitter{Dir: options.OutputDir}
			if target == nil {
				logrus.Info("No target export provided, validating structure only\n")
			}
		} else {
			if options.TargetEnv != "" && viper.GetString("env") == "" {
				viper.GetViper().Set("env", options.TargetEnv)
			}
			authAPI := dhubAuthClient.NewAuthAPIClientAndVerify()
			ctx = authAPI.Context()
			if target == nil {
				target = authAPI
			}
			submitter = authAPI
		}

		pipeline := migrate.NewPipeline(options, target, submitter)
		report, err := pipeline.Run(ctx)
		fmt.Print(report.Summary())
		if err != nil {
			var inputErr *migrate.InputError
			if errors.As(err, &inputErr) {
				logrus.Fatalf(formatter.Colorize(
					"Run aborted: "+err.Error()+"\n", formatter.RedColor))
			}
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		if uploadURI != "" {
			if err := uploadArtifacts(options.OutputDir, uploadURI); err != nil {
				logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
			}
			logrus.Infof("Run artifacts uploaded to %s\n",
				formatter.Colorize(uploadURI, formatter.GreenColor))
		}

		if report.Failed > 0 {
			os.Exit(1)
		}

	},
}

func init() {
	MigrateCmd.Flags().SortFlags = false
	MigrateCmd.Flags().StringP("input", "i", "",
		"[Required] Path to the source environment entity export (JSON).")
	MigrateCmd.MarkFlagRequired("input")
	MigrateCmd.Flags().String("target-env", "",
		"[Required] Name of the target environment the metadata is migrated to.")
	MigrateCmd.MarkFlagRequired("target-env")
	MigrateCmd.Flags().String("mutations-file", "",
		"[Optional] Path to the JSON mutations file rewriting environment "+
			"specific strings. Missing file is a warning, not an error.")
	MigrateCmd.Flags().String("target-file", "",
		"[Optional] Path to a target environment export to match against "+
			"instead of the live target catalog.")
	MigrateCmd.Flags().String("output-dir", "migration-output",
		"[Optional] Directory for dry-run change proposals and the run log.")
	MigrateCmd.Flags().Bool("dry-run", true,
		"[Optional] Write change proposals to the output directory instead of "+
			"submitting them to the target environment.")
	MigrateCmd.Flags().Bool("verbose", false,
		"[Optional] Log the outcome of every entity, not only problems.")
	MigrateCmd.Flags().String("upload-uri", "",
		"[Optional] s3://bucket/prefix URI to upload the run artifacts to.")
}
