// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootOptions carries state shared by every subcommand.
type rootOptions struct {
	logLevel string
	logger   *logrus.Logger
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "runcsp",
		Short:        "Build, batch and score constraint satisfaction instances",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(o.logLevel)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			o.logger = logrus.New()
			o.logger.SetOutput(cmd.ErrOrStderr())
			o.logger.SetLevel(lvl)
			o.logger.Debugf("log level %s", o.logger.Level)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&o.logLevel, "log-level", logrus.InfoLevel.String(),
		"log level: trace, debug, info, warn, error")

	cmd.AddCommand(
		newLanguageCmd(o),
		newBatchCmd(o),
		newEvaluateCmd(o),
		newGenerateCmd(o),
	)

	return cmd
}
