// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/runcsp/language"
)

func newLanguageCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "language",
		Short: "Inspect and export relation languages",
	}
	cmd.AddCommand(newLanguageExportCmd(o), newLanguageShowCmd())

	return cmd
}

func newLanguageExportCmd(o *rootOptions) *cobra.Command {
	var problemName, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a built-in language as a JSON or YAML record",
		Long: `Write the declarative record {domain_size, relations} of a built-in
language. The format follows the extension of --out (.yaml/.yml for YAML,
JSON otherwise).

    $ runcsp language export -p max-2sat -o max_2sat.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lookupProblem(problemName)
			if err != nil {
				return err
			}
			lang := p.language()
			if err := lang.Save(out); err != nil {
				return err
			}
			o.logger.WithField("path", out).Infof("exported %s", lang)
			return nil
		},
	}
	cmd.Flags().StringVarP(&problemName, "problem", "p", language.BuiltinColoring, "built-in language to export")
	cmd.Flags().StringVarP(&out, "out", "o", "", "destination file")
	if err := cmd.MarkFlagRequired("out"); err != nil {
		panic(err)
	}

	return cmd
}

func newLanguageShowCmd() *cobra.Command {
	var problemName, file string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a language and its indicator tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var lang *language.Language
			if file != "" {
				var err error
				if lang, err = language.Load(file); err != nil {
					return err
				}
			} else {
				p, err := lookupProblem(problemName)
				if err != nil {
					return err
				}
				lang = p.language()
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, lang)
			for _, name := range lang.Names() {
				ind, _ := lang.Indicator(name)
				fmt.Fprintf(w, "%s:\n%s\n", name, ind)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&problemName, "problem", "p", language.BuiltinColoring, "built-in language to show")
	cmd.Flags().StringVarP(&file, "file", "f", "", "language record to show instead of a built-in")

	return cmd
}
