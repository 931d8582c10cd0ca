package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of pilot",
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := newMessages(opts.lang)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msgs.get("Version", map[string]any{"Version": version}))
			return nil
		},
	}
}
