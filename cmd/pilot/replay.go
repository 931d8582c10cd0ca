package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/pilot/pkg/pilot"
	"github.com/BrandonKowalski/pilot/pkg/pilot/script"
)

func newReplayCmd(opts *rootOptions) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "replay SCRIPT",
		Short: "Replay a navigation script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := newMessages(opts.lang)
			if err != nil {
				return err
			}

			sc, err := script.Load(args[0])
			if err != nil {
				return err
			}
			pilot.GetLogger().Debug("replaying script", "path", args[0], "name", sc.Name, "steps", len(sc.Steps))

			res, runErr := script.Run(sc)
			if res != nil {
				printResult(cmd, msgs, res, quiet)
			}
			return runErr
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the final stack")
	return cmd
}

func printResult(cmd *cobra.Command, msgs *messages, res *script.Result, quiet bool) {
	out := cmd.OutOrStdout()
	if !quiet {
		for _, e := range res.Events {
			fmt.Fprintln(out, msgs.event(e))
		}
	}

	fmt.Fprintln(out, msgs.plural("FinalStack", len(res.Final), map[string]any{
		"Count":  len(res.Final),
		"Frames": "[" + strings.Join(res.Final, " ") + "]",
	}))
	if res.Top == "" {
		fmt.Fprintln(out, msgs.get("NoTopFrame", nil))
		return
	}
	fmt.Fprintln(out, msgs.get("TopFrame", map[string]any{"Frame": res.Top}))
}
