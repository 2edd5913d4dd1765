package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bufjump/bufjump/pathlabel"
)

func newLabelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "label [paths...]",
		Short: "Print the shortest unique suffix for each path",
		Long: "Computes display labels for the given paths (or stdin lines when no\n" +
			"arguments are given) and prints them as path<TAB>label pairs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					if line := sc.Text(); line != "" {
						paths = append(paths, line)
					}
				}
				if err := sc.Err(); err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			labels := pathlabel.Disambiguate(paths)
			for _, p := range paths {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p, labels[p]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
