package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print open files as plain text (for scripting)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			items := collectItems(cfg)
			for i, it := range items {
				timeStr := ""
				if !it.Time.IsZero() {
					timeStr = it.Time.Format("01-02 15:04")
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d: %-30s %-5s %-12s %s\n",
					i+1, it.Label, it.Source, timeStr, it.Path)
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
