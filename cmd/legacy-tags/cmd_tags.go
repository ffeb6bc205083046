package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"legacy-bridge/structtag"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the tag names understood in legacy tag text",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		for _, name := range structtag.TagNames() {
			fmt.Fprintln(out, name)
		}

		return nil
	},
}
