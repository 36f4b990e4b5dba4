package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("output")
		if strings.ToLower(format) == "json" {
			info, err := getOutputJSON(map[string]any{
				"version": version,
				"commit":  commit,
				"date":    date,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(info))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().StringP("output", "o", "", "Output format (json, text)")
	rootCmd.AddCommand(versionCmd)
}
