package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/Pfoerd/pitest/dis"
	"github.com/Pfoerd/pitest/listing"
	"github.com/spf13/cobra"
)

var disCmd = &cobra.Command{
	Use:   "dis [listing file]",
	Short: "Print the instruction table for methods in a javap listing",
	Args:  cobra.ExactArgs(1),
	RunE:  runDis,
}

func init() {
	disCmd.Flags().String("method", "", "Method to disassemble")
	rootCmd.AddCommand(disCmd)
}

func runDis(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	classes, err := listing.Parse(cmd.Context(), bytes.NewReader(data), listing.WithFilename(args[0]))
	if err != nil {
		return err
	}
	methodName, _ := cmd.Flags().GetString("method")
	found := false
	w := cmd.OutOrStdout()
	for _, class := range classes {
		for i := 0; i < class.MethodCount(); i++ {
			method := class.MethodAt(i)
			if methodName != "" && method.Name() != methodName {
				continue
			}
			found = true
			fmt.Fprintln(w, cyan(method.FullName()))
			dis.Print(dis.Disassemble(method), w)
			fmt.Fprintln(w)
		}
	}
	if methodName != "" && !found {
		return fmt.Errorf("method %q not found", methodName)
	}
	return nil
}
