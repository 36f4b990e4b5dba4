package main

import (
	"fmt"

	"github.com/Pfoerd/pitest/op"
	"github.com/spf13/cobra"
)

var opsCmd = &cobra.Command{
	Use:   "ops [mnemonic]",
	Short: "Show the JVM opcode reference",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runOps,
}

func init() {
	rootCmd.AddCommand(opsCmd)
}

func runOps(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	if len(args) == 1 {
		code, ok := op.FromMnemonic(args[0])
		if !ok {
			return fmt.Errorf("unknown mnemonic %q", args[0])
		}
		info := op.GetInfo(code)
		fmt.Fprintf(w, "%s (0x%02x) operands: %s\n",
			info.Mnemonic, byte(info.Code), operandText(info))
		return nil
	}
	for c := 0; c < 256; c++ {
		info := op.GetInfo(op.Code(c))
		if info.Mnemonic == "" {
			continue
		}
		fmt.Fprintf(w, "0x%02x  %-16s %s\n", c, info.Mnemonic, operandText(info))
	}
	return nil
}

func operandText(info op.Info) string {
	switch info.OperandBytes {
	case -1:
		return "variable"
	case 0:
		return "none"
	case 1:
		return "1 byte"
	default:
		return fmt.Sprintf("%d bytes", info.OperandBytes)
	}
}
