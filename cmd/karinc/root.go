package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "karinc",
	Short: "Lower a karin-lang concrete syntax tree into resolved IR",
	Long: `karinc provides one pipeline:
- Hirifies a concrete syntax tree fixture into IR.
- Resolves its path expressions against the path tree built along the way.
The concrete syntax tree itself is produced by an external grammar
compiler and is out of this tool's scope; karinc consumes a JSON
fixture in its place.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
