package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/karin-lang/karinc/cst"
	"github.com/karin-lang/karinc/hirify"
	"github.com/karin-lang/karinc/resolve"
	"github.com/spf13/cobra"
)

var buildFlags = struct {
	quiet *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "build",
		Short:   "Hirify and resolve a concrete syntax tree fixture",
		Example: `  karinc build hakos.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runBuild,
	}
	buildFlags.quiet = cmd.Flags().BoolP("quiet", "q", false, "suppress hirifier log and resolver error detail")
	rootCmd.AddCommand(cmd)
}

// hakoFile, moduleFile, and inputFile are the on-disk shape build reads;
// they mirror hirify.Hako/hirify.Module one field at a time so decoding
// needs no reflection tricks beyond cst.Node's own json.Unmarshaler.
type hakoFile struct {
	ID      string       `json:"id"`
	Modules []moduleFile `json:"modules"`
}

type moduleFile struct {
	ID         string       `json:"id"`
	Node       *cst.Node    `json:"node"`
	Submodules []moduleFile `json:"submodules"`
}

type inputFile struct {
	Hakos []hakoFile `json:"hakos"`
}

func runBuild(cmd *cobra.Command, args []string) error {
	var r io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("cannot open %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}

	var input inputFile
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return fmt.Errorf("cannot decode input: %w", err)
	}

	hakos := make([]hirify.Hako, len(input.Hakos))
	for i, h := range input.Hakos {
		hakos[i] = toHako(h)
	}

	ir, logs := hirify.Hirify(hakos)
	if !*buildFlags.quiet {
		for _, l := range logs {
			fmt.Fprintf(os.Stderr, "hirify: %v\n", l)
		}
	}

	resolveErrs := resolve.Resolve(ir)
	if !*buildFlags.quiet {
		for _, e := range resolveErrs {
			fmt.Fprintf(os.Stderr, "resolve: %v\n", e)
		}
	}

	fmt.Fprintf(os.Stdout, "%d item(s), %d hirifier log(s), %d resolver error(s)\n",
		len(ir.Items), len(logs), len(resolveErrs))

	return nil
}

func toHako(h hakoFile) hirify.Hako {
	modules := make([]hirify.Module, len(h.Modules))
	for i, m := range h.Modules {
		modules[i] = toModule(m)
	}
	return hirify.Hako{ID: h.ID, Modules: modules}
}

func toModule(m moduleFile) hirify.Module {
	submodules := make([]hirify.Module, len(m.Submodules))
	for i, s := range m.Submodules {
		submodules[i] = toModule(s)
	}
	return hirify.Module{ID: m.ID, Node: m.Node, Submodules: submodules}
}
