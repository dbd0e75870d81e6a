// gen_verilog lowers a JSON-encoded netlist into synthesizable Verilog, and
// optionally a complete Verilator simulation harness.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jbrzusto/vgen/config"
	"github.com/jbrzusto/vgen/harness"
	"github.com/jbrzusto/vgen/netlist"
	"github.com/jbrzusto/vgen/verilog"
	"github.com/spf13/cobra"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "gen_verilog: loading config:", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "gen_verilog",
		Short: "Lower a netlist into Verilog",
	}

	var netlistPath, modName, outDir string

	moduleCmd := &cobra.Command{
		Use:   "module",
		Short: "Write <out>/<name>.v only",
		RunE: func(cmd *cobra.Command, args []string) error {
			nl, err := loadNetlist(netlistPath)
			if err != nil {
				return err
			}
			src, err := verilog.Generate(nl, modName)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			return harness.WriteModule(outDir, modName, src)
		},
	}

	topCmd := &cobra.Command{
		Use:   "top",
		Short: "Write the .v source plus a full Verilator simulation harness",
		RunE: func(cmd *cobra.Command, args []string) error {
			nl, err := loadNetlist(netlistPath)
			if err != nil {
				return err
			}
			src, err := verilog.Generate(nl, modName)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			return harness.WriteTop(outDir, modName, src, settings)
		},
	}

	for _, c := range []*cobra.Command{moduleCmd, topCmd} {
		c.Flags().StringVar(&netlistPath, "netlist", "", "path to a JSON-encoded netlist (required)")
		c.Flags().StringVar(&modName, "name", "", "generated module name (required)")
		c.Flags().StringVar(&outDir, "out", settings.OutputDir, "output directory")
		c.MarkFlagRequired("netlist")
		c.MarkFlagRequired("name")
	}

	rootCmd.AddCommand(moduleCmd, topCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadNetlist(path string) (netlist.Netlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open netlist: %w", err)
	}
	defer f.Close()

	var nl netlist.Netlist
	if err := json.NewDecoder(f).Decode(&nl); err != nil {
		return nil, fmt.Errorf("decode netlist: %w", err)
	}
	return nl, nil
}
