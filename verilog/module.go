package verilog

import (
	"strings"

	"github.com/jbrzusto/vgen/netlist"
)

const sectionRule = "//////////////////////////////////////////////////////////////////////////////"

// section writes a two-line section separator: `// <word>` followed by a
// line of 78 slashes.
func section(b *strings.Builder, word string) {
	b.WriteString("  // " + word + "\n")
	b.WriteString("  " + sectionRule + "\n")
}

// Generate validates nl and lowers it into a single synthesizable Verilog
// module named name. Generation is pure and deterministic: the same
// netlist and name always produce byte-identical output.
func Generate(nl netlist.Netlist, name string) (string, error) {
	if err := nl.Validate(); err != nil {
		return "", err
	}

	var decls, insts, always, reset strings.Builder
	for _, n := range nl.Nets() {
		c, err := buildContribution(nl, n)
		if err != nil {
			return "", err
		}
		decls.WriteString(c.Decl)
		insts.WriteString(c.Inst)
		always.WriteString(c.Always)
		reset.WriteString(c.Reset)
	}

	var b strings.Builder
	b.WriteString("module " + name + "(" + portList(nl) + ");\n")
	section(&b, "Declarations")
	b.WriteString(decls.String())
	section(&b, "Instances")
	b.WriteString(insts.String())
	section(&b, "Always block")
	b.WriteString("  always @(posedge clock) begin\n")
	b.WriteString("    if (reset) begin\n")
	b.WriteString(reset.String())
	b.WriteString("    end else begin\n")
	b.WriteString(always.String())
	b.WriteString("    end\n")
	b.WriteString("  end\n")
	b.WriteString("endmodule\n")
	return b.String(), nil
}

// portList builds the module's port declaration list: clock and reset
// first, then every de-duplicated Input, then every Output.
func portList(nl netlist.Netlist) string {
	ports := []string{"input wire clock", "input wire reset"}
	for _, p := range nl.InputPorts() {
		ports = append(ports, "input wire "+bracket(p.Width)+" "+p.Name)
	}
	for _, p := range nl.OutputPorts() {
		ports = append(ports, "output wire "+bracket(p.Width)+" "+p.Name)
	}
	return strings.Join(ports, ", ")
}
