package main

import (
	"fmt"

	"github.com/jbrzusto/vgen/netlist"
	"github.com/jbrzusto/vgen/verilog"
)

// main builds a tiny adder netlist in memory and prints its generated
// Verilog, as a sanity demo of the generator independent of the CLI.
func main() {
	nl := netlist.Netlist{
		0: {InstID: 0, Prim: netlist.Prim{Kind: netlist.Input, Width: 8, Name: "a"}},
		1: {InstID: 1, Prim: netlist.Prim{Kind: netlist.Input, Width: 8, Name: "b"}},
		2: {
			InstID: 2,
			Prim:   netlist.Prim{Kind: netlist.Add, Width: 8},
			Inputs: []netlist.NetInput{netlist.Wire(0, 0), netlist.Wire(1, 0)},
		},
		3: {
			InstID: 3,
			Prim:   netlist.Prim{Kind: netlist.Output, Width: 8, Name: "y"},
			Inputs: []netlist.NetInput{netlist.Wire(2, 0)},
		},
	}

	src, err := verilog.Generate(nl, "Adder")
	if err != nil {
		fmt.Println("generate:", err)
		return
	}
	fmt.Print(src)
}
