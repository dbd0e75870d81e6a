package verilog

import (
	"strings"
	"testing"

	"github.com/jbrzusto/vgen/netlist"
)

func TestGeneratePureAdder(t *testing.T) {
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

	got, err := Generate(nl, "M")
	if err != nil {
		t.Fatal(err)
	}

	wantHeader := "module M(input wire clock, input wire reset, input wire [7:0] a, input wire [7:0] b, output wire [7:0] y);"
	if !strings.Contains(got, wantHeader) {
		t.Errorf("missing header %q in:\n%s", wantHeader, got)
	}
	if !strings.Contains(got, "assign v_2_0 = a + b;") {
		t.Errorf("missing adder assign in:\n%s", got)
	}
	if !strings.Contains(got, "assign y = v_2_0;") {
		t.Errorf("missing output assign in:\n%s", got)
	}
}

func TestGenerateEnabledRegisterWithReset(t *testing.T) {
	nl := netlist.Netlist{
		0: {InstID: 0, Prim: netlist.Prim{Kind: netlist.Input, Width: 1, Name: "en"}},
		1: {InstID: 1, Prim: netlist.Prim{Kind: netlist.Input, Width: 4, Name: "d"}},
		5: {
			InstID: 5,
			Prim:   netlist.Prim{Kind: netlist.RegisterEn, Width: 4, Init: 3},
			Inputs: []netlist.NetInput{netlist.Wire(0, 0), netlist.Wire(1, 0)},
		},
	}

	got, err := Generate(nl, "M")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "reg [3:0] v_5_0 = 4'h3;") {
		t.Errorf("missing register decl in:\n%s", got)
	}
	if !strings.Contains(got, "if (en == 1) v_5_0 <= d;") {
		t.Errorf("missing always stmt in:\n%s", got)
	}
	if !strings.Contains(got, "v_5_0 <= 4'h3;") {
		t.Errorf("missing reset stmt in:\n%s", got)
	}
}

func TestGenerateDisplay(t *testing.T) {
	schema := netlist.NewDisplaySchemaBuilder().Str("x=").Bit(8).Build()
	nl := netlist.Netlist{
		0: {InstID: 0, Prim: netlist.Prim{Kind: netlist.Input, Width: 1, Name: "en"}},
		1: {InstID: 1, Prim: netlist.Prim{Kind: netlist.Input, Width: 8, Name: "x"}},
		2: {
			InstID: 2,
			Prim:   netlist.Prim{Kind: netlist.Display, Schema: schema},
			Inputs: []netlist.NetInput{netlist.Wire(0, 0), netlist.Wire(1, 0)},
		},
	}
	got, err := Generate(nl, "M")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `if (en == 1) $write("x=", x);`) {
		t.Errorf("missing display stmt in:\n%s", got)
	}
}

func TestGenerateInputDeduplication(t *testing.T) {
	nl := netlist.Netlist{
		0: {InstID: 0, Prim: netlist.Prim{Kind: netlist.Input, Width: 1, Name: "clk_en"}},
		1: {InstID: 1, Prim: netlist.Prim{Kind: netlist.Input, Width: 1, Name: "clk_en"}},
	}
	got, err := Generate(nl, "M")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(got, "input wire [0:0] clk_en") != 1 {
		t.Errorf("expected exactly one clk_en port, got:\n%s", got)
	}
}

func TestGenerateRegFile(t *testing.T) {
	nl := netlist.Netlist{
		0: {InstID: 0, Prim: netlist.Prim{Kind: netlist.Input, Width: 4, Name: "addr"}},
		1: {InstID: 1, Prim: netlist.Prim{Kind: netlist.Input, Width: 1, Name: "we"}},
		2: {InstID: 2, Prim: netlist.Prim{Kind: netlist.Input, Width: 8, Name: "din"}},
		9: {
			InstID: 9,
			Prim:   netlist.Prim{Kind: netlist.RegFileMake, Width: 4, Width2: 8, ID: 1, InitFile: "regs.hex"},
		},
		10: {
			InstID: 10,
			Prim:   netlist.Prim{Kind: netlist.RegFileRead, Width: 8, ID: 1},
			Inputs: []netlist.NetInput{netlist.Wire(0, 0)},
		},
		11: {
			InstID: 11,
			Prim:   netlist.Prim{Kind: netlist.RegFileWrite, ID: 1},
			Inputs: []netlist.NetInput{netlist.Wire(1, 0), netlist.Wire(0, 0), netlist.Wire(2, 0)},
		},
		12: {
			InstID: 12,
			Prim:   netlist.Prim{Kind: netlist.Output, Width: 8, Name: "dout"},
			Inputs: []netlist.NetInput{netlist.Wire(10, 0)},
		},
	}

	got, err := Generate(nl, "M")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "reg [7:0] rf1 [(2**4)-1:0];") {
		t.Errorf("missing register file decl in:\n%s", got)
	}
	if !strings.Contains(got, `generate initial $readmemh("regs.hex", rf1); endgenerate`) {
		t.Errorf("missing register file init in:\n%s", got)
	}
	if !strings.Contains(got, "assign v_10_0 = rf1[addr];") {
		t.Errorf("missing register file read in:\n%s", got)
	}
	if !strings.Contains(got, "if (we == 1) rf1[addr] <= din;") {
		t.Errorf("missing register file write in:\n%s", got)
	}
	if !strings.Contains(got, "assign dout = v_10_0;") {
		t.Errorf("missing output assign in:\n%s", got)
	}
}

func TestGenerateCustom(t *testing.T) {
	nl := netlist.Netlist{
		0: {InstID: 0, Prim: netlist.Prim{Kind: netlist.Input, Width: 8, Name: "a"}},
		1: {InstID: 1, Prim: netlist.Prim{Kind: netlist.Input, Width: 8, Name: "b"}},
		5: {
			InstID: 5,
			Prim: netlist.Prim{
				Kind:       netlist.Custom,
				CustomName: "FIFO",
				InSigs:     []netlist.Signal{{Name: "din", Width: 8}, {Name: "push", Width: 8}},
				OutSigs:    []netlist.Signal{{Name: "dout", Width: 8}},
				Params:     []netlist.Param{{Key: "WIDTH", Value: "8"}},
				Clocked:    true,
			},
			Inputs: []netlist.NetInput{netlist.Wire(0, 0), netlist.Wire(1, 0)},
		},
		6: {
			InstID: 6,
			Prim:   netlist.Prim{Kind: netlist.Output, Width: 8, Name: "y"},
			Inputs: []netlist.NetInput{netlist.Wire(5, 0)},
		},
	}

	got, err := Generate(nl, "M")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "wire [7:0] dout_5_0;") {
		t.Errorf("missing custom output decl in:\n%s", got)
	}
	wantInst := "FIFO #(.WIDTH(8)) FIFO_5 (.clock(clock), .reset(reset), .din(a), .push(b), .dout(dout_5_0));"
	if !strings.Contains(got, wantInst) {
		t.Errorf("missing custom instance %q in:\n%s", wantInst, got)
	}
	if !strings.Contains(got, "assign y = dout_5_0;") {
		t.Errorf("missing output assign in:\n%s", got)
	}
}

func TestGenerateTrueDualBRAM(t *testing.T) {
	nl := netlist.Netlist{
		0: {InstID: 0, Prim: netlist.Prim{Kind: netlist.Input, Width: 10, Name: "addrA"}},
		1: {InstID: 1, Prim: netlist.Prim{Kind: netlist.Input, Width: 32, Name: "diA"}},
		2: {InstID: 2, Prim: netlist.Prim{Kind: netlist.Input, Width: 1, Name: "weA"}},
		3: {InstID: 3, Prim: netlist.Prim{Kind: netlist.Input, Width: 10, Name: "addrB"}},
		4: {InstID: 4, Prim: netlist.Prim{Kind: netlist.Input, Width: 32, Name: "diB"}},
		5: {InstID: 5, Prim: netlist.Prim{Kind: netlist.Input, Width: 1, Name: "weB"}},
		9: {
			InstID: 9,
			Prim:   netlist.Prim{Kind: netlist.TrueDualBRAM, Width: 10, Width2: 32, InitFile: "boot.hex"},
			Inputs: []netlist.NetInput{
				netlist.Wire(0, 0), netlist.Wire(1, 0), netlist.Wire(2, 0),
				netlist.Wire(3, 0), netlist.Wire(4, 0), netlist.Wire(5, 0),
			},
		},
	}
	got, err := Generate(nl, "M")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "wire [31:0] v_9_0;") || !strings.Contains(got, "wire [31:0] v_9_1;") {
		t.Errorf("missing BRAM output decls in:\n%s", got)
	}
	if !strings.Contains(got, "BlockRAMTrueDual #(") {
		t.Errorf("missing BlockRAMTrueDual instance in:\n%s", got)
	}
	if !strings.Contains(got, ".DO_A(v_9_0)") || !strings.Contains(got, ".DO_B(v_9_1)") {
		t.Errorf("missing A/B port connections in:\n%s", got)
	}
}
