package verilog

import (
	"strconv"
	"strings"

	"github.com/jbrzusto/vgen/netlist"
)

// contribution holds the up-to-four pieces of Verilog a single net
// contributes to the assembled module: a wire/reg declaration, a
// continuous assignment or instance, a clocked always-block statement,
// and a synchronous-reset statement. Any field may be empty.
type contribution struct {
	Decl   string
	Inst   string
	Always string
	Reset  string
}

// bracket renders a zero-based bit-range declarator for a signal of width
// w: `[w-1:0]`, with w-1 computed rather than left as a literal expression.
func bracket(w int) string {
	return "[" + strconv.Itoa(w-1) + ":0]"
}

// pureCombinational is the set of primitives whose declaration is a plain
// `wire [w-1:0] name;` and whose instantiation is `assign name = <expr>;`
// with the expression produced from the net's own inputs as the
// top-level children of the printer.
var pureCombinational = map[netlist.PrimKind]bool{
	netlist.Add: true, netlist.Sub: true, netlist.Mul: true, netlist.Div: true, netlist.Mod: true,
	netlist.And: true, netlist.Or: true, netlist.Xor: true, netlist.Not: true,
	netlist.ShiftLeft: true, netlist.ShiftRight: true, netlist.ArithShiftRight: true,
	netlist.Equal: true, netlist.NotEqual: true, netlist.LessThan: true, netlist.LessThanEq: true,
	netlist.ReplicateBit: true, netlist.ZeroExtend: true, netlist.SignExtend: true,
	netlist.SelectBits: true, netlist.Concat: true, netlist.Mux: true,
	netlist.CountOnes: true, netlist.Identity: true,
}

// buildContribution classifies net n by its primitive and produces its
// declaration / instantiation / always / reset contributions.
func buildContribution(nl netlist.Netlist, n *netlist.Net) (contribution, error) {
	p := n.Prim

	if pureCombinational[p.Kind] {
		expr, err := renderTree(nl, n.InstID, p, n.Inputs)
		if err != nil {
			return contribution{}, err
		}
		name := NameFor(n, 0)
		return contribution{
			Decl: "  wire " + bracket(netlist.OutputWidths(p)[0]) + " " + name + ";\n",
			Inst: "  assign " + name + " = " + expr + ";\n",
		}, nil
	}

	switch p.Kind {
	case netlist.Const:
		name := NameFor(n, 0)
		return contribution{
			Decl: "  wire " + bracket(p.Width) + " " + name + " = " + FormatLiteral(p.Width, p.Value) + ";\n",
		}, nil

	case netlist.DontCare:
		name := NameFor(n, 0)
		return contribution{
			Decl: "  wire " + bracket(p.Width) + " " + name + " = " + FormatDontCare(p.Width) + ";\n",
		}, nil

	case netlist.Register:
		name := NameFor(n, 0)
		d, err := PrintExpr(nl, n.Inputs[0])
		if err != nil {
			return contribution{}, err
		}
		init := FormatLiteral(p.Width, p.Init)
		return contribution{
			Decl:   "  reg " + bracket(p.Width) + " " + name + " = " + init + ";\n",
			Always: "    " + name + " <= " + d + ";\n",
			Reset:  "      " + name + " <= " + init + ";\n",
		}, nil

	case netlist.RegisterEn:
		name := NameFor(n, 0)
		en, err := PrintExpr(nl, n.Inputs[0])
		if err != nil {
			return contribution{}, err
		}
		d, err := PrintExpr(nl, n.Inputs[1])
		if err != nil {
			return contribution{}, err
		}
		init := FormatLiteral(p.Width, p.Init)
		return contribution{
			Decl:   "  reg " + bracket(p.Width) + " " + name + " = " + init + ";\n",
			Always: "    if (" + en + " == 1) " + name + " <= " + d + ";\n",
			Reset:  "      " + name + " <= " + init + ";\n",
		}, nil

	case netlist.BRAM:
		return buildBRAM(nl, n)

	case netlist.TrueDualBRAM:
		return buildTrueDualBRAM(nl, n)

	case netlist.TestPlusArgs:
		name := NameFor(n, 0)
		return contribution{
			Decl: "  wire " + bracket(1) + " " + name + ";\n",
			Inst: "  assign " + name + " = $test$plusargs(\"" + p.Name + "\") == 0 ? 0 : 1;\n",
		}, nil

	case netlist.Input:
		// An Input net IS its module port; no internal wire or assign is
		// generated (see NameFor).
		return contribution{}, nil

	case netlist.Output:
		expr, err := PrintExpr(nl, n.Inputs[0])
		if err != nil {
			return contribution{}, err
		}
		return contribution{
			Inst: "  assign " + p.Name + " = " + expr + ";\n",
		}, nil

	case netlist.Display:
		return buildDisplay(nl, n)

	case netlist.Finish:
		en, err := PrintExpr(nl, n.Inputs[0])
		if err != nil {
			return contribution{}, err
		}
		return contribution{
			Always: "    if (" + en + " == 1) $finish;\n",
		}, nil

	case netlist.RegFileMake:
		return buildRegFileMake(n), nil

	case netlist.RegFileRead:
		name := NameFor(n, 0)
		addr, err := PrintExpr(nl, n.Inputs[0])
		if err != nil {
			return contribution{}, err
		}
		return contribution{
			Decl: "  wire " + bracket(p.Width) + " " + name + ";\n",
			Inst: "  assign " + name + " = rf" + strconv.Itoa(p.ID) + "[" + addr + "];\n",
		}, nil

	case netlist.RegFileWrite:
		en, err := PrintExpr(nl, n.Inputs[0])
		if err != nil {
			return contribution{}, err
		}
		addr, err := PrintExpr(nl, n.Inputs[1])
		if err != nil {
			return contribution{}, err
		}
		di, err := PrintExpr(nl, n.Inputs[2])
		if err != nil {
			return contribution{}, err
		}
		return contribution{
			Always: "    if (" + en + " == 1) rf" + strconv.Itoa(p.ID) + "[" + addr + "] <= " + di + ";\n",
		}, nil

	case netlist.Custom:
		return buildCustom(nl, n)
	}

	return contribution{}, &netlist.UnsupportedPrimitiveError{InstID: n.InstID, Kind: p.Kind}
}

func buildBRAM(nl netlist.Netlist, n *netlist.Net) (contribution, error) {
	p := n.Prim
	name := NameFor(n, 0)
	addr, err := PrintExpr(nl, n.Inputs[0])
	if err != nil {
		return contribution{}, err
	}
	di, err := PrintExpr(nl, n.Inputs[1])
	if err != nil {
		return contribution{}, err
	}
	we, err := PrintExpr(nl, n.Inputs[2])
	if err != nil {
		return contribution{}, err
	}
	initFile := "UNUSED"
	if p.InitFile != "" {
		initFile = strconv.Quote(p.InitFile)
	} else {
		initFile = "\"UNUSED\""
	}
	inst := "  BlockRAM #(.INIT_FILE(" + initFile + "), .ADDR_WIDTH(" + strconv.Itoa(p.Width) +
		"), .DATA_WIDTH(" + strconv.Itoa(p.Width2) + ")) BlockRAM_" + strconv.Itoa(n.InstID) +
		" (.CLK(clock), .DI(" + di + "), .ADDR(" + addr + "), .WE(" + we + "), .DO(" + name + "));\n"
	return contribution{
		Decl: "  wire " + bracket(p.Width2) + " " + name + ";\n",
		Inst: inst,
	}, nil
}

func buildTrueDualBRAM(nl netlist.Netlist, n *netlist.Net) (contribution, error) {
	p := n.Prim
	nameA := NameFor(n, 0)
	nameB := NameFor(n, 1)

	exprs := make([]string, 6)
	for i := range exprs {
		e, err := PrintExpr(nl, n.Inputs[i])
		if err != nil {
			return contribution{}, err
		}
		exprs[i] = e
	}
	addrA, diA, weA := exprs[0], exprs[1], exprs[2]
	addrB, diB, weB := exprs[3], exprs[4], exprs[5]

	initFile := "\"UNUSED\""
	if p.InitFile != "" {
		initFile = strconv.Quote(p.InitFile)
	}
	inst := "  BlockRAMTrueDual #(.INIT_FILE(" + initFile + "), .ADDR_WIDTH(" + strconv.Itoa(p.Width) +
		"), .DATA_WIDTH(" + strconv.Itoa(p.Width2) + ")) BlockRAMTrueDual_" + strconv.Itoa(n.InstID) +
		" (.CLK(clock)" +
		", .ADDR_A(" + addrA + "), .DI_A(" + diA + "), .WE_A(" + weA + "), .DO_A(" + nameA + ")" +
		", .ADDR_B(" + addrB + "), .DI_B(" + diB + "), .WE_B(" + weB + "), .DO_B(" + nameB + "));\n"

	decl := "  wire " + bracket(p.Width2) + " " + nameA + ";\n" +
		"  wire " + bracket(p.Width2) + " " + nameB + ";\n"

	return contribution{Decl: decl, Inst: inst}, nil
}

func buildDisplay(nl netlist.Netlist, n *netlist.Net) (contribution, error) {
	p := n.Prim
	en, err := PrintExpr(nl, n.Inputs[0])
	if err != nil {
		return contribution{}, err
	}
	argIdx := 1
	parts := make([]string, 0, len(p.Schema))
	for _, item := range p.Schema {
		if item.IsBit {
			expr, err := PrintExpr(nl, n.Inputs[argIdx])
			if err != nil {
				return contribution{}, err
			}
			argIdx++
			parts = append(parts, expr)
		} else {
			parts = append(parts, strconv.Quote(item.Str))
		}
	}
	return contribution{
		Always: "    if (" + en + " == 1) $write(" + strings.Join(parts, ", ") + ");\n",
	}, nil
}

func buildRegFileMake(n *netlist.Net) contribution {
	p := n.Prim
	id := strconv.Itoa(p.ID)
	decl := "  reg " + bracket(p.Width2) + " rf" + id + " [(2**" + strconv.Itoa(p.Width) + ")-1:0];\n"
	if p.InitFile != "" {
		decl += "  generate initial $readmemh(" + strconv.Quote(p.InitFile) + ", rf" + id + "); endgenerate\n"
	}
	return contribution{Decl: decl}
}

func buildCustom(nl netlist.Netlist, n *netlist.Net) (contribution, error) {
	p := n.Prim

	var decl strings.Builder
	for k, sig := range p.OutSigs {
		name := NameForCustomOutput(n, k)
		decl.WriteString("  wire " + bracket(sig.Width) + " " + name + ";\n")
	}

	var conns []string
	if p.Clocked {
		conns = append(conns, ".clock(clock)", ".reset(reset)")
	}
	for i, sig := range p.InSigs {
		expr, err := PrintExpr(nl, n.Inputs[i])
		if err != nil {
			return contribution{}, err
		}
		conns = append(conns, "."+sig.Name+"("+expr+")")
	}
	for k, sig := range p.OutSigs {
		conns = append(conns, "."+sig.Name+"("+NameForCustomOutput(n, k)+")")
	}

	paramStr := ""
	if len(p.Params) > 0 {
		parts := make([]string, len(p.Params))
		for i, pm := range p.Params {
			parts[i] = "." + pm.Key + "(" + pm.Value + ")"
		}
		paramStr = " #(" + strings.Join(parts, ", ") + ")"
	}

	inst := "  " + p.CustomName + paramStr + " " + p.CustomName + "_" + strconv.Itoa(n.InstID) +
		" (" + strings.Join(conns, ", ") + ");\n"

	return contribution{Decl: decl.String(), Inst: inst}, nil
}
