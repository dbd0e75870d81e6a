// Package verilog lowers a netlist.Netlist into synthesizable Verilog
// source text: expression printing, per-net contribution building, and
// module assembly.
package verilog

import (
	"strconv"
	"strings"

	"github.com/jbrzusto/vgen/netlist"
)

// NameFor returns the Verilog identifier for output port `port` of net n:
// `hint_iid_port`, where hint is "v" if n has no name hints, or its hints
// joined by "_" in lexicographic order (sorted so the identifier is
// reproducible regardless of hint accumulation order); iid is the decimal
// instance id; port is the decimal port index.
//
// Input is special-cased: an Input net IS its module port (there is no
// separate internal wire), so any reference to it resolves to the port
// name itself rather than a synthesized hint_iid_port identifier. A Custom
// net's outputs resolve to the names NameForCustomOutput declares.
func NameFor(n *netlist.Net, port int) string {
	if n.Prim.Kind == netlist.Input {
		return n.Prim.Name
	}
	if n.Prim.Kind == netlist.Custom {
		return NameForCustomOutput(n, port)
	}
	hints := n.SortedHints()
	hint := "v"
	if len(hints) > 0 {
		hint = strings.Join(hints, "_")
	}
	return hint + "_" + strconv.Itoa(n.InstID) + "_" + strconv.Itoa(port)
}

// NameForCustomOutput returns the Verilog identifier for output port k of
// a Custom net n: `portname_iid_k`, where portname is n.OutNames[k] when
// that is present and non-empty, and otherwise the primitive's declared
// output signal name; hints are not used.
func NameForCustomOutput(n *netlist.Net, k int) string {
	name := n.Prim.OutSigs[k].Name
	if k < len(n.OutNames) && n.OutNames[k] != "" {
		name = n.OutNames[k]
	}
	return name + "_" + strconv.Itoa(n.InstID) + "_" + strconv.Itoa(k)
}
