package verilog

import (
	"strings"
	"testing"

	"github.com/jbrzusto/vgen/netlist"
)

func TestPrintExprWire(t *testing.T) {
	nl := netlist.Netlist{
		0: {InstID: 0, Prim: netlist.Prim{Kind: netlist.Input, Width: 8, Name: "a"}},
	}
	got, err := PrintExpr(nl, netlist.Wire(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if got != "a" {
		t.Errorf("PrintExpr(Wire to Input) = %q, want %q", got, "a")
	}
}

func TestPrintExprInlinedNotUnwrapped(t *testing.T) {
	nl := netlist.Netlist{
		0: {InstID: 0, Prim: netlist.Prim{Kind: netlist.Input, Width: 8, Name: "a"}},
	}
	tree := netlist.Tree(netlist.Prim{Kind: netlist.Not, Width: 8}, netlist.Wire(0, 0))
	got, err := PrintExpr(nl, tree)
	if err != nil {
		t.Fatal(err)
	}
	if got != "~a" {
		t.Errorf("PrintExpr(Not tree) = %q, want %q", got, "~a")
	}
}

func TestPrintExprBinaryWrapped(t *testing.T) {
	nl := netlist.Netlist{
		0: {InstID: 0, Prim: netlist.Prim{Kind: netlist.Input, Width: 8, Name: "a"}},
		1: {InstID: 1, Prim: netlist.Prim{Kind: netlist.Input, Width: 8, Name: "b"}},
	}
	tree := netlist.Tree(netlist.Prim{Kind: netlist.Add, Width: 8}, netlist.Wire(0, 0), netlist.Wire(1, 0))
	got, err := PrintExpr(nl, tree)
	if err != nil {
		t.Fatal(err)
	}
	if got != "(a + b)" {
		t.Errorf("PrintExpr(Add tree) = %q, want %q", got, "(a + b)")
	}
}

func TestRenderSelectBitsOfConst(t *testing.T) {
	nl := netlist.Netlist{}
	p := netlist.Prim{Kind: netlist.SelectBits, Hi: 7, Lo: 4}
	child := netlist.Tree(netlist.Prim{Kind: netlist.Const, Width: 16, Value: 0xABCD})
	got, err := renderSelectBits(nl, 0, p, child)
	if err != nil {
		t.Fatal(err)
	}
	if got != "4'hc" {
		t.Errorf("renderSelectBits(Const) = %q, want %q", got, "4'hc")
	}
}

func TestRenderSelectBitsOfNonConstTreeRejected(t *testing.T) {
	nl := netlist.Netlist{
		0: {InstID: 0, Prim: netlist.Prim{Kind: netlist.Input, Width: 8, Name: "a"}},
	}
	p := netlist.Prim{Kind: netlist.SelectBits, Hi: 3, Lo: 0}
	child := netlist.Tree(netlist.Prim{Kind: netlist.Add, Width: 8}, netlist.Wire(0, 0), netlist.Wire(0, 0))
	_, err := renderSelectBits(nl, 0, p, child)
	if err == nil {
		t.Fatal("expected UnsupportedInlineError, got nil")
	}
	if !strings.Contains(err.Error(), "cannot select bits") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestArithShiftRight(t *testing.T) {
	nl := netlist.Netlist{
		0: {InstID: 0, Prim: netlist.Prim{Kind: netlist.Input, Width: 8, Name: "a"}},
		1: {InstID: 1, Prim: netlist.Prim{Kind: netlist.Input, Width: 8, Name: "b"}},
	}
	tree := netlist.Tree(netlist.Prim{Kind: netlist.ArithShiftRight, Width: 8}, netlist.Wire(0, 0), netlist.Wire(1, 0))
	got, err := PrintExpr(nl, tree)
	if err != nil {
		t.Fatal(err)
	}
	if got != "($signed(a) >>> b)" {
		t.Errorf("PrintExpr(ArithShiftRight) = %q, want %q", got, "($signed(a) >>> b)")
	}
}
