package verilog

import (
	"strconv"

	"github.com/jbrzusto/vgen/netlist"
)

// UnsupportedInlineError reports a SelectBits applied to a Tree whose root
// is not Const, DontCare, or Wire — Verilog forbids bit-selection of a
// parenthesised expression, so such a tree cannot be inlined.
type UnsupportedInlineError struct {
	InstID int
	Kind   netlist.PrimKind
}

func (e *UnsupportedInlineError) Error() string {
	return "cannot select bits of inlined " + e.Kind.String() + " sub-tree (net " + strconv.Itoa(e.InstID) + "): not Const, DontCare, or Wire"
}

// PrintExpr renders NetInput in as a Verilog expression, parenthesised as
// needed: a Wire renders as its identifier; a Tree of an inlinable
// primitive renders unwrapped (its syntax is already self-delimiting); a
// Tree of any other primitive is wrapped in parentheses.
func PrintExpr(nl netlist.Netlist, in netlist.NetInput) (string, error) {
	if !in.IsTree {
		n, ok := nl[in.InstID]
		if !ok {
			return "", &netlist.MalformedNetlistError{InstID: in.InstID, Message: "wire references missing instance id"}
		}
		return NameFor(n, in.Port), nil
	}

	s, err := renderTree(nl, in.InstID, *in.Prim, in.Children)
	if err != nil {
		return "", err
	}
	if !in.Prim.Inlinable() {
		return "(" + s + ")", nil
	}
	return s, nil
}

// binaryOp is the infix spelling for each primitive that renders as
// `lhs OP rhs`.
var binaryOp = map[netlist.PrimKind]string{
	netlist.Add:         "+",
	netlist.Sub:         "-",
	netlist.Mul:         "*",
	netlist.Div:         "/",
	netlist.Mod:         "%",
	netlist.And:         "&",
	netlist.Or:          "|",
	netlist.Xor:         "^",
	netlist.ShiftLeft:   "<<",
	netlist.ShiftRight:  ">>",
	netlist.Equal:       "==",
	netlist.NotEqual:    "!=",
	netlist.LessThan:    "<",
	netlist.LessThanEq:  "<=",
}

func renderTree(nl netlist.Netlist, ownerID int, p netlist.Prim, children []netlist.NetInput) (string, error) {
	if op, ok := binaryOp[p.Kind]; ok {
		lhs, err := PrintExpr(nl, children[0])
		if err != nil {
			return "", err
		}
		rhs, err := PrintExpr(nl, children[1])
		if err != nil {
			return "", err
		}
		return lhs + " " + op + " " + rhs, nil
	}

	switch p.Kind {
	case netlist.ArithShiftRight:
		lhs, err := PrintExpr(nl, children[0])
		if err != nil {
			return "", err
		}
		rhs, err := PrintExpr(nl, children[1])
		if err != nil {
			return "", err
		}
		return "$signed(" + lhs + ") >>> " + rhs, nil

	case netlist.Not:
		x, err := PrintExpr(nl, children[0])
		if err != nil {
			return "", err
		}
		return "~" + x, nil

	case netlist.ReplicateBit:
		x, err := PrintExpr(nl, children[0])
		if err != nil {
			return "", err
		}
		return "{" + strconv.Itoa(p.Width) + "{" + x + "}}", nil

	case netlist.ZeroExtend:
		x, err := PrintExpr(nl, children[0])
		if err != nil {
			return "", err
		}
		return "{{" + strconv.Itoa(p.Width2-p.Width) + "{1'b0}}, " + x + "}", nil

	case netlist.SignExtend:
		x, err := PrintExpr(nl, children[0])
		if err != nil {
			return "", err
		}
		return "{{" + strconv.Itoa(p.Width2-p.Width) + "{" + x + "[" + strconv.Itoa(p.Width-1) + "]}}, " + x + "}", nil

	case netlist.SelectBits:
		return renderSelectBits(nl, ownerID, p, children[0])

	case netlist.Concat:
		a, err := PrintExpr(nl, children[0])
		if err != nil {
			return "", err
		}
		b, err := PrintExpr(nl, children[1])
		if err != nil {
			return "", err
		}
		return "{" + a + ", " + b + "}", nil

	case netlist.Mux:
		s, err := PrintExpr(nl, children[0])
		if err != nil {
			return "", err
		}
		t, err := PrintExpr(nl, children[1])
		if err != nil {
			return "", err
		}
		f, err := PrintExpr(nl, children[2])
		if err != nil {
			return "", err
		}
		return s + " ? " + t + " : " + f, nil

	case netlist.CountOnes:
		x, err := PrintExpr(nl, children[0])
		if err != nil {
			return "", err
		}
		return "$countones(" + x + ")", nil

	case netlist.Identity:
		return PrintExpr(nl, children[0])

	case netlist.Const:
		return FormatLiteral(p.Width, p.Value), nil

	case netlist.DontCare:
		return FormatDontCare(p.Width), nil
	}

	return "", &netlist.UnsupportedPrimitiveError{InstID: ownerID, Kind: p.Kind}
}

// renderSelectBits implements the SelectBits emission rule: x[hi:lo] for a
// Wire, constant-folding for Const/DontCare, and a fatal error for any
// other inlined sub-tree (Verilog forbids bit-selection of a parenthesised
// expression).
func renderSelectBits(nl netlist.Netlist, ownerID int, p netlist.Prim, child netlist.NetInput) (string, error) {
	if !child.IsTree {
		n, ok := nl[child.InstID]
		if !ok {
			return "", &netlist.MalformedNetlistError{InstID: child.InstID, Message: "wire references missing instance id"}
		}
		name := NameFor(n, child.Port)
		return name + "[" + strconv.Itoa(p.Hi) + ":" + strconv.Itoa(p.Lo) + "]", nil
	}

	switch child.Prim.Kind {
	case netlist.Const:
		return FormatSelectConst(child.Prim.Value, p.Hi, p.Lo), nil
	case netlist.DontCare:
		return FormatDontCare(p.Hi - p.Lo + 1), nil
	default:
		return "", &UnsupportedInlineError{InstID: ownerID, Kind: child.Prim.Kind}
	}
}
