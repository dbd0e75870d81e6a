// Package netlist defines the closed taxonomy of hardware primitives and
// the read-only netlist graph that the Verilog back end lowers.
package netlist

// PrimKind enumerates every hardware operator the generator understands.
// The set is closed: no extension primitive may reach the printer.
type PrimKind int

const (
	Add PrimKind = iota
	Sub
	Mul
	Div
	Mod
	And
	Or
	Xor
	Not
	ShiftLeft
	ShiftRight
	ArithShiftRight
	Equal
	NotEqual
	LessThan
	LessThanEq
	ReplicateBit
	ZeroExtend
	SignExtend
	SelectBits
	Concat
	Mux
	CountOnes
	Identity
	Const
	DontCare
	Register
	RegisterEn
	BRAM
	TrueDualBRAM
	Display
	Finish
	TestPlusArgs
	Input
	Output
	RegFileMake
	RegFileRead
	RegFileWrite
	Custom
)

func (k PrimKind) String() string {
	switch k {
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	case Mul:
		return "Mul"
	case Div:
		return "Div"
	case Mod:
		return "Mod"
	case And:
		return "And"
	case Or:
		return "Or"
	case Xor:
		return "Xor"
	case Not:
		return "Not"
	case ShiftLeft:
		return "ShiftLeft"
	case ShiftRight:
		return "ShiftRight"
	case ArithShiftRight:
		return "ArithShiftRight"
	case Equal:
		return "Equal"
	case NotEqual:
		return "NotEqual"
	case LessThan:
		return "LessThan"
	case LessThanEq:
		return "LessThanEq"
	case ReplicateBit:
		return "ReplicateBit"
	case ZeroExtend:
		return "ZeroExtend"
	case SignExtend:
		return "SignExtend"
	case SelectBits:
		return "SelectBits"
	case Concat:
		return "Concat"
	case Mux:
		return "Mux"
	case CountOnes:
		return "CountOnes"
	case Identity:
		return "Identity"
	case Const:
		return "Const"
	case DontCare:
		return "DontCare"
	case Register:
		return "Register"
	case RegisterEn:
		return "RegisterEn"
	case BRAM:
		return "BRAM"
	case TrueDualBRAM:
		return "TrueDualBRAM"
	case Display:
		return "Display"
	case Finish:
		return "Finish"
	case TestPlusArgs:
		return "TestPlusArgs"
	case Input:
		return "Input"
	case Output:
		return "Output"
	case RegFileMake:
		return "RegFileMake"
	case RegFileRead:
		return "RegFileRead"
	case RegFileWrite:
		return "RegFileWrite"
	case Custom:
		return "Custom"
	}
	return "UnknownPrim"
}

// Signal names one port of a Custom primitive.
type Signal struct {
	Name  string `json:"name"`
	Width int    `json:"width"`
}

// Param is a named parameter passed to a Custom instantiation, e.g.
// `.key(val)`. Value is the literal Verilog text to place inside the
// parens, already formatted by the caller.
type Param struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Prim is a tagged variant: Kind discriminates which fields below are
// meaningful, mirroring how a single register descriptor in the teacher's
// register-extraction tooling reused one struct across 32- and 64-bit,
// read/write/pulse register flavours instead of one type per flavour.
type Prim struct {
	Kind PrimKind `json:"kind"`

	// Width is the primary output width for arithmetic/logic/shift/
	// relational/extend/select/concat/mux/replicate/identity/const/
	// dontcare/register primitives, the address width (aw) for BRAM/
	// TrueDualBRAM/RegFileMake/RegFileWrite, and the port width for
	// Input/Output/RegFileRead.
	Width int `json:"width"`

	// Width2 is the second width parameter: ow for ZeroExtend/SignExtend,
	// wb for Concat (width of the second operand), dw for BRAM/
	// TrueDualBRAM/RegFileMake/RegFileWrite.
	Width2 int `json:"width2,omitempty"`

	// Hi, Lo bound the bit range selected by SelectBits.
	Hi int `json:"hi,omitempty"`
	Lo int `json:"lo,omitempty"`

	// Value holds the literal value of a Const.
	Value uint64 `json:"value,omitempty"`

	// Init holds the reset value of Register/RegisterEn.
	Init uint64 `json:"init,omitempty"`

	// Name holds the port name of Input/Output, or the plusargs string
	// of TestPlusArgs.
	Name string `json:"name,omitempty"`

	// InitFile holds the $readmemh source for BRAM/TrueDualBRAM/
	// RegFileMake; empty means no initial contents.
	InitFile string `json:"initFile,omitempty"`

	// ID identifies the register file an instance of RegFileMake/
	// RegFileRead/RegFileWrite belongs to.
	ID int `json:"id,omitempty"`

	// Schema is the ordered Display format, built with DisplaySchemaBuilder.
	Schema []DisplayItem `json:"schema,omitempty"`

	// Custom-only fields.
	CustomName string   `json:"customName,omitempty"`
	InSigs     []Signal `json:"inSigs,omitempty"`
	OutSigs    []Signal `json:"outSigs,omitempty"`
	Params     []Param  `json:"params,omitempty"`
	Clocked    bool     `json:"clocked,omitempty"`
}

// inlinable is the closed set of primitives whose Verilog syntax is
// self-delimiting (unary, brace-bracketed, indexed, or a function call)
// and may therefore be rendered inside an enclosing expression without a
// named intermediate wire. Infix binary operators are never inlined:
// associativity/precedence with the surrounding context would be unsafe.
var inlinable = map[PrimKind]bool{
	Const:        true,
	DontCare:     true,
	Not:          true,
	ReplicateBit: true,
	ZeroExtend:   true,
	SignExtend:   true,
	SelectBits:   true,
	Concat:       true,
	CountOnes:    true,
	Identity:     true,
}

// Inlinable reports whether p may appear as a Tree root inside an
// enclosing expression rather than as a named wire.
func (p Prim) Inlinable() bool {
	return inlinable[p.Kind]
}

// NumOutputs returns how many output ports p declares.
func NumOutputs(p Prim) int {
	switch p.Kind {
	case TrueDualBRAM:
		return 2
	case Output, Display, Finish, RegFileMake, RegFileWrite:
		return 0
	case Custom:
		return len(p.OutSigs)
	default:
		return 1
	}
}

// OutputWidths returns the width of each output port of p, in port order.
func OutputWidths(p Prim) []int {
	switch p.Kind {
	case Add, Sub, Mul, Div, Mod, And, Or, Xor, Not,
		ShiftLeft, ShiftRight, ArithShiftRight,
		ReplicateBit, Identity, Const, DontCare, Register, RegisterEn:
		return []int{p.Width}
	case Equal, NotEqual, LessThan, LessThanEq, TestPlusArgs:
		return []int{1}
	case ZeroExtend, SignExtend:
		return []int{p.Width2}
	case SelectBits:
		return []int{p.Hi - p.Lo + 1}
	case Concat:
		return []int{p.Width + p.Width2}
	case Mux:
		return []int{p.Width}
	case CountOnes:
		return []int{p.Width}
	case BRAM:
		return []int{p.Width2}
	case TrueDualBRAM:
		return []int{p.Width2, p.Width2}
	case Input:
		return []int{p.Width}
	case RegFileRead:
		return []int{p.Width}
	case Custom:
		ws := make([]int, len(p.OutSigs))
		for i, s := range p.OutSigs {
			ws[i] = s.Width
		}
		return ws
	default:
		return nil
	}
}

// NumInputs returns the number of NetInput arguments p takes, or -1 if
// the arity is variable (Display, Custom).
func NumInputs(p Prim) int {
	switch p.Kind {
	case Add, Sub, Mul, Div, Mod, And, Or, Xor,
		ShiftLeft, ShiftRight, ArithShiftRight,
		Equal, NotEqual, LessThan, LessThanEq, Concat:
		return 2
	case Not, ReplicateBit, ZeroExtend, SignExtend, SelectBits,
		CountOnes, Identity, Register:
		return 1
	case Mux:
		return 3
	case Const, DontCare, TestPlusArgs, Input, RegFileMake:
		return 0
	case RegisterEn:
		return 2
	case BRAM:
		return 3
	case TrueDualBRAM:
		return 6
	case Output, Finish:
		return 1
	case RegFileRead:
		return 1
	case RegFileWrite:
		return 3
	case Display:
		return -1
	case Custom:
		return -1
	}
	return -1
}
