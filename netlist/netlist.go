package netlist

import "sort"

// NetInput is the argument form of a primitive: either a reference to a
// previously materialised output wire of another net (Wire form), or an
// inlined sub-expression tree of a "pure" primitive (Tree form, only
// legal where the printer accepts inlining).
type NetInput struct {
	IsTree bool `json:"isTree"`

	// Wire form.
	InstID int `json:"instId,omitempty"`
	Port   int `json:"port,omitempty"`

	// Tree form.
	Prim     *Prim      `json:"prim,omitempty"`
	Children []NetInput `json:"children,omitempty"`
}

// Wire builds a reference to output port `port` of the net with the given
// instance id.
func Wire(instID, port int) NetInput {
	return NetInput{InstID: instID, Port: port}
}

// Tree builds an inlined sub-expression over prim and its children.
func Tree(prim Prim, children ...NetInput) NetInput {
	return NetInput{IsTree: true, Prim: &prim, Children: children}
}

// Net is a single node in the netlist: a stable instance id, its
// primitive, the primitive's inputs, a name-hint set, and (for Custom)
// the positional names of its output ports.
type Net struct {
	InstID   int             `json:"instId"`
	Prim     Prim            `json:"prim"`
	Inputs   []NetInput      `json:"inputs"`
	Hints    map[string]bool `json:"hints,omitempty"`
	OutNames []string        `json:"outNames,omitempty"`
}

// AddHint records a user-supplied identifier-readability hint on n.
func (n *Net) AddHint(hint string) {
	if n.Hints == nil {
		n.Hints = make(map[string]bool)
	}
	n.Hints[hint] = true
}

// SortedHints returns n's name hints in deterministic (lexicographic)
// order, regardless of how they were accumulated.
func (n *Net) SortedHints() []string {
	hints := make([]string, 0, len(n.Hints))
	for h := range n.Hints {
		hints = append(hints, h)
	}
	sort.Strings(hints)
	return hints
}

// Netlist is a sparse mapping from instance id to net; gaps are allowed.
type Netlist map[int]*Net

// Nets returns every net in the netlist ordered by ascending instance id —
// the fixed iteration order spec.md requires for deterministic output.
func (nl Netlist) Nets() []*Net {
	ids := make([]int, 0, len(nl))
	for id := range nl {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	nets := make([]*Net, len(ids))
	for i, id := range ids {
		nets[i] = nl[id]
	}
	return nets
}

// inputPort names one de-duplicated module input.
type inputPort struct {
	Width int
	Name  string
}

// InputPorts collects every Input primitive's (width, name) pair, in
// ascending net-id order, de-duplicated by (width, name) preserving the
// first-seen occurrence.
func (nl Netlist) InputPorts() []inputPort {
	seen := make(map[inputPort]bool)
	var ports []inputPort
	for _, n := range nl.Nets() {
		if n.Prim.Kind != Input {
			continue
		}
		p := inputPort{Width: n.Prim.Width, Name: n.Prim.Name}
		if seen[p] {
			continue
		}
		seen[p] = true
		ports = append(ports, p)
	}
	return ports
}

// outputPort names one module output.
type outputPort struct {
	Width int
	Name  string
}

// OutputPorts collects every Output primitive's (width, name) pair, in
// ascending net-id order.
func (nl Netlist) OutputPorts() []outputPort {
	var ports []outputPort
	for _, n := range nl.Nets() {
		if n.Prim.Kind != Output {
			continue
		}
		ports = append(ports, outputPort{Width: n.Prim.Width, Name: n.Prim.Name})
	}
	return ports
}

// WidthOf returns the bit width that NetInput in evaluates to: for a Tree,
// the width of its own primitive's (sole) output; for a Wire, the width of
// the referenced net's output at the given port.
func WidthOf(nl Netlist, in NetInput) (int, error) {
	if in.IsTree {
		ws := OutputWidths(*in.Prim)
		if len(ws) == 0 {
			return 0, &MalformedNetlistError{InstID: NoInstID, Message: "inlined " + in.Prim.Kind.String() + " has no output"}
		}
		return ws[0], nil
	}
	n, ok := nl[in.InstID]
	if !ok {
		return 0, &MalformedNetlistError{InstID: in.InstID, Message: "wire references missing instance id"}
	}
	ws := OutputWidths(n.Prim)
	if in.Port < 0 || in.Port >= len(ws) {
		return 0, &MalformedNetlistError{InstID: in.InstID, Message: "wire references out-of-range output port"}
	}
	return ws[in.Port], nil
}
