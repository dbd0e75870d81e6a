package netlist

import "strconv"

// Validate checks the netlist and returns the first violation found, or nil
// if none is found: each net's input count, that every Wire names an
// existing net and output port, that every Tree root is inlinable, that each
// RegFileMake precedes the reads and writes of its register file, that Input
// names agree on width, and that Output names are unique. The widths of a
// net's inputs are not checked against its primitive. Generation must not
// proceed past a validation failure.
func (nl Netlist) Validate() error {
	regFileMade := make(map[int]bool)

	for _, n := range nl.Nets() {
		if err := validateArity(n); err != nil {
			return err
		}
		if err := validateInputs(nl, n); err != nil {
			return err
		}

		switch n.Prim.Kind {
		case RegFileMake:
			regFileMade[n.Prim.ID] = true
		case RegFileRead, RegFileWrite:
			if !regFileMade[n.Prim.ID] {
				return &MalformedNetlistError{
					InstID:  n.InstID,
					Message: "register file read/write before matching RegFileMake",
				}
			}
		}
	}

	if err := validateUniqueNames(nl); err != nil {
		return err
	}

	return nil
}

func validateArity(n *Net) error {
	want := NumInputs(n.Prim)
	if want < 0 {
		switch n.Prim.Kind {
		case Display:
			want = 1 + NumBitSlots(n.Prim.Schema)
		case Custom:
			want = len(n.Prim.InSigs)
		default:
			return &UnsupportedPrimitiveError{InstID: n.InstID, Kind: n.Prim.Kind}
		}
	}
	if len(n.Inputs) != want {
		return &MalformedNetlistError{
			InstID:  n.InstID,
			Message: "expected " + strconv.Itoa(want) + " inputs, got " + strconv.Itoa(len(n.Inputs)),
		}
	}
	return nil
}

func validateInputs(nl Netlist, n *Net) error {
	for _, in := range n.Inputs {
		if err := validateNetInput(nl, n.InstID, in); err != nil {
			return err
		}
	}
	return nil
}

func validateNetInput(nl Netlist, owner int, in NetInput) error {
	if in.IsTree {
		if in.Prim == nil {
			return &MalformedNetlistError{InstID: owner, Message: "tree input has nil primitive"}
		}
		if !in.Prim.Inlinable() {
			return &MalformedNetlistError{InstID: owner, Message: in.Prim.Kind.String() + " is not inlinable"}
		}
		for _, c := range in.Children {
			if err := validateNetInput(nl, owner, c); err != nil {
				return err
			}
		}
		return nil
	}
	if _, _, err := resolveWire(nl, owner, in); err != nil {
		return err
	}
	return nil
}

// resolveWire looks up the net and output width a Wire NetInput refers to.
func resolveWire(nl Netlist, owner int, in NetInput) (*Net, int, error) {
	n, ok := nl[in.InstID]
	if !ok {
		return nil, 0, &MalformedNetlistError{InstID: owner, Message: "wire references missing instance id " + strconv.Itoa(in.InstID)}
	}
	ws := OutputWidths(n.Prim)
	if in.Port < 0 || in.Port >= len(ws) {
		return nil, 0, &MalformedNetlistError{InstID: owner, Message: "wire references out-of-range output port of instance " + strconv.Itoa(in.InstID)}
	}
	return n, ws[in.Port], nil
}

func validateUniqueNames(nl Netlist) error {
	// nl.InputPorts() already de-duplicates exact (width,name) matches, so
	// any name seen twice here means two Input nets disagree on width.
	seenIn := make(map[string]int)
	for _, p := range nl.InputPorts() {
		if w, ok := seenIn[p.Name]; ok && w != p.Width {
			return &MalformedNetlistError{InstID: NoInstID, Message: "conflicting widths for input port " + p.Name}
		}
		seenIn[p.Name] = p.Width
	}
	seenOut := make(map[string]bool)
	for _, p := range nl.OutputPorts() {
		if seenOut[p.Name] {
			return &MalformedNetlistError{InstID: NoInstID, Message: "duplicate output name: " + p.Name}
		}
		seenOut[p.Name] = true
	}
	return nil
}

