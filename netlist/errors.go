package netlist

import "fmt"

// MalformedNetlistError reports a Wire reference to a missing instance id,
// or a primitive whose input arity or widths do not match its declared
// shape. Fatal: generation aborts without producing output.
// InstID is the offending net's instance id, or NoInstID when the
// violation is not attributable to a single net (e.g. a cross-net naming
// conflict).
type MalformedNetlistError struct {
	InstID  int
	Message string
}

// NoInstID marks a MalformedNetlistError as not attributable to a single
// net. Net instance ids are non-negative, so -1 is never a real id.
const NoInstID = -1

func (e *MalformedNetlistError) Error() string {
	if e.InstID == NoInstID {
		return fmt.Sprintf("malformed netlist: %s", e.Message)
	}
	return fmt.Sprintf("malformed netlist: net %d: %s", e.InstID, e.Message)
}

// UnsupportedPrimitiveError reports a PrimKind outside the closed set
// reaching the printer or contribution builder.
type UnsupportedPrimitiveError struct {
	InstID int
	Kind   PrimKind
}

func (e *UnsupportedPrimitiveError) Error() string {
	return fmt.Sprintf("unsupported primitive %s at net %d", e.Kind, e.InstID)
}
