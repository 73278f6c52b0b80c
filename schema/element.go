package schema

import "time"

// Element is a fully decoded node of the Matroska element tree: a name
// resolved from the registry (or UnknownName), the type-appropriate
// decoded value, and — for masters — its children in document order.
//
// Exactly one of Uint/Int/Float/Str/Date/Bin is meaningful, selected by
// Kind; Children is meaningful only when Kind == KindMaster.
type Element struct {
	Name     string
	ID       uint32
	Kind     Kind
	Uint     uint64
	Int      int64
	Float    float64
	Str      string
	Date     time.Time
	Bin      []byte
	Children []*Element

	// FlatStart marks a Segment/Cluster entry emitted by the streaming
	// Parser: the header has been consumed but the payload has not, so
	// Children is always nil here — the element's true children follow
	// as their own top-level Parse results. See Parser for details.
	FlatStart bool
}

// Find returns the first direct child with the given name, or nil.
func (e *Element) Find(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FindAll returns every direct child with the given name.
func (e *Element) FindAll(name string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}
