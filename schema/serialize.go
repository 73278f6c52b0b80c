package schema

import "github.com/membraneframework/webm/ebml"

// Encode serializes an Element tree by name, looking up each node's wire ID
// in the registry rather than trusting e.ID — this lets callers build a tree
// with only Name and a value field set, the way mux assembles Info/Tracks.
func Encode(e *Element) []byte {
	def, ok := ByName(e.Name)
	id := e.ID
	if ok {
		id = def.ID
	}

	kind := e.Kind
	if ok {
		kind = def.Kind
	}

	switch kind {
	case KindMaster:
		children := make([][]byte, 0, len(e.Children))
		for _, c := range e.Children {
			children = append(children, Encode(c))
		}
		return ebml.EncodeMaster(id, children...)
	case KindUint:
		return ebml.EncodeElement(id, ebml.EncodeUint(e.Uint))
	case KindInt:
		return ebml.EncodeElement(id, ebml.EncodeInt(e.Int))
	case KindFloat:
		return ebml.EncodeElement(id, ebml.EncodeFloat64(e.Float))
	case KindString:
		return ebml.EncodeElement(id, ebml.EncodeString(e.Str))
	case KindUTF8:
		return ebml.EncodeElement(id, ebml.EncodeUTF8(e.Str))
	case KindDate:
		return ebml.EncodeElement(id, ebml.EncodeDate(e.Date))
	default:
		return ebml.EncodeElement(id, e.Bin)
	}
}

// Uint builds a leaf uint Element by schema name.
func Uint(name string, v uint64) *Element {
	return &Element{Name: name, Kind: KindUint, Uint: v}
}

// Int builds a leaf int Element by schema name.
func Int(name string, v int64) *Element {
	return &Element{Name: name, Kind: KindInt, Int: v}
}

// Float builds a leaf float Element by schema name.
func Float(name string, v float64) *Element {
	return &Element{Name: name, Kind: KindFloat, Float: v}
}

// UTF8 builds a leaf UTF-8 Element by schema name.
func UTF8(name string, v string) *Element {
	return &Element{Name: name, Kind: KindUTF8, Str: v}
}

// Str builds a leaf ASCII-string Element by schema name.
func Str(name string, v string) *Element {
	return &Element{Name: name, Kind: KindString, Str: v}
}

// Binary builds a leaf binary Element by schema name.
func Binary(name string, v []byte) *Element {
	return &Element{Name: name, Kind: KindBinary, Bin: v}
}

// Master builds a master Element by schema name from already-built children.
func Master(name string, children ...*Element) *Element {
	return &Element{Name: name, Kind: KindMaster, Children: children}
}
