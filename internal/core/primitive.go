package core

import (
	"fmt"
	"sort"

	"ddl/internal/source"
)

// Universe classifies terms: Type for data types, Format for binary
// encodings, Kind for Type and Format themselves.
type Universe uint8

const (
	UniverseType Universe = iota
	UniverseFormat
	UniverseKind
	universeCount
)

var universeNames = [...]string{
	UniverseType:   "Type",
	UniverseFormat: "Format",
	UniverseKind:   "Kind",
}

func (u Universe) String() string {
	if u < universeCount {
		return universeNames[u]
	}
	return fmt.Sprintf("Universe(%d)", u)
}

// Encoding is a fixed-width numeric format. Multi-byte encodings carry
// their byte order in the name.
type Encoding uint8

const (
	EncU8 Encoding = iota
	EncU16Le
	EncU16Be
	EncU32Le
	EncU32Be
	EncU64Le
	EncU64Be
	EncS8
	EncS16Le
	EncS16Be
	EncS32Le
	EncS32Be
	EncS64Le
	EncS64Be
	EncF32Le
	EncF32Be
	EncF64Le
	EncF64Be
	encodingCount
)

var encodingNames = [...]string{
	EncU8:    "U8",
	EncU16Le: "U16Le",
	EncU16Be: "U16Be",
	EncU32Le: "U32Le",
	EncU32Be: "U32Be",
	EncU64Le: "U64Le",
	EncU64Be: "U64Be",
	EncS8:    "S8",
	EncS16Le: "S16Le",
	EncS16Be: "S16Be",
	EncS32Le: "S32Le",
	EncS32Be: "S32Be",
	EncS64Le: "S64Le",
	EncS64Be: "S64Be",
	EncF32Le: "F32Le",
	EncF32Be: "F32Be",
	EncF64Le: "F64Le",
	EncF64Be: "F64Be",
}

func (e Encoding) String() string {
	if e < encodingCount {
		return encodingNames[e]
	}
	return fmt.Sprintf("Encoding(%d)", e)
}

// ByteOrder of a multi-byte encoding.
type ByteOrder uint8

const (
	OrderNone ByteOrder = iota // single byte
	OrderLittle
	OrderBig
)

// Width returns the encoded size in bytes.
func (e Encoding) Width() int {
	switch e {
	case EncU8, EncS8:
		return 1
	case EncU16Le, EncU16Be, EncS16Le, EncS16Be:
		return 2
	case EncU32Le, EncU32Be, EncS32Le, EncS32Be, EncF32Le, EncF32Be:
		return 4
	}
	return 8
}

func (e Encoding) Signed() bool {
	return e >= EncS8 && e <= EncS64Be
}

func (e Encoding) Float() bool {
	return e >= EncF32Le && e <= EncF64Be
}

func (e Encoding) Order() ByteOrder {
	if e.Width() == 1 {
		return OrderNone
	}
	switch e {
	case EncU16Le, EncU32Le, EncU64Le, EncS16Le, EncS32Le, EncS64Le, EncF32Le, EncF64Le:
		return OrderLittle
	}
	return OrderBig
}

// HostType is an in-memory value type.
type HostType uint8

const (
	HostBool HostType = iota
	HostInt
	HostF32
	HostF64
	hostTypeCount
)

var hostTypeNames = [...]string{
	HostBool: "Bool",
	HostInt:  "Int",
	HostF32:  "F32",
	HostF64:  "F64",
}

func (h HostType) String() string {
	if h < hostTypeCount {
		return hostTypeNames[h]
	}
	return fmt.Sprintf("HostType(%d)", h)
}

// Host returns the value type an encoding decodes into.
func (e Encoding) Host() HostType {
	switch {
	case e == EncF32Le || e == EncF32Be:
		return HostF32
	case e.Float():
		return HostF64
	}
	return HostInt
}

// BoolName returns the vocabulary name of a boolean constant.
func BoolName(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

type primitiveCtor func(sp source.Span) Term

// primitives is filled once in init and only read afterwards.
var primitives map[string]primitiveCtor

func init() {
	primitives = buildVocabulary()
}

func buildVocabulary() map[string]primitiveCtor {
	table := make(map[string]primitiveCtor, int(universeCount)+int(encodingCount)+int(hostTypeCount)+2)
	add := func(name string, ctor primitiveCtor) {
		if name == "" {
			panic("core: primitive without a name")
		}
		if _, dup := table[name]; dup {
			panic(fmt.Sprintf("core: duplicate primitive %q", name))
		}
		table[name] = ctor
	}

	if len(universeNames) != int(universeCount) || len(encodingNames) != int(encodingCount) || len(hostTypeNames) != int(hostTypeCount) {
		panic("core: primitive name tables out of sync with enumerations")
	}
	for u := Universe(0); u < universeCount; u++ {
		add(universeNames[u], func(sp source.Span) Term { return &UniverseTerm{Node: At(sp), Universe: u} })
	}
	for e := Encoding(0); e < encodingCount; e++ {
		add(encodingNames[e], func(sp source.Span) Term { return &EncodingTerm{Node: At(sp), Encoding: e} })
	}
	for h := HostType(0); h < hostTypeCount; h++ {
		add(hostTypeNames[h], func(sp source.Span) Term { return &HostTypeTerm{Node: At(sp), Host: h} })
	}
	for _, v := range []bool{true, false} {
		add(BoolName(v), func(sp source.Span) Term { return &BoolConst{Node: At(sp), Value: v} })
	}
	return table
}

// LookupPrimitive resolves name against the fixed vocabulary. The returned
// term carries sp.
func LookupPrimitive(name string, sp source.Span) (Term, bool) {
	ctor, ok := primitives[name]
	if !ok {
		return nil, false
	}
	return ctor(sp), true
}

// IsPrimitive reports whether name is in the vocabulary.
func IsPrimitive(name string) bool {
	_, ok := primitives[name]
	return ok
}

// PrimitiveNames returns the vocabulary in sorted order.
func PrimitiveNames() []string {
	names := make([]string, 0, len(primitives))
	for n := range primitives {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// PrimitiveName returns the vocabulary name a primitive term was parsed
// from, or false for non-primitive terms.
func PrimitiveName(t Term) (string, bool) {
	switch t := t.(type) {
	case *UniverseTerm:
		return t.Universe.String(), true
	case *EncodingTerm:
		return t.Encoding.String(), true
	case *HostTypeTerm:
		return t.Host.String(), true
	case *BoolConst:
		return BoolName(t.Value), true
	}
	return "", false
}
