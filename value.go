package pdf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ScriptRock/textpdf/internal/types"
)

// A Value is a single PDF value, such as an integer, dictionary, or array.
// The zero Value is a PDF null (Kind() == NullKind, IsNull() = true).
type Value struct {
	r    *Reader
	ptr  types.Objptr
	data types.Object
}

// IsNull reports whether the value is a null. It is equivalent to Kind() == NullKind.
func (v Value) IsNull() bool {
	return v.data == nil
}

// A ValueKind specifies the kind of data underlying a Value.
type ValueKind int

// The PDF value kinds.
const (
	NullKind ValueKind = iota
	BoolKind
	IntegerKind
	RealKind
	StringKind
	NameKind
	DictKind
	ArrayKind
	StreamKind
)

// Kind reports the kind of value underlying v.
func (v Value) Kind() ValueKind {
	switch v.data.(type) {
	default:
		return NullKind
	case bool:
		return BoolKind
	case int64:
		return IntegerKind
	case float64:
		return RealKind
	case string:
		return StringKind
	case types.Name:
		return NameKind
	case types.Dict:
		return DictKind
	case types.Array:
		return ArrayKind
	case types.Stream:
		return StreamKind
	}
}

// Ptr returns the indirect reference v was loaded through, if any.
func (v Value) Ptr() types.Objptr { return v.ptr }

// String formats v for debugging and tests. For the bytes of a string
// value use RawString.
func (v Value) String() string {
	return objfmt(v.data)
}

func objfmt(x types.Object) string {
	var sb strings.Builder
	writeObj(&sb, x)
	return sb.String()
}

// writeObj formats x with dictionary keys sorted, so the output is stable.
func writeObj(sb *strings.Builder, x types.Object) {
	switch x := x.(type) {
	case string:
		sb.WriteString(strconv.Quote(x))
	case types.Name:
		sb.WriteString("/" + string(x))
	case types.Dict:
		sb.WriteString("<<")
		for i, k := range sortedKeys(x) {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString("/" + k + " ")
			writeObj(sb, x[types.Name(k)])
		}
		sb.WriteString(">>")
	case types.Array:
		sb.WriteByte('[')
		for i, elem := range x {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeObj(sb, elem)
		}
		sb.WriteByte(']')
	case types.Stream:
		writeObj(sb, x.Hdr)
		fmt.Fprintf(sb, "@%d", x.Offset)
	case types.Objptr:
		fmt.Fprintf(sb, "%d %d R", x.ID, x.Gen)
	case types.Objdef:
		fmt.Fprintf(sb, "{%d %d obj}", x.Ptr.ID, x.Ptr.Gen)
		writeObj(sb, x.Obj)
	default:
		fmt.Fprint(sb, x)
	}
}

func sortedKeys(d types.Dict) []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}

// dict returns the dictionary of v, or the header dictionary if v is a stream.
func (v Value) dict() (types.Dict, bool) {
	switch x := v.data.(type) {
	case types.Dict:
		return x, true
	case types.Stream:
		return x.Hdr, true
	}
	return nil, false
}

// Int64 returns v's int64 value.
// If v.Kind() != IntegerKind, Int64 returns 0.
func (v Value) Int64() int64 {
	x, _ := v.data.(int64)
	return x
}

// Float64 returns v's float64 value, converting from integer if necessary.
// If v.Kind() != RealKind and v.Kind() != IntegerKind, Float64 returns 0.
func (v Value) Float64() float64 {
	switch x := v.data.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	}
	return 0
}

// RawString returns v's string value.
// If v.Kind() != StringKind, RawString returns the empty string.
func (v Value) RawString() string {
	x, _ := v.data.(string)
	return x
}

// Name returns v's name value, without the leading slash.
// If v.Kind() != NameKind, Name returns the empty string.
func (v Value) Name() string {
	x, _ := v.data.(types.Name)
	return string(x)
}

// Key returns the value stored under key in the dictionary v, following
// an indirect reference if there is one. Streams answer for their header.
// Anything else yields a null Value.
func (v Value) Key(key string) Value {
	d, ok := v.dict()
	if !ok {
		return Value{}
	}
	return v.r.resolve(v.ptr, d[types.Name(key)])
}

// Keys returns the sorted keys of the dictionary v, or nil if v has none.
func (v Value) Keys() []string {
	d, ok := v.dict()
	if !ok {
		return nil
	}
	return sortedKeys(d)
}

// Index returns the i'th element in the array v.
// If v.Kind() != ArrayKind or if i is outside the array bounds,
// Index returns a null Value.
func (v Value) Index(i int) Value {
	x, ok := v.data.(types.Array)
	if !ok || i < 0 || i >= len(x) {
		return Value{}
	}
	return v.r.resolve(v.ptr, x[i])
}

// Len returns the length of the array v.
// If v.Kind() != ArrayKind, Len returns 0.
func (v Value) Len() int {
	x, _ := v.data.(types.Array)
	return len(x)
}

// StreamOffset returns the file offset of the first data byte of the stream v.
// If v.Kind() != StreamKind, StreamOffset returns -1.
func (v Value) StreamOffset() int64 {
	x, ok := v.data.(types.Stream)
	if !ok {
		return -1
	}
	return x.Offset
}
