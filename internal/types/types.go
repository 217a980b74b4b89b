package types

// A Name is a PDF name, without the leading slash.
type Name string

// An Object is a PDF syntax object, one of the following Go types:
//
//	bool, a PDF boolean
//	int64, a PDF integer
//	float64, a PDF real
//	string, a PDF string literal
//	Name, a PDF name without the leading slash
//	Dict, a PDF dictionary
//	Array, a PDF array
//	Stream, a PDF stream
//	Objptr, a PDF object reference
//	Objdef, a PDF object definition
//
// An Object may also be nil, to represent the PDF null.
type Object any

type Dict map[Name]Object

type Array []Object

// A Stream is a stream header together with the file offset of its first data byte.
type Stream struct {
	Hdr    Dict
	Ptr    Objptr
	Offset int64
}

type Objptr struct {
	ID  uint32
	Gen uint16
}

type Objdef struct {
	Ptr Objptr
	Obj Object
}

// Xref is one line of a classic cross-reference table.
// Free entries keep InUse false; entry 0 is always the free-list head.
type Xref struct {
	Ptr    Objptr
	InUse  bool
	Offset int64
}
