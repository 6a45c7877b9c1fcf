package token

// Kind identifies the lexical class of the token a Cursor is positioned on.
type Kind uint8

const (
	// KindNone is reported before the first token and after the end of input.
	KindNone Kind = iota
	KindStartObject
	KindEndObject
	KindStartArray
	KindEndArray
	// KindFieldName is an object member name. Its text is the name.
	KindFieldName
	KindString
	// KindInt is a number whose source text has no fraction or exponent.
	KindInt
	// KindFloat is a number whose source text has a fraction or exponent.
	KindFloat
	KindTrue
	KindFalse
	KindNull
	// KindBinary is an embedded raw byte payload. JSON text never produces it;
	// binary document formats do.
	KindBinary
)

var kindNames = [...]string{
	KindNone:        "NONE",
	KindStartObject: "START_OBJECT",
	KindEndObject:   "END_OBJECT",
	KindStartArray:  "START_ARRAY",
	KindEndArray:    "END_ARRAY",
	KindFieldName:   "FIELD_NAME",
	KindString:      "STRING",
	KindInt:         "INT",
	KindFloat:       "FLOAT",
	KindTrue:        "TRUE",
	KindFalse:       "FALSE",
	KindNull:        "NULL",
	KindBinary:      "BINARY",
}

// String returns the upper-case name of the kind, e.g. "START_OBJECT".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "UNKNOWN"
}

// IsNumeric reports whether k is KindInt or KindFloat.
func (k Kind) IsNumeric() bool {
	return k == KindInt || k == KindFloat
}

// IsScalar reports whether k is a value token that is not a container
// delimiter.
func (k Kind) IsScalar() bool {
	switch k {
	case KindString, KindInt, KindFloat, KindTrue, KindFalse, KindNull, KindBinary:
		return true
	default:
		return false
	}
}

// IsStart reports whether k opens a container.
func (k Kind) IsStart() bool {
	return k == KindStartObject || k == KindStartArray
}

// IsEnd reports whether k closes a container.
func (k Kind) IsEnd() bool {
	return k == KindEndObject || k == KindEndArray
}
