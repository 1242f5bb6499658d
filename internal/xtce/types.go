package xtce

import "github.com/zclconf/go-cty/cty"

// Space tells whether a type was declared for telemetry or for commanding.
type Space uint8

const (
	TelemetrySpace Space = iota
	CommandSpace
)

// String returns "telemetry" or "command".
func (s Space) String() string {
	if s == CommandSpace {
		return "command"
	}
	return "telemetry"
}

// Category is the closed set of type categories.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryBoolean
	CategoryInteger
	CategoryFloat
	CategoryEnumerated
	CategoryString
	CategoryAggregate
	CategoryArray
)

var categoryNames = map[Category]string{
	CategoryUnknown:    "unknown",
	CategoryBoolean:    "boolean",
	CategoryInteger:    "integer",
	CategoryFloat:      "float",
	CategoryEnumerated: "enumerated",
	CategoryString:     "string",
	CategoryAggregate:  "aggregate",
	CategoryArray:      "array",
}

// String returns the lower-case category name.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryUnknown]
}

// Encoding is the raw (on-the-wire) representation of a value.
type Encoding struct {
	SizeInBits int
	// Name is the XTCE encoding attribute, e.g. "unsigned",
	// "twosComplement", "IEEE754_1985" or "UTF-8".
	Name      string
	BitOrder  string
	ByteOrder string
}

// TypeDetail is the category-specific payload of a TypeDefinition. The set of
// implementations is closed: BooleanType, IntegerType, FloatType,
// EnumeratedType, StringType, AggregateType and ArrayType.
type TypeDetail interface {
	Category() Category
	DataEncoding() Encoding
	isTypeDetail()
}

// BooleanType maps a raw 0/1 to two display strings.
type BooleanType struct {
	Encoding        Encoding
	ZeroStringValue string
	OneStringValue  string
}

// ZeroString returns ZeroStringValue, or "False" when unset.
func (t *BooleanType) ZeroString() string {
	if t.ZeroStringValue == "" {
		return "False"
	}
	return t.ZeroStringValue
}

// OneString returns OneStringValue, or "True" when unset.
func (t *BooleanType) OneString() string {
	if t.OneStringValue == "" {
		return "True"
	}
	return t.OneStringValue
}

// IntegerRange is the ValidRange of an integer type. The schema provides a
// single calibrated flag covering both bounds.
type IntegerRange struct {
	MinInclusive        string
	MaxInclusive        string
	AppliesToCalibrated bool
}

// IntegerType is a signed or unsigned integer.
type IntegerType struct {
	Encoding   Encoding
	Signed     bool
	SizeInBits int
	ValidRange *IntegerRange
}

// FloatRange is the ValidRange of a float type. Each bound is given either
// inclusively or exclusively; one calibrated flag covers both bounds.
type FloatRange struct {
	MinInclusive        *float64
	MinExclusive        *float64
	MaxInclusive        *float64
	MaxExclusive        *float64
	AppliesToCalibrated bool
}

// FloatType is an IEEE or MIL-STD floating point value.
type FloatType struct {
	Encoding   Encoding
	SizeInBits int
	ValidRange *FloatRange
}

// Enumeration is one label of an enumerated type.
type Enumeration struct {
	Value            int64
	MaxValue         *int64
	Label            string
	ShortDescription string
}

// EnumeratedType maps raw integers to labels.
type EnumeratedType struct {
	Encoding     Encoding
	Enumerations []Enumeration
}

// Label returns the label for raw value v.
func (e *EnumeratedType) Label(v int64) (string, bool) {
	for _, en := range e.Enumerations {
		if en.Value == v || (en.MaxValue != nil && v >= en.Value && v <= *en.MaxValue) {
			return en.Label, true
		}
	}
	return "", false
}

// StringType is a character string.
type StringType struct {
	Encoding Encoding
}

// AggregateType is a structure of named members.
type AggregateType struct {
	Members []*Member
}

// Member returns the first member named name.
func (a *AggregateType) Member(name string) (*Member, bool) {
	for _, m := range a.Members {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// ArrayType is an array of another type.
type ArrayType struct {
	ElementTypeRef string
	ElementType    *TypeDefinition
	Dimensions     int
}

func (*BooleanType) Category() Category    { return CategoryBoolean }
func (*IntegerType) Category() Category    { return CategoryInteger }
func (*FloatType) Category() Category      { return CategoryFloat }
func (*EnumeratedType) Category() Category { return CategoryEnumerated }
func (*StringType) Category() Category     { return CategoryString }
func (*AggregateType) Category() Category  { return CategoryAggregate }
func (*ArrayType) Category() Category      { return CategoryArray }

func (t *BooleanType) DataEncoding() Encoding    { return t.Encoding }
func (t *IntegerType) DataEncoding() Encoding    { return t.Encoding }
func (t *FloatType) DataEncoding() Encoding      { return t.Encoding }
func (t *EnumeratedType) DataEncoding() Encoding { return t.Encoding }
func (t *StringType) DataEncoding() Encoding     { return t.Encoding }
func (*AggregateType) DataEncoding() Encoding    { return Encoding{} }
func (*ArrayType) DataEncoding() Encoding        { return Encoding{} }

func (*BooleanType) isTypeDetail()    {}
func (*IntegerType) isTypeDetail()    {}
func (*FloatType) isTypeDetail()      {}
func (*EnumeratedType) isTypeDetail() {}
func (*StringType) isTypeDetail()     {}
func (*AggregateType) isTypeDetail()  {}
func (*ArrayType) isTypeDetail()      {}

// TypeDefinition is a parameter or argument type.
type TypeDefinition struct {
	NameDescription
	Space        Space
	BaseTypeRef  string
	BaseType     *TypeDefinition
	InitialValue *cty.Value
	Units        []string
	Detail       TypeDetail
}

// Category returns the category of the detail, or CategoryUnknown.
func (t *TypeDefinition) Category() Category {
	if t == nil || t.Detail == nil {
		return CategoryUnknown
	}
	return t.Detail.Category()
}

// Aggregate returns the aggregate detail when t is an aggregate type.
func (t *TypeDefinition) Aggregate() (*AggregateType, bool) {
	if t == nil {
		return nil, false
	}
	agg, ok := t.Detail.(*AggregateType)
	return agg, ok
}

// setOwner files t and its members under ss.
func (t *TypeDefinition) setOwner(ss *SpaceSystem) {
	t.owner = ss
	if agg, ok := t.Aggregate(); ok {
		for _, m := range agg.Members {
			m.aggregate = t
		}
	}
}
