package xtcexml

import "encoding/xml"

// The structs below mirror the XTCE elements the loader understands. Element
// and attribute names are matched on their local part, so documents in the
// 1.1 and 1.2 namespaces decode alike.

type xmlNameDescription struct {
	Name             string         `xml:"name,attr"`
	ShortDescription string         `xml:"shortDescription,attr"`
	LongDescription  string         `xml:"LongDescription"`
	Aliases          []xmlAlias     `xml:"AliasSet>Alias"`
	Ancillary        []xmlAncillary `xml:"AncillaryDataSet>AncillaryData"`
}

type xmlAlias struct {
	NameSpace string `xml:"nameSpace,attr"`
	Alias     string `xml:"alias,attr"`
}

type xmlAncillary struct {
	Name     string `xml:"name,attr"`
	MimeType string `xml:"mimeType,attr"`
	Href     string `xml:"href,attr"`
	Value    string `xml:",chardata"`
}

type xmlSpaceSystem struct {
	XMLName xml.Name `xml:"SpaceSystem"`
	xmlNameDescription
	Telemetry *xmlTelemetry    `xml:"TelemetryMetaData"`
	Command   *xmlCommand      `xml:"CommandMetaData"`
	Children  []xmlSpaceSystem `xml:"SpaceSystem"`
}

type xmlTelemetry struct {
	ParameterTypes xmlTypeSet     `xml:"ParameterTypeSet"`
	Parameters     []xmlParameter `xml:"ParameterSet>Parameter"`
	Containers     []xmlContainer `xml:"ContainerSet>SequenceContainer"`
	Streams        xmlStreamSet   `xml:"StreamSet"`
}

type xmlCommand struct {
	ArgumentTypes     xmlTypeSet       `xml:"ArgumentTypeSet"`
	MetaCommands      []xmlMetaCommand `xml:"MetaCommandSet>MetaCommand"`
	CommandContainers []xmlContainer   `xml:"CommandContainerSet>CommandContainer"`
}

// xmlTypeSet keeps the types of a ParameterTypeSet or ArgumentTypeSet in
// document order regardless of their element names.
type xmlTypeSet struct {
	Types []xmlType
}

type xmlType struct {
	// Element is the local element name, e.g. "FloatParameterType".
	Element string `xml:"-"`
	xmlNameDescription
	BaseType        string  `xml:"baseType,attr"`
	InitialValue    *string `xml:"initialValue,attr"`
	Signed          *bool   `xml:"signed,attr"`
	SizeInBits      int     `xml:"sizeInBits,attr"`
	ZeroStringValue string  `xml:"zeroStringValue,attr"`
	OneStringValue  string  `xml:"oneStringValue,attr"`
	ArrayTypeRef    string  `xml:"arrayTypeRef,attr"`
	NumDimensions   int     `xml:"numberOfDimensions,attr"`

	Units          []string          `xml:"UnitSet>Unit"`
	IntegerEncode  *xmlEncoding      `xml:"IntegerDataEncoding"`
	FloatEncode    *xmlEncoding      `xml:"FloatDataEncoding"`
	StringEncode   *xmlEncoding      `xml:"StringDataEncoding"`
	BinaryEncode   *xmlEncoding      `xml:"BinaryDataEncoding"`
	ValidRange     *xmlRange         `xml:"ValidRange"`
	ValidRangeSet  *xmlValidRangeSet `xml:"ValidRangeSet"`
	Enumerations   []xmlEnumeration  `xml:"EnumerationList>Enumeration"`
	Members        []xmlMember       `xml:"MemberList>Member"`
	DimensionsList []xmlDimension    `xml:"DimensionList>Dimension"`
}

type xmlEncoding struct {
	SizeInBits   int    `xml:"sizeInBits,attr"`
	Encoding     string `xml:"encoding,attr"`
	BitOrder     string `xml:"bitOrder,attr"`
	ByteOrder    string `xml:"byteOrder,attr"`
	FixedBits    int    `xml:"SizeInBits>FixedValue"`
	FixedStrBits int    `xml:"SizeInBits>Fixed>FixedValue"`
}

type xmlRange struct {
	MinInclusive        *string `xml:"minInclusive,attr"`
	MaxInclusive        *string `xml:"maxInclusive,attr"`
	MinExclusive        *string `xml:"minExclusive,attr"`
	MaxExclusive        *string `xml:"maxExclusive,attr"`
	AppliesToCalibrated *bool   `xml:"validRangeAppliesToCalibrated,attr"`
}

type xmlValidRangeSet struct {
	AppliesToCalibrated *bool      `xml:"validRangeAppliesToCalibrated,attr"`
	Ranges              []xmlRange `xml:"ValidRange"`
}

type xmlEnumeration struct {
	Value            int64  `xml:"value,attr"`
	MaxValue         *int64 `xml:"maxValue,attr"`
	Label            string `xml:"label,attr"`
	ShortDescription string `xml:"shortDescription,attr"`
}

type xmlMember struct {
	Name    string `xml:"name,attr"`
	TypeRef string `xml:"typeRef,attr"`
}

type xmlDimension struct {
	Start int `xml:"StartingIndex>FixedValue"`
	End   int `xml:"EndingIndex>FixedValue"`
}

type xmlParameter struct {
	xmlNameDescription
	TypeRef      string                  `xml:"parameterTypeRef,attr"`
	InitialValue *string                 `xml:"initialValue,attr"`
	Properties   *xmlParameterProperties `xml:"ParameterProperties"`
}

type xmlParameterProperties struct {
	ReadOnly bool `xml:"readOnly,attr"`
}

type xmlContainer struct {
	xmlNameDescription
	Abstract bool         `xml:"abstract,attr"`
	Base     *xmlBaseRef  `xml:"BaseContainer"`
	Entries  xmlEntryList `xml:"EntryList"`
}

type xmlBaseRef struct {
	ContainerRef string `xml:"containerRef,attr"`
}

// xmlEntryList keeps entries in document order regardless of their element
// names.
type xmlEntryList struct {
	Entries []xmlEntry
}

type xmlEntry struct {
	Element      string `xml:"-"`
	ParameterRef string `xml:"parameterRef,attr"`
	ArgumentRef  string `xml:"argumentRef,attr"`
	ContainerRef string `xml:"containerRef,attr"`
	Name         string `xml:"name,attr"`
	BinaryValue  string `xml:"binaryValue,attr"`
	SizeInBits   int    `xml:"sizeInBits,attr"`
}

type xmlStreamSet struct {
	Fixed    []xmlStream `xml:"FixedFrameStream"`
	Variable []xmlStream `xml:"VariableFrameStream"`
	Custom   []xmlStream `xml:"CustomStream"`
}

type xmlStream struct {
	xmlNameDescription
	ContainerRef *xmlContainerRef `xml:"ContainerRef"`
}

type xmlContainerRef struct {
	ContainerRef string `xml:"containerRef,attr"`
}

type xmlMetaCommand struct {
	xmlNameDescription
	Abstract         bool                `xml:"abstract,attr"`
	BaseMetaCommand  *xmlBaseMetaCommand `xml:"BaseMetaCommand"`
	Arguments        []xmlArgument       `xml:"ArgumentList>Argument"`
	CommandContainer *xmlContainer       `xml:"CommandContainer"`
}

type xmlBaseMetaCommand struct {
	MetaCommandRef string `xml:"metaCommandRef,attr"`
}

type xmlArgument struct {
	xmlNameDescription
	TypeRef      string  `xml:"argumentTypeRef,attr"`
	InitialValue *string `xml:"initialValue,attr"`
}

// UnmarshalXML collects every child element of the set as a type.
func (s *xmlTypeSet) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var typ xmlType
			if err := d.DecodeElement(&typ, &t); err != nil {
				return err
			}
			typ.Element = t.Name.Local
			s.Types = append(s.Types, typ)
		case xml.EndElement:
			return nil
		}
	}
}

// UnmarshalXML collects every child element of the list as an entry.
func (l *xmlEntryList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var e xmlEntry
			if err := d.DecodeElement(&e, &t); err != nil {
				return err
			}
			e.Element = t.Name.Local
			l.Entries = append(l.Entries, e)
		case xml.EndElement:
			return nil
		}
	}
}
