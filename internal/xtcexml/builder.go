package xtcexml

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/CesarCoelho/xtcetools-sub001/internal/alias"
	"github.com/CesarCoelho/xtcetools-sub001/internal/ctxlog"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtce"
)

type stats struct {
	spaceSystems int
	types        int
	parameters   int
	containers   int
	unresolved   int
}

// builder translates decoded elements into the model. Initial values of
// parameters and arguments depend on their resolved type, so their raw text
// is kept until the link pass.
type builder struct {
	logger       *slog.Logger
	stats        stats
	paramInitial map[*xtce.Parameter]string
	argInitial   map[*xtce.Argument]string
}

func newBuilder(ctx context.Context) *builder {
	return &builder{
		logger:       ctxlog.FromContext(ctx),
		paramInitial: make(map[*xtce.Parameter]string),
		argInitial:   make(map[*xtce.Argument]string),
	}
}

func (b *builder) attachChildren(tree *xtce.Tree, parent *xtce.SpaceSystem, doc *xmlSpaceSystem) error {
	for i := range doc.Children {
		childDoc := &doc.Children[i]
		child := b.spaceSystem(childDoc)
		if err := tree.Attach(parent, child); err != nil {
			return fmt.Errorf("error building space system tree: %w", err)
		}
		if err := b.attachChildren(tree, child, childDoc); err != nil {
			return err
		}
	}
	return nil
}

// spaceSystem translates x without its child Space Systems.
func (b *builder) spaceSystem(x *xmlSpaceSystem) *xtce.SpaceSystem {
	b.stats.spaceSystems++
	ss := xtce.NewSpaceSystem(x.Name)
	ss.NameDescription = nameDescription(&x.xmlNameDescription)

	if tm := x.Telemetry; tm != nil {
		for i := range tm.ParameterTypes.Types {
			if t := b.typeDefinition(&tm.ParameterTypes.Types[i]); t != nil {
				ss.AddParameterType(t)
			}
		}
		for i := range tm.Parameters {
			ss.AddParameter(b.parameter(&tm.Parameters[i]))
		}
		for i := range tm.Containers {
			ss.AddSequenceContainer(b.container(&tm.Containers[i]))
		}
		for _, group := range []struct {
			kind    xtce.StreamKind
			streams []xmlStream
		}{
			{xtce.FixedFrameStream, tm.Streams.Fixed},
			{xtce.VariableFrameStream, tm.Streams.Variable},
			{xtce.CustomStream, tm.Streams.Custom},
		} {
			for i := range group.streams {
				ss.AddStream(stream(&group.streams[i], group.kind))
			}
		}
	}

	if cmd := x.Command; cmd != nil {
		for i := range cmd.ArgumentTypes.Types {
			if t := b.typeDefinition(&cmd.ArgumentTypes.Types[i]); t != nil {
				ss.AddArgumentType(t)
			}
		}
		for i := range cmd.MetaCommands {
			ss.AddMetaCommand(b.metaCommand(&cmd.MetaCommands[i]))
		}
		for i := range cmd.CommandContainers {
			ss.AddCommandContainer(b.container(&cmd.CommandContainers[i]))
		}
	}
	return ss
}

func nameDescription(x *xmlNameDescription) xtce.NameDescription {
	nd := xtce.NameDescription{
		Name:             x.Name,
		ShortDescription: x.ShortDescription,
		LongDescription:  strings.TrimSpace(x.LongDescription),
	}
	for _, a := range x.Aliases {
		nd.Aliases.Add(alias.Alias{Name: a.Alias, Namespace: a.NameSpace})
	}
	for _, a := range x.Ancillary {
		nd.Ancillary = append(nd.Ancillary, xtce.AncillaryData{
			Name:     a.Name,
			Value:    strings.TrimSpace(a.Value),
			MimeType: a.MimeType,
			Href:     a.Href,
		})
	}
	return nd
}

func (b *builder) parameter(x *xmlParameter) *xtce.Parameter {
	b.stats.parameters++
	p := &xtce.Parameter{
		NameDescription: nameDescription(&x.xmlNameDescription),
		TypeRef:         x.TypeRef,
	}
	if x.Properties != nil {
		p.ReadOnly = x.Properties.ReadOnly
	}
	if x.InitialValue != nil {
		b.paramInitial[p] = *x.InitialValue
	}
	return p
}

func (b *builder) container(x *xmlContainer) *xtce.Container {
	b.stats.containers++
	c := &xtce.Container{
		NameDescription: nameDescription(&x.xmlNameDescription),
		Abstract:        x.Abstract,
	}
	if x.Base != nil {
		c.BaseRef = x.Base.ContainerRef
	}

	for _, e := range x.Entries.Entries {
		switch e.Element {
		case "ParameterRefEntry":
			c.Entries = append(c.Entries, xtce.Entry{Kind: xtce.ParameterRefEntry, Ref: e.ParameterRef})
		case "ArrayParameterRefEntry":
			c.Entries = append(c.Entries, xtce.Entry{Kind: xtce.ArrayParameterRefEntry, Ref: e.ParameterRef})
		case "ArgumentRefEntry":
			c.Entries = append(c.Entries, xtce.Entry{Kind: xtce.ArgumentRefEntry, Ref: e.ArgumentRef})
		case "ContainerRefEntry":
			c.Entries = append(c.Entries, xtce.Entry{Kind: xtce.ContainerRefEntry, Ref: e.ContainerRef})
		case "FixedValueEntry":
			c.Entries = append(c.Entries, xtce.Entry{
				Kind:        xtce.FixedValueEntry,
				Name:        e.Name,
				BinaryValue: e.BinaryValue,
				SizeInBits:  e.SizeInBits,
			})
		default:
			b.logger.Debug("Skipping unsupported container entry.", "container", c.Name, "element", e.Element)
		}
	}
	return c
}

func stream(x *xmlStream, kind xtce.StreamKind) *xtce.Stream {
	s := &xtce.Stream{
		NameDescription: nameDescription(&x.xmlNameDescription),
		Kind:            kind,
	}
	if x.ContainerRef != nil {
		s.ContainerRef = x.ContainerRef.ContainerRef
	}
	return s
}

func (b *builder) metaCommand(x *xmlMetaCommand) *xtce.MetaCommand {
	mc := &xtce.MetaCommand{
		NameDescription: nameDescription(&x.xmlNameDescription),
		Abstract:        x.Abstract,
	}
	if x.BaseMetaCommand != nil {
		mc.BaseMetaCommandRef = x.BaseMetaCommand.MetaCommandRef
	}
	for i := range x.Arguments {
		xa := &x.Arguments[i]
		a := &xtce.Argument{
			NameDescription: nameDescription(&xa.xmlNameDescription),
			TypeRef:         xa.TypeRef,
		}
		if xa.InitialValue != nil {
			b.argInitial[a] = *xa.InitialValue
		}
		mc.AddArgument(a)
	}
	if x.CommandContainer != nil {
		mc.SetCommandContainer(b.container(x.CommandContainer))
	}
	return mc
}

// category strips the set-specific suffix from a type element name, e.g.
// "FloatParameterType" and "FloatArgumentType" both yield "Float".
func category(element string) string {
	for _, suffix := range []string{"ParameterType", "ArgumentType", "DataType"} {
		if trimmed, ok := strings.CutSuffix(element, suffix); ok {
			return trimmed
		}
	}
	return element
}

// typeDefinition returns nil for elements that are not types at all. Types
// of categories the model does not cover are kept without a detail.
func (b *builder) typeDefinition(x *xmlType) *xtce.TypeDefinition {
	if x.Name == "" {
		b.logger.Debug("Skipping unnamed type element.", "element", x.Element)
		return nil
	}
	b.stats.types++
	t := &xtce.TypeDefinition{
		NameDescription: nameDescription(&x.xmlNameDescription),
		BaseTypeRef:     x.BaseType,
		Units:           x.Units,
	}

	switch category(x.Element) {
	case "Boolean":
		t.Detail = &xtce.BooleanType{
			Encoding:        encoding(x),
			ZeroStringValue: orDefault(x.ZeroStringValue, "False"),
			OneStringValue:  orDefault(x.OneStringValue, "True"),
		}
	case "Integer":
		d := &xtce.IntegerType{
			Encoding:   encoding(x),
			Signed:     x.Signed == nil || *x.Signed,
			SizeInBits: orDefaultInt(x.SizeInBits, 32),
		}
		if r, calibrated, ok := validRange(x); ok {
			d.ValidRange = &xtce.IntegerRange{
				MinInclusive:        deref(r.MinInclusive),
				MaxInclusive:        deref(r.MaxInclusive),
				AppliesToCalibrated: calibrated,
			}
		}
		t.Detail = d
	case "Float":
		d := &xtce.FloatType{
			Encoding:   encoding(x),
			SizeInBits: orDefaultInt(x.SizeInBits, 32),
		}
		if r, calibrated, ok := validRange(x); ok {
			d.ValidRange = &xtce.FloatRange{
				MinInclusive:        b.float(t.Name, "minInclusive", r.MinInclusive),
				MinExclusive:        b.float(t.Name, "minExclusive", r.MinExclusive),
				MaxInclusive:        b.float(t.Name, "maxInclusive", r.MaxInclusive),
				MaxExclusive:        b.float(t.Name, "maxExclusive", r.MaxExclusive),
				AppliesToCalibrated: calibrated,
			}
		}
		t.Detail = d
	case "Enumerated":
		d := &xtce.EnumeratedType{Encoding: encoding(x)}
		for _, e := range x.Enumerations {
			d.Enumerations = append(d.Enumerations, xtce.Enumeration{
				Value:            e.Value,
				MaxValue:         e.MaxValue,
				Label:            e.Label,
				ShortDescription: e.ShortDescription,
			})
		}
		t.Detail = d
	case "String":
		t.Detail = &xtce.StringType{Encoding: encoding(x)}
	case "Aggregate":
		d := &xtce.AggregateType{}
		for _, m := range x.Members {
			d.Members = append(d.Members, &xtce.Member{Name: m.Name, TypeRef: m.TypeRef})
		}
		t.Detail = d
	case "Array":
		dims := len(x.DimensionsList)
		if dims == 0 {
			dims = orDefaultInt(x.NumDimensions, 1)
		}
		t.Detail = &xtce.ArrayType{ElementTypeRef: x.ArrayTypeRef, Dimensions: dims}
	default:
		b.logger.Debug("Type category not modeled, keeping type without detail.", "type", t.Name, "element", x.Element)
	}

	if x.InitialValue != nil {
		v := xtce.ParseInitialValue(t, *x.InitialValue)
		t.InitialValue = &v
	}
	return t
}

// encoding reads whichever data encoding element is present and applies the
// schema defaults of that element.
func encoding(x *xmlType) xtce.Encoding {
	var (
		e           *xmlEncoding
		defaultName string
		defaultBits int
	)
	switch {
	case x.IntegerEncode != nil:
		e, defaultName, defaultBits = x.IntegerEncode, "unsigned", 8
	case x.FloatEncode != nil:
		e, defaultName, defaultBits = x.FloatEncode, "IEEE754_1985", 32
	case x.StringEncode != nil:
		e, defaultName = x.StringEncode, "UTF-8"
	case x.BinaryEncode != nil:
		e = x.BinaryEncode
	default:
		return xtce.Encoding{}
	}

	size := e.SizeInBits
	if size == 0 {
		size = e.FixedBits
	}
	if size == 0 {
		size = e.FixedStrBits
	}
	return xtce.Encoding{
		SizeInBits: orDefaultInt(size, defaultBits),
		Name:       orDefault(e.Encoding, defaultName),
		BitOrder:   e.BitOrder,
		ByteOrder:  e.ByteOrder,
	}
}

// validRange picks the ValidRange element, or the first range of a
// ValidRangeSet, and its calibrated flag. The flag defaults to true.
func validRange(x *xmlType) (xmlRange, bool, bool) {
	var (
		r       *xmlRange
		setFlag *bool
	)
	switch {
	case x.ValidRange != nil:
		r = x.ValidRange
	case x.ValidRangeSet != nil && len(x.ValidRangeSet.Ranges) > 0:
		r = &x.ValidRangeSet.Ranges[0]
		setFlag = x.ValidRangeSet.AppliesToCalibrated
	default:
		return xmlRange{}, false, false
	}

	calibrated := true
	switch {
	case r.AppliesToCalibrated != nil:
		calibrated = *r.AppliesToCalibrated
	case setFlag != nil:
		calibrated = *setFlag
	}
	return *r, calibrated, true
}

func (b *builder) float(typeName, attr string, raw *string) *float64 {
	if raw == nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil {
		b.logger.Warn("Ignoring unparsable range bound.", "type", typeName, "attribute", attr, "value", *raw)
		return nil
	}
	return &f
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func orDefaultInt(n, fallback int) int {
	if n == 0 {
		return fallback
	}
	return n
}
