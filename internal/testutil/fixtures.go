package testutil

// SampleDocument is a small but complete XTCE document used across package
// tests. Its layout:
//
//	/Sat                 root: Mode parameter, Header container
//	/Sat/Common          shared parameter types
//	/Sat/Bus             Voltage, Status, Position; HK derives from Header
//	/Sat/Bus/Heater      nested space system with its own container
//	/Sat/Cmd             commanding: argument types, Reboot command
const SampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<SpaceSystem name="Sat" xmlns="http://www.omg.org/spec/XTCE/20180204" shortDescription="Demo satellite">
  <AliasSet>
    <Alias nameSpace="MIB" alias="SAT"/>
  </AliasSet>
  <TelemetryMetaData>
    <ParameterTypeSet>
      <EnumeratedParameterType name="ModeType" initialValue="SAFE">
        <IntegerDataEncoding sizeInBits="8"/>
        <EnumerationList>
          <Enumeration value="0" label="SAFE"/>
          <Enumeration value="1" label="NOMINAL"/>
          <Enumeration value="2" maxValue="9" label="SPECIAL"/>
        </EnumerationList>
      </EnumeratedParameterType>
      <IntegerParameterType name="APIDType" signed="false" sizeInBits="16">
        <IntegerDataEncoding sizeInBits="11"/>
      </IntegerParameterType>
    </ParameterTypeSet>
    <ParameterSet>
      <Parameter name="Mode" parameterTypeRef="ModeType">
        <LongDescription>Spacecraft operating mode</LongDescription>
      </Parameter>
      <Parameter name="APID" parameterTypeRef="APIDType"/>
    </ParameterSet>
    <ContainerSet>
      <SequenceContainer name="Header" abstract="true">
        <EntryList>
          <ParameterRefEntry parameterRef="APID"/>
          <FixedValueEntry name="Spare" binaryValue="00" sizeInBits="5"/>
        </EntryList>
      </SequenceContainer>
    </ContainerSet>
  </TelemetryMetaData>
  <SpaceSystem name="Common">
    <TelemetryMetaData>
      <ParameterTypeSet>
        <FloatParameterType name="VoltsType" shortDescription="Bus voltage" initialValue="28">
          <UnitSet><Unit>V</Unit></UnitSet>
          <FloatDataEncoding sizeInBits="32"/>
          <ValidRangeSet validRangeAppliesToCalibrated="false">
            <ValidRange minExclusive="1.5" maxInclusive="10.0"/>
            <ValidRange minInclusive="0" maxInclusive="50"/>
          </ValidRangeSet>
        </FloatParameterType>
        <IntegerParameterType name="CountType">
          <IntegerDataEncoding sizeInBits="16" encoding="twosComplement"/>
          <ValidRange minInclusive="-100" maxInclusive="100"/>
        </IntegerParameterType>
        <BooleanParameterType name="FlagType" zeroStringValue="OFF" oneStringValue="ON" initialValue="ON">
          <IntegerDataEncoding sizeInBits="1"/>
        </BooleanParameterType>
        <IntegerParameterType name="RawCountType" baseType="CountType" shortDescription="Raw counter"/>
      </ParameterTypeSet>
    </TelemetryMetaData>
  </SpaceSystem>
  <SpaceSystem name="Bus">
    <TelemetryMetaData>
      <ParameterTypeSet>
        <AggregateParameterType name="PositionType">
          <MemberList>
            <Member name="X" typeRef="../Common/VoltsType"/>
            <Member name="Y" typeRef="/Sat/Common/CountType"/>
          </MemberList>
        </AggregateParameterType>
        <ArrayParameterType name="CellsType" arrayTypeRef="../Common/VoltsType">
          <DimensionList>
            <Dimension>
              <StartingIndex><FixedValue>0</FixedValue></StartingIndex>
              <EndingIndex><FixedValue>7</FixedValue></EndingIndex>
            </Dimension>
          </DimensionList>
        </ArrayParameterType>
        <StringParameterType name="LabelType">
          <StringDataEncoding encoding="US-ASCII"/>
        </StringParameterType>
      </ParameterTypeSet>
      <ParameterSet>
        <Parameter name="Voltage" parameterTypeRef="../Common/VoltsType" initialValue="5.5">
          <AliasSet>
            <Alias nameSpace="MIB" alias="VBUS"/>
            <Alias nameSpace="OPS" alias="BUS_V"/>
            <Alias nameSpace="MIB" alias="VBUS2"/>
          </AliasSet>
        </Parameter>
        <Parameter name="Status" parameterTypeRef="../Common/FlagType" shortDescription="Bus status">
          <ParameterProperties readOnly="true"/>
        </Parameter>
        <Parameter name="Position" parameterTypeRef="PositionType"/>
        <Parameter name="Cells" parameterTypeRef="CellsType"/>
        <Parameter name="Counter" parameterTypeRef="../Common/RawCountType"/>
        <Parameter name="Ghost" parameterTypeRef="../Common/MissingType"/>
      </ParameterSet>
      <ContainerSet>
        <SequenceContainer name="HK">
          <AncillaryDataSet>
            <AncillaryData name="rate">1 Hz</AncillaryData>
          </AncillaryDataSet>
          <EntryList>
            <ParameterRefEntry parameterRef="Voltage"/>
            <ArrayParameterRefEntry parameterRef="Cells"/>
            <ContainerRefEntry containerRef="Heater/HeaterBlock"/>
            <ParameterRefEntry parameterRef="/Sat/Bus/Status"/>
          </EntryList>
          <BaseContainer containerRef="../Header"/>
        </SequenceContainer>
      </ContainerSet>
      <StreamSet>
        <FixedFrameStream name="Downlink">
          <ContainerRef containerRef="HK"/>
        </FixedFrameStream>
      </StreamSet>
    </TelemetryMetaData>
    <SpaceSystem name="Heater">
      <TelemetryMetaData>
        <ParameterSet>
          <Parameter name="Temp" parameterTypeRef="../../Common/CountType"/>
        </ParameterSet>
        <ContainerSet>
          <SequenceContainer name="HeaterBlock">
            <EntryList>
              <ParameterRefEntry parameterRef="Temp"/>
            </EntryList>
            <BaseContainer containerRef="../HK"/>
          </SequenceContainer>
        </ContainerSet>
      </TelemetryMetaData>
    </SpaceSystem>
  </SpaceSystem>
  <SpaceSystem name="Cmd">
    <CommandMetaData>
      <ArgumentTypeSet>
        <IntegerArgumentType name="DelayType" shortDescription="Delay in seconds" initialValue="10">
          <IntegerDataEncoding sizeInBits="16"/>
          <ValidRange minInclusive="0" maxInclusive="3600" validRangeAppliesToCalibrated="false"/>
        </IntegerArgumentType>
        <BooleanArgumentType name="ForceType"/>
      </ArgumentTypeSet>
      <MetaCommandSet>
        <MetaCommand name="Reboot">
          <ArgumentList>
            <Argument name="Delay" argumentTypeRef="DelayType" initialValue="30">
              <LongDescription>Seconds before reboot</LongDescription>
            </Argument>
            <Argument name="Force" argumentTypeRef="ForceType"/>
          </ArgumentList>
          <CommandContainer name="RebootContainer">
            <EntryList>
              <FixedValueEntry name="Opcode" binaryValue="0A" sizeInBits="8"/>
              <ArgumentRefEntry argumentRef="Delay"/>
            </EntryList>
          </CommandContainer>
        </MetaCommand>
      </MetaCommandSet>
    </CommandMetaData>
  </SpaceSystem>
</SpaceSystem>
`
