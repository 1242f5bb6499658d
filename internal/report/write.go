package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown report format %q (want yaml or json)", s)
	}
}

// Write encodes reports to w. YAML output is a stream with one document per
// report; JSON output is a single array.
func Write(w io.Writer, format Format, reports ...*Report) error {
	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		for _, r := range reports {
			if err := encoder.Encode(r); err != nil {
				return fmt.Errorf("error encoding YAML report: %w", err)
			}
		}
		return encoder.Close()
	case FormatJSON:
		if reports == nil {
			reports = []*Report{}
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(reports); err != nil {
			return fmt.Errorf("error encoding JSON report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
