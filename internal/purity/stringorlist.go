package purity

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// StringOrList decodes the `functions` config field, which is either the
// literal wildcard string "*" or an explicit array of export names.
type StringOrList struct {
	Wildcard bool
	Names    []string
}

// UnmarshalYAML implements yaml.v3's Unmarshaler so StringOrList can decode
// both shapes configuration authors write.
func (s *StringOrList) UnmarshalYAML(value *yaml.Node) error {
	var asString string
	if err := value.Decode(&asString); err == nil {
		if asString == Wildcard {
			s.Wildcard = true
			return nil
		}
		return fmt.Errorf("purity: functions must be %q or a list of names, got %q", Wildcard, asString)
	}

	var asList []string
	if err := value.Decode(&asList); err != nil {
		return err
	}
	s.Names = asList
	return nil
}

// MarshalYAML implements yaml.v3's Marshaler, mirroring UnmarshalYAML.
func (s StringOrList) MarshalYAML() (interface{}, error) {
	if s.Wildcard {
		return Wildcard, nil
	}
	return s.Names, nil
}

// UnmarshalJSON implements json.Unmarshaler for plain-JSON config files.
func (s *StringOrList) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if asString == Wildcard {
			s.Wildcard = true
			return nil
		}
		return fmt.Errorf("purity: functions must be %q or a list of names, got %q", Wildcard, asString)
	}

	var asList []string
	if err := json.Unmarshal(data, &asList); err != nil {
		return err
	}
	s.Names = asList
	return nil
}
