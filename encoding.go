package tristate

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	if !v.IsValid() {
		return nil, &ContractError{Op: "marshal", Value: v, Err: ErrInvalidValue}
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON encodes v as a JSON string literal.
func (v Value) MarshalJSON() ([]byte, error) {
	text, err := v.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON accepts a string literal, a JSON boolean or null (Unknown).
func (v *Value) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "null":
		*v = Unknown
		return nil
	case "true":
		*v = True
		return nil
	case "false":
		*v = False
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("tristate: expected string, bool or null: %w", err)
	}
	return v.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	text, err := v.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML accepts a string literal, a YAML boolean, a number (mapped by
// sign) or null (Unknown).
//
// yaml.v3 does not call unmarshalers for null nodes, so a field set to ~ keeps
// its previous value. Inside a sequence, Values.UnmarshalYAML maps ~ to Unknown.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("tristate: line %d: expected scalar, got kind %d", node.Line, node.Kind)
	}

	switch node.ShortTag() {
	case "!!null":
		*v = Unknown
		return nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*v = FromBool(b)
		return nil
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*v = fromFloat(f)
		return nil
	}

	if err := v.UnmarshalText([]byte(node.Value)); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}

// UnmarshalYAML decodes a YAML sequence element by element. Null elements
// read as Unknown, so the result always has one Value per entry.
func (s *Values) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("tristate: line %d: expected sequence, got kind %d", node.Line, node.Kind)
	}

	values := make(Values, len(node.Content))
	for i, item := range node.Content {
		if err := values[i].UnmarshalYAML(item); err != nil {
			return err
		}
	}
	*s = values
	return nil
}

// fromFloat maps a number by sign, like FromInt. NaN is Unknown.
func fromFloat(f float64) Value {
	switch {
	case f < 0:
		return False
	case f > 0:
		return True
	default:
		return Unknown
	}
}

var valueType = reflect.TypeOf(Unknown)

// DecodeHook returns a mapstructure hook that decodes literals, booleans and
// numbers into Value fields. Numbers map by sign, so the result is always valid.
func DecodeHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if to != valueType {
			return data, nil
		}

		switch d := data.(type) {
		case Value:
			return d, nil
		case string:
			return Parse(d)
		case bool:
			return FromBool(d), nil
		}

		switch from.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return FromInt(int(reflect.ValueOf(data).Int())), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if reflect.ValueOf(data).Uint() == 0 {
				return Unknown, nil
			}
			return True, nil
		case reflect.Float32, reflect.Float64:
			return fromFloat(reflect.ValueOf(data).Float()), nil
		}

		return data, nil
	}
}
