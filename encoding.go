package ndb

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/goccy/go-yaml"
)

// MarshalJSON encodes a statement as a single-member object, {"name":"glenda"},
// with the value as a native JSON boolean, number or string.
func (s Statement) MarshalJSON() ([]byte, error) {
	if s.Value == nil {
		return nil, fmt.Errorf("ndb: statement %q has no value", s.Key)
	}
	return json.Marshal(map[string]any{s.Key: s.Value.Native()})
}

// UnmarshalJSON decodes a single-member object produced by MarshalJSON.
// Numbers must be unsigned integers that fit in an int64. Strings must be
// alphanumeric tokens that Classify keeps as strings, so "true" and "42"
// are rejected.
func (s *Statement) UnmarshalJSON(data []byte) error {
	dec := jsontext.NewDecoder(bytes.NewReader(data))

	tok, err := dec.ReadToken()
	if err != nil {
		return fmt.Errorf("ndb: decode statement: %w", err)
	}
	if tok.Kind() != '{' {
		return fmt.Errorf("ndb: decode statement: expected object, found %v", tok.Kind())
	}

	tok, err = dec.ReadToken()
	if err != nil {
		return fmt.Errorf("ndb: decode statement: %w", err)
	}
	if tok.Kind() != '"' {
		return fmt.Errorf("ndb: decode statement: object must have exactly one member")
	}
	key := tok.String()
	if !ValidKey(key) {
		return fmt.Errorf("ndb: decode statement: invalid key %q", key)
	}

	tok, err = dec.ReadToken()
	if err != nil {
		return fmt.Errorf("ndb: decode statement: %w", err)
	}
	var value Value
	switch tok.Kind() {
	case 't', 'f':
		value = Bool(tok.Bool())
	case '0':
		raw := tok.String()
		if !isDigits(raw) {
			return fmt.Errorf("ndb: decode statement: key %q: %s is not an unsigned integer", key, raw)
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("ndb: decode statement: key %q: %w", key, err)
		}
		value = Int(n)
	case '"':
		str := tok.String()
		if !isValueToken(str) || Classify(str) != String(str) {
			return fmt.Errorf("ndb: decode statement: key %q: %q is not a string token", key, str)
		}
		value = String(str)
	default:
		return fmt.Errorf("ndb: decode statement: key %q: unsupported value kind %v", key, tok.Kind())
	}

	tok, err = dec.ReadToken()
	if err != nil {
		return fmt.Errorf("ndb: decode statement: %w", err)
	}
	if tok.Kind() != '}' {
		return fmt.Errorf("ndb: decode statement: object must have exactly one member")
	}

	*s = Statement{Key: key, Value: value}
	return nil
}

// MarshalYAML encodes a statement as a one-entry mapping.
func (s Statement) MarshalYAML() (any, error) {
	if s.Value == nil {
		return nil, fmt.Errorf("ndb: statement %q has no value", s.Key)
	}
	return yaml.MapSlice{{Key: s.Key, Value: s.Value.Native()}}, nil
}

// MarshalJSON encodes the database as an array of statement objects. An array
// keeps input order and repeated keys.
func (db Database) MarshalJSON() ([]byte, error) {
	stmts := db.Statements
	if stmts == nil {
		stmts = []Statement{}
	}
	return json.Marshal(stmts)
}

// UnmarshalJSON decodes an array of statement objects.
func (db *Database) UnmarshalJSON(data []byte) error {
	var stmts []Statement
	if err := json.Unmarshal(data, &stmts); err != nil {
		return err
	}
	db.Statements = stmts
	return nil
}

// MarshalYAML encodes the database as a sequence of one-entry mappings.
func (db Database) MarshalYAML() (any, error) {
	stmts := db.Statements
	if stmts == nil {
		stmts = []Statement{}
	}
	return stmts, nil
}
