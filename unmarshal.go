package ndb

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
)

var (
	valueType           = reflect.TypeOf((*Value)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Unmarshal parses a single ndb statement and stores it in the struct pointed
// to by v. The whole of data must be one statement.
//
// Unmarshal uses struct tags to determine how to map ndb keys to struct fields:
//   - `ndb:"key"` - maps ndb key "key" to this struct field
//   - `ndb:"key,required"` - fails if the key is absent
//   - `ndb:"-"` - ignores this field
//
// Untagged fields use the lowercased field name. Slice fields collect every
// statement with their key; other fields take the last one.
//
// Example:
//
//	type Config struct {
//	    Name   string   `ndb:"name"`
//	    Age    int      `ndb:"age"`
//	    Switch bool     `ndb:"switch"`
//	    Hosts  []string `ndb:"host"`
//	}
func Unmarshal(data []byte, v any) error {
	parser := NewParser().WithStrict(true)
	stmt, _, err := parser.ParseStatement(string(data))
	if err != nil {
		return err
	}
	return UnmarshalStatement(stmt, v)
}

// UnmarshalStatement stores a single parsed statement into v.
func UnmarshalStatement(stmt Statement, v any) error {
	return UnmarshalDatabase(&Database{Statements: []Statement{stmt}}, v)
}

// UnmarshalDatabase unmarshals a Database into v.
func UnmarshalDatabase(db *Database, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("unmarshal target must be a non-nil pointer")
	}

	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return fmt.Errorf("unmarshal target must be a pointer to struct")
	}

	// Group values by key, keeping input order
	data := make(map[string][]Value)
	for _, stmt := range db.Statements {
		data[stmt.Key] = append(data[stmt.Key], stmt.Value)
	}

	return unmarshalStruct(data, elem)
}

// unmarshalStruct unmarshals grouped statement values into a struct value
func unmarshalStruct(data map[string][]Value, v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		// Skip unexported fields
		if !fieldValue.CanSet() {
			continue
		}

		tag := field.Tag.Get("ndb")
		if tag == "-" {
			continue
		}

		tagName, opts := parseTag(tag)
		if tagName == "" {
			tagName = strings.ToLower(field.Name)
		}

		values, ok := data[tagName]
		if !ok {
			if hasOption(opts, "required") {
				return fmt.Errorf("required field %s not found", tagName)
			}
			continue
		}

		var err error
		if fieldValue.Kind() == reflect.Slice && !implementsText(fieldValue) {
			err = setSlice(fieldValue, values)
		} else {
			err = setField(fieldValue, values[len(values)-1])
		}
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setField sets a reflect.Value from a single ndb value
func setField(field reflect.Value, value Value) error {
	if value == nil {
		return nil
	}

	if implementsText(field) {
		return field.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(value.Token()))
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value.Token())
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setInt(field, value)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return setUint(field, value)
	case reflect.Float32, reflect.Float64:
		return setFloat(field, value)
	case reflect.Bool:
		return setBool(field, value)
	case reflect.Ptr:
		return setPointer(field, value)
	case reflect.Interface:
		return setInterface(field, value)
	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}
}

func implementsText(field reflect.Value) bool {
	return field.CanAddr() && field.Kind() != reflect.Ptr && field.Addr().Type().Implements(textUnmarshalerType)
}

func setInt(field reflect.Value, value Value) error {
	v, ok := value.(Int)
	if !ok {
		return fmt.Errorf("cannot convert %s %q to int", value.Kind(), value.Token())
	}
	if field.OverflowInt(int64(v)) {
		return fmt.Errorf("value %d overflows %s", v, field.Type())
	}
	field.SetInt(int64(v))
	return nil
}

func setUint(field reflect.Value, value Value) error {
	v, ok := value.(Int)
	if !ok {
		return fmt.Errorf("cannot convert %s %q to uint", value.Kind(), value.Token())
	}
	if v < 0 || field.OverflowUint(uint64(v)) {
		return fmt.Errorf("value %d overflows %s", v, field.Type())
	}
	field.SetUint(uint64(v))
	return nil
}

func setFloat(field reflect.Value, value Value) error {
	v, ok := value.(Int)
	if !ok {
		return fmt.Errorf("cannot convert %s %q to float", value.Kind(), value.Token())
	}
	field.SetFloat(float64(v))
	return nil
}

func setBool(field reflect.Value, value Value) error {
	v, ok := value.(Bool)
	if !ok {
		return fmt.Errorf("cannot convert %s %q to bool", value.Kind(), value.Token())
	}
	field.SetBool(bool(v))
	return nil
}

// setInterface stores the Value itself when the field can hold it, and the
// native Go value otherwise.
func setInterface(field reflect.Value, value Value) error {
	if field.Type() == valueType {
		field.Set(reflect.ValueOf(value))
		return nil
	}
	native := reflect.ValueOf(value.Native())
	if !native.Type().AssignableTo(field.Type()) {
		return fmt.Errorf("cannot assign %s to %s", native.Type(), field.Type())
	}
	field.Set(native)
	return nil
}

func setSlice(field reflect.Value, values []Value) error {
	slice := reflect.MakeSlice(field.Type(), len(values), len(values))
	for i, item := range values {
		if err := setField(slice.Index(i), item); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	field.Set(slice)
	return nil
}

func setPointer(field reflect.Value, value Value) error {
	ptr := reflect.New(field.Type().Elem())
	if err := setField(ptr.Elem(), value); err != nil {
		return err
	}
	field.Set(ptr)
	return nil
}

// Helper functions

func parseTag(tag string) (string, []string) {
	parts := strings.Split(tag, ",")
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts[1:]
}

func hasOption(opts []string, option string) bool {
	for _, opt := range opts {
		if opt == option {
			return true
		}
	}
	return false
}
