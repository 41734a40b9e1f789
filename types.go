// Package ndb defines the core data structures for ndb parsing.
package ndb

import "strconv"

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the typed right-hand side of a statement. It is one of
// String, Int or Bool.
type Value interface {
	// Kind reports the variant.
	Kind() Kind
	// Token renders the value back into the form the classifier accepts.
	Token() string
	// Native returns the value as a plain Go string, int64 or bool.
	Native() any

	isValue()
}

// String is an unquoted string value.
//
//	name=9glenda
//	     ^^^^^^^ a letter anywhere makes the token a string
type String string

// Int is a 64-bit signed integer value.
//
//	age=21
type Int int64

// Bool is one of the literals true or false.
//
//	switch=true
type Bool bool

func (String) Kind() Kind { return KindString }
func (Int) Kind() Kind    { return KindInt }
func (Bool) Kind() Kind   { return KindBool }

func (s String) Token() string { return string(s) }
func (i Int) Token() string    { return strconv.FormatInt(int64(i), 10) }
func (b Bool) Token() string   { return strconv.FormatBool(bool(b)) }

func (s String) Native() any { return string(s) }
func (i Int) Native() any    { return int64(i) }
func (b Bool) Native() any   { return bool(b) }

func (String) isValue() {}
func (Int) isValue()    {}
func (Bool) isValue()   {}

// Statement is one parsed key=value record.
//
//	name=glenda
//	^^^^ Key
//	     ^^^^^^ Value
type Statement struct {
	Key   string
	Value Value
}

// String renders the statement in ndb syntax.
func (s Statement) String() string {
	if s.Value == nil {
		return s.Key + "="
	}
	return s.Key + "=" + s.Value.Token()
}

// Database is an ordered list of statements, in input order.
type Database struct {
	Statements []Statement
}

// Append adds statements to the end of the database.
func (db *Database) Append(stmts ...Statement) {
	db.Statements = append(db.Statements, stmts...)
}

// Lookup returns the value of the last statement with the given key.
func (db *Database) Lookup(key string) (Value, bool) {
	for i := len(db.Statements) - 1; i >= 0; i-- {
		if db.Statements[i].Key == key {
			return db.Statements[i].Value, true
		}
	}
	return nil, false
}
