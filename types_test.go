package ndb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatementString(t *testing.T) {
	assert.Equal(t, "name=glenda", Statement{Key: "name", Value: String("glenda")}.String())
	assert.Equal(t, "age=1", MustParseStatement("age=01").String())
	assert.Equal(t, "switch=true", Statement{Key: "switch", Value: Bool(true)}.String())
	assert.Equal(t, "name=", Statement{Key: "name"}.String())
}

func TestDatabase(t *testing.T) {
	var db Database
	_, ok := db.Lookup("name")
	assert.False(t, ok)

	db.Append(MustParseStatement("name=glenda"), MustParseStatement("age=21"))
	db.Append(MustParseStatement("name=rob"))

	if len(db.Statements) != 3 {
		t.Fatalf("Expected 3 statements, got %d", len(db.Statements))
	}
	if db.Statements[0].Key != "name" || db.Statements[2].Key != "name" {
		t.Errorf("Statements out of input order: %v", db.Statements)
	}

	v, ok := db.Lookup("name")
	assert.True(t, ok)
	assert.Equal(t, String("rob"), v)

	v, ok = db.Lookup("age")
	assert.True(t, ok)
	assert.Equal(t, Int(21), v)
}
