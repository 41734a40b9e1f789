package ndb

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type system struct {
	Sys     string   `ndb:"sys"`
	Age     int      `ndb:"age"`
	Port    uint16   `ndb:"port"`
	Weight  float64  `ndb:"weight"`
	Auth    bool     `ndb:"auth"`
	Dom     *string  `ndb:"dom"`
	Hosts   []string `ndb:"host"`
	Raw     Value    `ndb:"raw"`
	Any     any      `ndb:"any"`
	Ignored string   `ndb:"-"`
	Name    string
	hidden  string
}

func TestUnmarshal(t *testing.T) {
	var s system
	require.NoError(t, Unmarshal([]byte("age=01"), &s))
	assert.Equal(t, 1, s.Age)

	require.NoError(t, Unmarshal([]byte("name=glenda"), &s))
	assert.Equal(t, "glenda", s.Name)
	assert.Equal(t, 1, s.Age, "earlier fields are kept")
}

func TestUnmarshal_Errors(t *testing.T) {
	var s system
	assert.ErrorIs(t, Unmarshal([]byte("age="), &s), ErrSyntax)
	assert.ErrorIs(t, Unmarshal([]byte("age=1 2"), &s), ErrTrailingInput)
	assert.Error(t, Unmarshal([]byte("age=old"), &s))
	assert.Error(t, Unmarshal([]byte("auth=1"), &s))
	assert.Error(t, Unmarshal([]byte("age=1"), s))
	assert.Error(t, Unmarshal([]byte("age=1"), (*system)(nil)))

	n := 0
	assert.Error(t, Unmarshal([]byte("age=1"), &n))
}

func TestUnmarshalDatabase(t *testing.T) {
	db := &Database{}
	for _, line := range []string{
		"sys=glenda",
		"age=21",
		"port=564",
		"weight=70",
		"auth=true",
		"dom=plan9",
		"host=alpha",
		"host=beta",
		"raw=9glenda",
		"any=42",
		"ignored=x",
		"hidden=x",
		"sys=rob",
	} {
		db.Append(MustParseStatement(line))
	}

	var s system
	require.NoError(t, UnmarshalDatabase(db, &s))

	assert.Equal(t, "rob", s.Sys, "last statement wins")
	assert.Equal(t, 21, s.Age)
	assert.Equal(t, uint16(564), s.Port)
	assert.Equal(t, 70.0, s.Weight)
	assert.True(t, s.Auth)
	require.NotNil(t, s.Dom)
	assert.Equal(t, "plan9", *s.Dom)
	assert.Equal(t, []string{"alpha", "beta"}, s.Hosts)
	assert.Equal(t, String("9glenda"), s.Raw)
	assert.Equal(t, int64(42), s.Any)
	assert.Empty(t, s.Ignored)
	assert.Empty(t, s.hidden)
}

func TestUnmarshalDatabase_StringFieldTakesAnyValue(t *testing.T) {
	var s system
	require.NoError(t, UnmarshalStatement(MustParseStatement("sys=true"), &s))
	assert.Equal(t, "true", s.Sys)

	require.NoError(t, UnmarshalStatement(MustParseStatement("sys=007"), &s))
	assert.Equal(t, "7", s.Sys)
}

func TestUnmarshalDatabase_Overflow(t *testing.T) {
	var s system
	err := UnmarshalStatement(MustParseStatement("port=65536"), &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Port")
}

func TestUnmarshalDatabase_Required(t *testing.T) {
	var cfg struct {
		Name string `ndb:"name,required"`
		Age  int    `ndb:"age"`
	}

	err := UnmarshalStatement(MustParseStatement("age=9"), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required field name")
}

func TestUnmarshalDatabase_TextUnmarshaler(t *testing.T) {
	var cfg struct {
		IP net.IP `ndb:"ip"`
	}

	// Dotted addresses stop at the first '.', so build the statement directly.
	err := UnmarshalStatement(Statement{Key: "ip", Value: String("10.0.0.1")}, &cfg)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", cfg.IP.String())

	err = UnmarshalStatement(Statement{Key: "ip", Value: String("nope")}, &cfg)
	assert.Error(t, err)
}
