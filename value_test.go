package ndb

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		token string
		want  Value
	}{
		{"true", Bool(true)},
		{"false", Bool(false)},
		{"glenda", String("glenda")},
		{"9glenda", String("9glenda")},
		{"glenda9", String("glenda9")},
		{"9", Int(9)},
		{"01", Int(1)},
		{"0", Int(0)},
		{"9223372036854775807", Int(9223372036854775807)},
		{"9223372036854775808", String("9223372036854775808")},
		{"True", String("True")},
		{"FALSE", String("FALSE")},
		{"truefalse", String("truefalse")},
		{"+5", String("+5")},
		{"-5", String("-5")},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.token))
		})
	}
}

func TestClassify_Kind(t *testing.T) {
	assert.Equal(t, KindBool, Classify("true").Kind())
	assert.Equal(t, KindInt, Classify("42").Kind())
	assert.Equal(t, KindString, Classify("hello").Kind())

	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestValueNative(t *testing.T) {
	assert.Equal(t, "glenda", String("glenda").Native())
	assert.Equal(t, int64(21), Int(21).Native())
	assert.Equal(t, true, Bool(true).Native())
}

const alnum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomToken(r *rand.Rand, charset string) string {
	b := make([]byte, 1+r.Intn(24))
	for i := range b {
		b[i] = charset[r.Intn(len(charset))]
	}
	return string(b)
}

// Classifying the rendered token of a classified value gives the same value.
func TestClassify_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	tokens := []string{"true", "false", "01", "007", "9glenda"}
	for i := 0; i < 500; i++ {
		tokens = append(tokens, randomToken(r, alnum), randomToken(r, "0123456789"))
	}

	for _, token := range tokens {
		v := Classify(token)
		assert.Equal(t, v, Classify(v.Token()), "token %q", token)
	}
}

func TestValidKey(t *testing.T) {
	assert.True(t, ValidKey("name"))
	assert.True(t, ValidKey("Name"))
	assert.False(t, ValidKey(""))
	assert.False(t, ValidKey("name2"))
	assert.False(t, ValidKey("9name"))
	assert.False(t, ValidKey("first_name"))
}
