package validate

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	for in, want := range map[string]int64{"1": 1, " 42 ": 42} {
		got, ok := ID(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got)
	}
	for _, in := range []string{"", "0", "-3", "abc", "1.5", "99999999999999999999"} {
		_, ok := ID(in)
		assert.False(t, ok, in)
	}
}

func TestUserFields(t *testing.T) {
	e, ok := Email("  maria@gmail.com ")
	assert.True(t, ok)
	assert.Equal(t, "maria@gmail.com", e)
	_, ok = Email("maria@")
	assert.False(t, ok)

	_, ok = Name(strings.Repeat("x", 81))
	assert.False(t, ok)
	_, ok = Name("   ")
	assert.False(t, ok)

	_, ok = Phone("")
	assert.True(t, ok)
	_, ok = Phone("+55 (11) 98888-8888")
	assert.True(t, ok)
	_, ok = Phone("call me")
	assert.False(t, ok)

	assert.True(t, Password("123456"))
	assert.False(t, Password("12345"))
	assert.False(t, Password(strings.Repeat("p", 73)))
}

func TestPriceAndQty(t *testing.T) {
	assert.True(t, Price(decimal.RequireFromString("100.99")))
	assert.True(t, Price(decimal.Zero))
	assert.False(t, Price(decimal.RequireFromString("-0.01")))
	assert.False(t, Price(decimal.RequireFromString("1.999")))

	assert.True(t, Qty(1))
	assert.False(t, Qty(0))
	assert.False(t, Qty(1001))
}
