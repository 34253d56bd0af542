package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{104, "104"},
		{999, "999"},
		{1000, "1,000"},
		{20592, "20,592"},
		{686400, "686,400"},
		{52000000, "52,000,000"},
		{1198454.4, "1,198,454"},
		{1198454.6, "1,198,455"},
		{-1533376, "-1,533,376"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Count(tt.in), "Count(%v)", tt.in)
	}
}

func TestUSD(t *testing.T) {
	assert.Equal(t, "$1,997,424", USD(1997424))
	assert.Equal(t, "$0", USD(0))
	assert.Equal(t, "-$500", USD(-500))
}

func TestSignedUSD(t *testing.T) {
	assert.Equal(t, "+$1,533,376", SignedUSD(1533376))
	assert.Equal(t, "-$1,533,376", SignedUSD(-1533376))
	assert.Equal(t, "+$0", SignedUSD(0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "22%", Percent(22))
	assert.Equal(t, "2.5%", Percent(2.5))
}
