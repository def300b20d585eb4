package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestShareOf(t *testing.T) {
	net := MustMoney("6000000")
	pct := MustMoney("25")

	assert.True(t, MustMoney("1500000").Equal(ShareOf(net, pct)))
}

func TestShareOf_ZeroPercent(t *testing.T) {
	assert.True(t, ShareOf(MustMoney("1000000"), decimal.Zero).IsZero())
}

func TestRoundVND(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1234.4", "1234"},
		{"1234.5", "1235"},
		{"1234.6", "1235"},
		{"-10.5", "-11"},
		{"0", "0"},
	}

	for _, tc := range cases {
		got := RoundVND(MustMoney(tc.in))
		assert.True(t, MustMoney(tc.want).Equal(got), "RoundVND(%s) = %s, want %s", tc.in, got, tc.want)
	}
}

func TestClampNonNegative(t *testing.T) {
	assert.True(t, ClampNonNegative(MustMoney("-500000")).IsZero())
	assert.True(t, MustMoney("42").Equal(ClampNonNegative(MustMoney("42"))))
}
