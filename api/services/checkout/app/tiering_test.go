package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLicensesForAmount(t *testing.T) {
	cases := []struct {
		name   string
		amount int64
		want   int64
	}{
		{"business threshold", 14900, 3},
		{"above business", 20000, 3},
		{"pro threshold", 8900, 2},
		{"between pro and business", 12000, 2},
		{"starter threshold", 5900, 1},
		{"between starter and pro", 7000, 1},
		{"below lowest band", 100, 1},
		{"zero", 0, 1},
		{"negative", -500, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LicensesForAmount(tc.amount))
		})
	}
}
