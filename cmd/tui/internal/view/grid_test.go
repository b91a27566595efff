package view

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Fits", in: "- Rent", want: "- Rent"},
		{name: "Long", in: "- Electricity bill", want: "- Electricit…"},
		{name: "Wide", in: "- 家賃の支払い期限", want: "- 家賃の支払…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, 13)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, runewidth.StringWidth(got), 13)
		})
	}
}
