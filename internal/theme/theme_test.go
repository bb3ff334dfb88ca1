package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTable(t *testing.T) {
	tests := []struct {
		name Name
		want RGB
	}{
		{Purple, RGB{147, 51, 234}},
		{Blue, RGB{37, 99, 235}},
		{Green, RGB{22, 163, 74}},
		{Orange, RGB{234, 88, 12}},
		{Pink, RGB{219, 39, 119}},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			got, ok := Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, Resolve(tt.name, Orange))
		})
	}
}

func TestResolveUnknownUsesFallback(t *testing.T) {
	assert.Equal(t, RGB{234, 88, 12}, Resolve("teal", Orange))
	assert.Equal(t, RGB{147, 51, 234}, Resolve("", Purple))
	assert.Equal(t, RGB{147, 51, 234}, Resolve("teal", "also-unknown"))

	_, ok := Lookup("Purple")
	assert.False(t, ok, "lookup is case sensitive")
}

func TestCycling(t *testing.T) {
	assert.Equal(t, Blue, Next(Purple))
	assert.Equal(t, Purple, Next(Pink))
	assert.Equal(t, Pink, Prev(Purple))
	assert.Equal(t, Green, Prev(Orange))
	assert.Equal(t, Purple, Next("unknown"))
	assert.Equal(t, Pink, Prev("unknown"))

	n := Orange
	for range Palette {
		n = Next(n)
	}
	assert.Equal(t, Orange, n)
}

func TestConversions(t *testing.T) {
	c := RGB{234, 88, 12}

	assert.Equal(t, "#ea580c", c.Hex())

	nrgba := c.NRGBA(0.5)
	assert.Equal(t, uint8(234), nrgba.R)
	assert.Equal(t, uint8(128), nrgba.A)
	assert.Equal(t, uint8(255), c.NRGBA(3).A)
	assert.Equal(t, uint8(0), c.NRGBA(-1).A)

	assert.Equal(t, c, c.Mix(RGB{0, 0, 0}, 0))
	assert.Equal(t, RGB{0, 0, 0}, c.Mix(RGB{0, 0, 0}, 1))
}
