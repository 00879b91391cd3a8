package sn3218_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/pimoroni/sn3218"
)

var TestMaskPacksToExpectedBytes = []struct {
	Mask   EnableMask
	Expect [3]byte
}{
	{0, [3]byte{0x00, 0x00, 0x00}},
	{1, [3]byte{0x01, 0x00, 0x00}},
	{1 << 5, [3]byte{0x20, 0x00, 0x00}},
	{1 << 6, [3]byte{0x00, 0x01, 0x00}},
	{1 << 12, [3]byte{0x00, 0x00, 0x01}},
	{1 << 17, [3]byte{0x00, 0x00, 0x20}},
	{AllChannels, [3]byte{0x3F, 0x3F, 0x3F}},
	{0b101010_101010_101010, [3]byte{0x2A, 0x2A, 0x2A}},
}

func TestMaskBytes(t *testing.T) {
	for k, v := range TestMaskPacksToExpectedBytes {
		t.Run("Mask"+strconv.Itoa(k), func(t *testing.T) {
			assert.Equal(t, v.Expect, v.Mask.Bytes(), "should pack to same bytes")
		})
	}
}

func TestMaskSetClearRoundTrip(t *testing.T) {
	var m EnableMask
	for ch := 0; ch < NumChannels; ch++ {
		before := m.Bytes()
		m.Set(ch)
		assert.True(t, m.IsSet(ch))
		m.Clear(ch)
		assert.False(t, m.IsSet(ch))
		assert.Equal(t, before, m.Bytes(), "set then clear should round-trip")
	}
}

func TestMaskAll(t *testing.T) {
	var m EnableMask
	m.SetAll()
	assert.Equal(t, AllChannels, m)
	for ch := 0; ch < NumChannels; ch++ {
		assert.True(t, m.IsSet(ch))
	}
	m.ClearAll()
	assert.Equal(t, EnableMask(0), m)
}
