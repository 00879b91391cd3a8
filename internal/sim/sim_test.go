package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pimoroni/sn3218"
)

func TestDriverRunsAgainstSim(t *testing.T) {
	b := New()
	dev, err := sn3218.New(b, nil)
	assert.NoError(t, err)
	defer dev.Halt()

	assert.NoError(t, dev.SetAll(true))
	levels := make([]int, sn3218.NumChannels)
	for i := range levels {
		levels[i] = i * 14
	}
	assert.NoError(t, dev.Output(levels))
	assert.NoError(t, dev.Reset())
}

func TestLatchSemantics(t *testing.T) {
	b := New()
	// Staged PWM values must not become visible before the update write.
	pwm := make([]byte, 1+sn3218.NumChannels)
	pwm[0] = 0x01
	pwm[1] = 0xFF
	assert.NoError(t, b.Tx(0x54, pwm, nil))
	assert.Equal(t, byte(0), b.pwm[0])
	assert.NoError(t, b.Tx(0x54, []byte{0x16, 0xFF}, nil))
	assert.Equal(t, byte(0xFF), b.pwm[0])
}

func TestRejectsReadsAndUnknownRegisters(t *testing.T) {
	b := New()
	assert.Error(t, b.Tx(0x54, []byte{0x00}, make([]byte, 1)))
	assert.Error(t, b.Tx(0x54, nil, nil))
	assert.Error(t, b.Tx(0x54, []byte{0x42, 0x00}, nil))
	assert.Error(t, b.Tx(0x54, []byte{0x01, 0x00}, nil), "short PWM block")
	assert.Error(t, b.Tx(0x54, []byte{0x13, 0x00}, nil), "short mask block")
}
