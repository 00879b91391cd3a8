// Package sim provides an in-memory I2C bus emulating the SN3218's
// register file, for running the control tool without hardware. Latched
// channel levels are rendered to the terminal as a strip of 18 pixels.
package sim

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/extra/devices/screen"

	"github.com/pimoroni/sn3218"
)

// Bus implements i2c.Bus. Writes to the PWM and enable registers are
// staged and only shown once the update register latches them, mirroring
// the chip.
type Bus struct {
	drawer display.Drawer

	output     bool
	stagedPWM  [sn3218.NumChannels]byte
	stagedMask [3]byte
	pwm        [sn3218.NumChannels]byte
	mask       [3]byte
}

// New returns a simulated bus drawing to stdout.
func New() *Bus {
	return &Bus{drawer: screen.New(sn3218.NumChannels)}
}

func (b *Bus) String() string {
	return "sn3218sim"
}

func (b *Bus) SetSpeed(f physic.Frequency) error {
	return nil
}

// Tx decodes a register write. Reads fail: the real chip's registers are
// write-only.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if len(r) != 0 {
		return fmt.Errorf("sim: %#02x is write-only", addr)
	}
	if len(w) == 0 {
		return fmt.Errorf("sim: empty write")
	}
	reg, data := w[0], w[1:]
	switch reg {
	case 0x00: // output enable
		b.output = len(data) > 0 && data[0] != 0
		return b.render()
	case 0x01: // PWM block
		if len(data) != sn3218.NumChannels {
			return fmt.Errorf("sim: PWM write of %d bytes", len(data))
		}
		copy(b.stagedPWM[:], data)
	case 0x13: // enable mask
		if len(data) != 3 {
			return fmt.Errorf("sim: mask write of %d bytes", len(data))
		}
		copy(b.stagedMask[:], data)
	case 0x16: // update: latch staged values
		b.pwm = b.stagedPWM
		b.mask = b.stagedMask
		return b.render()
	case 0x17: // reset
		*b = Bus{drawer: b.drawer}
	default:
		return fmt.Errorf("sim: unknown register %#02x", reg)
	}
	return nil
}

func (b *Bus) render() error {
	bounds := b.drawer.Bounds()
	img := image.NewNRGBA(bounds)
	mask := uint32(b.mask[0]) | uint32(b.mask[1])<<6 | uint32(b.mask[2])<<12
	for i := 0; i < sn3218.NumChannels; i++ {
		var v byte
		if b.output && mask&(1<<uint(i)) != 0 {
			v = b.pwm[i]
		}
		img.Set(bounds.Min.X+i, bounds.Min.Y, color.NRGBA{R: v, G: v, B: v, A: 255})
	}
	return b.drawer.Draw(bounds, img, image.Point{})
}
