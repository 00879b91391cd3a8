// Package sn3218 is a driver for the Si-En SN3218 18-channel PWM LED
// driver, found on the Pimoroni PiGlow among other boards. It talks to the
// chip over I2C and keeps shadow copies of the enable mask and brightness
// levels: the chip's registers are write-only, so the driver assumes it is
// the only writer.
//
// Channels are addressed by specifier: a registered name (the built-in
// ordinal words ONE..EIGHTEEN, or caller-supplied aliases) or an int in
// 1..18. Brightness levels pass through a per-channel gamma table before
// being written as PWM duty values.
//
// # Datasheet
//
// http://www.si-en.com/uploadpdf/s2011517171720.pdf
package sn3218

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// Addr is the fixed I2C address of the SN3218.
const Addr uint16 = 0x54

// NumChannels is the number of PWM outputs on the chip.
const NumChannels = 18

// Register map from the datasheet.
const (
	regEnableOutput byte = 0x00 // 1 byte: 0x01 run, 0x00 shutdown
	regPWMValues    byte = 0x01 // 18 bytes, one duty value per channel
	regEnableLEDs   byte = 0x13 // 3 bytes of 6 channel-enable bits each
	regUpdate       byte = 0x16 // write 0xFF to latch PWM/enable values
	regReset        byte = 0x17 // write 0xFF to reset all registers
)

// Opts holds construction options for New.
type Opts struct {
	// Addr is the device address. Zero means the chip's fixed address 0x54;
	// only useful for devices behind an address translator.
	Addr uint16
	// Names maps caller-chosen channel names to 1-based channel numbers.
	// Aliases supplement the built-in ordinal names; several names may
	// refer to the same channel.
	Names map[string]int
}

// Dev is an open handle to an SN3218.
//
// A Dev is not safe for concurrent use; callers driving it from multiple
// goroutines must serialize access themselves.
type Dev struct {
	d      *i2c.Dev
	names  *registry
	mask   EnableMask
	levels [NumChannels]byte
	gamma  [NumChannels]GammaTable
	closed bool
}

// New opens an SN3218 on bus. It turns every channel off and enables
// output, so the chip comes up in a known state regardless of what a
// previous owner left in its registers. opts may be nil.
func New(bus i2c.Bus, opts *Opts) (*Dev, error) {
	addr := Addr
	var aliases map[string]int
	if opts != nil {
		if opts.Addr != 0 {
			addr = opts.Addr
		}
		aliases = opts.Names
	}
	names, err := newRegistry(aliases)
	if err != nil {
		return nil, err
	}
	d := &Dev{
		d:     &i2c.Dev{Bus: bus, Addr: addr},
		names: names,
	}
	for i := range d.gamma {
		d.gamma[i] = defaultGamma
	}
	if err := d.flushMask(); err != nil {
		return nil, err
	}
	if err := d.Enable(); err != nil {
		return nil, err
	}
	return d, nil
}

// Enable enables the chip's outputs.
func (d *Dev) Enable() error {
	if d.closed {
		return ErrClosed
	}
	return d.writeReg(regEnableOutput, 0x01)
}

// Disable puts the chip in software shutdown. Register contents are kept;
// Enable resumes output.
func (d *Dev) Disable() error {
	if d.closed {
		return ErrClosed
	}
	return d.writeReg(regEnableOutput, 0x00)
}

// Reset resets all of the chip's internal registers. The driver's shadow
// mask and brightness levels are NOT cleared: after a Reset the shadow
// state no longer matches the chip until the caller rewrites it with
// SetAll/SetBrightness.
func (d *Dev) Reset() error {
	if d.closed {
		return ErrClosed
	}
	return d.writeReg(regReset, 0xFF)
}

// SetChannels turns the given channels on or off. Specifiers are names or
// ints in 1..18; the pseudo-names ALL and NONE are accepted too. Every
// specifier is resolved before anything is written, so an invalid one
// leaves both the shadow mask and the chip untouched.
func (d *Dev) SetChannels(on bool, specs ...interface{}) error {
	if d.closed {
		return ErrClosed
	}
	var bits EnableMask
	for _, spec := range specs {
		m, err := d.names.mask(spec)
		if err != nil {
			return err
		}
		bits |= m
	}
	if on {
		d.mask |= bits
	} else {
		d.mask &^= bits
	}
	return d.flushMask()
}

// SetAll turns every channel on or off.
func (d *Dev) SetAll(on bool) error {
	if d.closed {
		return ErrClosed
	}
	if on {
		d.mask.SetAll()
	} else {
		d.mask.ClearAll()
	}
	return d.flushMask()
}

// EnableLEDs replaces the whole enable mask in one call. Bits above
// channel 18 are ignored.
func (d *Dev) EnableLEDs(mask EnableMask) error {
	if d.closed {
		return ErrClosed
	}
	d.mask = mask & AllChannels
	return d.flushMask()
}

// Enabled reports the shadow enable state by name, without touching the
// bus. With namedOnly it covers only the caller-supplied aliases,
// otherwise the built-in ordinal names.
func (d *Dev) Enabled(namedOnly bool) map[string]bool {
	names := defaultNames[:]
	if namedOnly {
		names = d.names.user
	}
	out := make(map[string]bool, len(names))
	for _, name := range names {
		out[name] = d.mask.IsSet(d.names.byName[name] - 1)
	}
	return out
}

// SetBrightness sets one channel's brightness level (0..255). The level is
// gamma corrected and the full 18-byte PWM block is rewritten.
func (d *Dev) SetBrightness(spec interface{}, level int) error {
	return d.SetBrightnessMap(map[interface{}]int{spec: level})
}

// SetBrightnessMap sets several channels' brightness levels in one write.
// All specifiers and levels are validated before the shadow state or the
// chip is touched.
func (d *Dev) SetBrightnessMap(levels map[interface{}]int) error {
	if d.closed {
		return ErrClosed
	}
	staged := make(map[int]byte, len(levels))
	for spec, level := range levels {
		if level < 0 || level > 255 {
			return errorf(ErrInvalidValue, "brightness %d", level)
		}
		ch, err := d.names.index(spec)
		if err != nil {
			return err
		}
		staged[ch] = byte(level)
	}
	for ch, level := range staged {
		d.levels[ch] = level
	}
	return d.flushPWM()
}

// Output sets all 18 brightness levels at once, in channel order. Levels
// are gamma corrected like SetBrightness.
func (d *Dev) Output(levels []int) error {
	if d.closed {
		return ErrClosed
	}
	if len(levels) != NumChannels {
		return errorf(ErrInvalidValue, "want %d levels, got %d", NumChannels, len(levels))
	}
	for _, level := range levels {
		if level < 0 || level > 255 {
			return errorf(ErrInvalidValue, "brightness %d", level)
		}
	}
	for i, level := range levels {
		d.levels[i] = byte(level)
	}
	return d.flushPWM()
}

// OutputRaw writes all 18 PWM duty values directly, bypassing gamma
// correction. The linear brightness shadow is left as it was, so a later
// gamma-corrected write reverts to the previous levels.
func (d *Dev) OutputRaw(pwm []int) error {
	if d.closed {
		return ErrClosed
	}
	if len(pwm) != NumChannels {
		return errorf(ErrInvalidValue, "want %d values, got %d", NumChannels, len(pwm))
	}
	buf := make([]byte, NumChannels)
	for i, v := range pwm {
		if v < 0 || v > 255 {
			return errorf(ErrInvalidValue, "pwm %d", v)
		}
		buf[i] = byte(v)
	}
	if err := d.writeReg(regPWMValues, buf...); err != nil {
		return err
	}
	return d.update()
}

// SetGamma replaces one channel's gamma table. It takes effect on the next
// brightness write; nothing is sent to the chip here.
func (d *Dev) SetGamma(spec interface{}, entries []int) error {
	if d.closed {
		return ErrClosed
	}
	ch, err := d.names.index(spec)
	if err != nil {
		return err
	}
	t, err := NewGammaTable(entries)
	if err != nil {
		return err
	}
	d.gamma[ch] = t
	return nil
}

// ResetGamma restores the default gamma table on the given channels, or on
// all 18 when called without arguments.
func (d *Dev) ResetGamma(specs ...interface{}) error {
	if d.closed {
		return ErrClosed
	}
	if len(specs) == 0 {
		for i := range d.gamma {
			d.gamma[i] = defaultGamma
		}
		return nil
	}
	staged := make([]int, 0, len(specs))
	for _, spec := range specs {
		ch, err := d.names.index(spec)
		if err != nil {
			return err
		}
		staged = append(staged, ch)
	}
	for _, ch := range staged {
		d.gamma[ch] = defaultGamma
	}
	return nil
}

// Halt turns every channel off and disables output, then marks the device
// closed. It is idempotent and best-effort: bus errors during teardown are
// discarded. Implements conn.Resource.
func (d *Dev) Halt() error {
	if d.closed {
		return nil
	}
	d.mask.ClearAll()
	_ = d.flushMask()
	_ = d.writeReg(regEnableOutput, 0x00)
	d.closed = true
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("sn3218{%s}", d.d)
}

// writeReg writes data to a register in a single bus transaction.
func (d *Dev) writeReg(reg byte, data ...byte) error {
	w := make([]byte, 0, 1+len(data))
	w = append(w, reg)
	w = append(w, data...)
	if err := d.d.Tx(w, nil); err != nil {
		return &TransportError{Reg: reg, Err: err}
	}
	return nil
}

// update latches previously written enable/PWM values into effect.
func (d *Dev) update() error {
	return d.writeReg(regUpdate, 0xFF)
}

// flushMask sends the shadow enable mask followed by the latch write. If
// the mask write fails the latch is skipped.
func (d *Dev) flushMask() error {
	b := d.mask.Bytes()
	if err := d.writeReg(regEnableLEDs, b[0], b[1], b[2]); err != nil {
		return err
	}
	return d.update()
}

// flushPWM gamma-translates the shadow levels and sends the 18-byte PWM
// block followed by the latch write.
func (d *Dev) flushPWM() error {
	buf := make([]byte, NumChannels)
	for i := range buf {
		buf[i] = d.gamma[i][d.levels[i]]
	}
	if err := d.writeReg(regPWMValues, buf...); err != nil {
		return err
	}
	return d.update()
}

var _ conn.Resource = &Dev{}
