package sn3218

// EnableMask is an 18-bit set of driven channels, one bit per 0-based
// channel index. It is shadow state: the chip's enable registers cannot be
// read back, so the in-memory mask is authoritative.
type EnableMask uint32

// AllChannels has every channel bit set.
const AllChannels EnableMask = (1 << NumChannels) - 1

// Set marks channel ch (0-based) as driven.
func (m *EnableMask) Set(ch int) {
	*m |= 1 << uint(ch)
}

// Clear marks channel ch (0-based) as not driven.
func (m *EnableMask) Clear(ch int) {
	*m &^= 1 << uint(ch)
}

// SetAll marks all 18 channels as driven.
func (m *EnableMask) SetAll() {
	*m = AllChannels
}

// ClearAll marks all channels as not driven.
func (m *EnableMask) ClearAll() {
	*m = 0
}

// IsSet reports whether channel ch (0-based) is driven.
func (m EnableMask) IsSet(ch int) bool {
	return m&(1<<uint(ch)) != 0
}

// Bytes packs the mask into the three 6-bit bytes the chip's LED control
// registers take: channels 1-6, 7-12 and 13-18.
func (m EnableMask) Bytes() [3]byte {
	return [3]byte{
		byte(m) & 0x3F,
		byte(m>>6) & 0x3F,
		byte(m>>12) & 0x3F,
	}
}
