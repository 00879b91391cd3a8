package sn3218

// Collective pseudo-names accepted by the enable/disable operations.
const (
	NameAll  = "ALL"
	NameNone = "NONE"
)

// defaultNames are the built-in ordinal-word names, index 0 naming
// channel 1. They are always resolvable, even when aliases are supplied.
var defaultNames = [NumChannels]string{
	"ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX",
	"SEVEN", "EIGHT", "NINE", "TEN", "ELEVEN", "TWELVE",
	"THIRTEEN", "FOURTEEN", "FIFTEEN", "SIXTEEN", "SEVENTEEN", "EIGHTEEN",
}

// registry resolves channel specifiers to 0-based indices. byName maps a
// name to its 1-based channel number; user holds the caller-supplied alias
// names in registration order for Enabled(namedOnly).
type registry struct {
	byName map[string]int
	user   []string
}

// newRegistry merges the built-in names with optional caller aliases.
// Aliases supplement the defaults: a default ordinal name is never removed,
// though an alias reusing a default name's string takes over that string.
// Multiple aliases may point at the same channel.
func newRegistry(aliases map[string]int) (*registry, error) {
	r := &registry{byName: make(map[string]int, NumChannels+len(aliases))}
	for i, name := range defaultNames {
		r.byName[name] = i + 1
	}
	for name, number := range aliases {
		if number < 1 || number > NumChannels {
			return nil, errorf(ErrInvalidConfig, "alias %q maps to %d, want 1..%d", name, number, NumChannels)
		}
		r.byName[name] = number
		r.user = append(r.user, name)
	}
	return r, nil
}

// index resolves spec to a 0-based channel index. spec is a registered name
// or an int in 1..18. Collective pseudo-names do not name a single channel
// and are rejected here.
func (r *registry) index(spec interface{}) (int, error) {
	switch s := spec.(type) {
	case string:
		if n, ok := r.byName[s]; ok {
			return n - 1, nil
		}
	case int:
		if s >= 1 && s <= NumChannels {
			return s - 1, nil
		}
	}
	return 0, errorf(ErrInvalidSpecifier, "%v", spec)
}

// mask resolves spec to the enable-mask bits it stands for. In addition to
// everything index accepts, the pseudo-names ALL and NONE resolve to the
// full and the empty mask.
func (r *registry) mask(spec interface{}) (EnableMask, error) {
	if s, ok := spec.(string); ok {
		switch s {
		case NameAll:
			return AllChannels, nil
		case NameNone:
			return 0, nil
		}
	}
	ch, err := r.index(spec)
	if err != nil {
		return 0, err
	}
	return 1 << uint(ch), nil
}
