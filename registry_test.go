package sn3218

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryDefaults(t *testing.T) {
	r, err := newRegistry(nil)
	assert.NoError(t, err)

	for i, name := range defaultNames {
		byName, err := r.index(name)
		assert.NoError(t, err)
		byNumber, err := r.index(i + 1)
		assert.NoError(t, err)
		assert.Equal(t, i, byName)
		assert.Equal(t, byName, byNumber, "name and ordinal must agree for %s", name)
	}
}

func TestRegistryAliasesSupplementDefaults(t *testing.T) {
	r, err := newRegistry(map[string]int{"STATUS": 1, "FAULT": 1})
	assert.NoError(t, err)

	status, err := r.index("STATUS")
	assert.NoError(t, err)
	fault, err := r.index("FAULT")
	assert.NoError(t, err)
	one, err := r.index("ONE")
	assert.NoError(t, err)

	assert.Equal(t, 0, status)
	assert.Equal(t, status, fault, "aliases of the same channel must agree")
	assert.Equal(t, status, one, "default names must survive aliasing")
}

func TestRegistryBadAliasNumber(t *testing.T) {
	for _, number := range []int{0, -1, 19, 100} {
		_, err := newRegistry(map[string]int{"BAD": number})
		assert.ErrorIs(t, err, ErrInvalidConfig, "number %d", number)
	}
}

func TestRegistryInvalidSpecifier(t *testing.T) {
	r, err := newRegistry(nil)
	assert.NoError(t, err)

	for _, spec := range []interface{}{0, 19, -3, "banana", 3.5, nil, true} {
		_, err := r.index(spec)
		assert.ErrorIs(t, err, ErrInvalidSpecifier, "spec %v", spec)
	}
	// Collective pseudo-names do not name a single channel.
	_, err = r.index(NameAll)
	assert.ErrorIs(t, err, ErrInvalidSpecifier)
}

func TestRegistryMask(t *testing.T) {
	r, err := newRegistry(nil)
	assert.NoError(t, err)

	m, err := r.mask(NameAll)
	assert.NoError(t, err)
	assert.Equal(t, AllChannels, m)

	m, err = r.mask(NameNone)
	assert.NoError(t, err)
	assert.Equal(t, EnableMask(0), m)

	m, err = r.mask("TWO")
	assert.NoError(t, err)
	assert.Equal(t, EnableMask(1<<1), m)

	_, err = r.mask("banana")
	assert.ErrorIs(t, err, ErrInvalidSpecifier)
}
