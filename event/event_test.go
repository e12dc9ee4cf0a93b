package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validContractID = "CAS3J7GYLGXMF6TDJBBYYSE3HQ6BBSMLNUQ34T6TZMYMW2EVH34XOWMA"

func TestParseContractID(t *testing.T) {
	id, err := ParseContractID(validContractID)
	require.NoError(t, err)
	assert.Equal(t, validContractID, id)
}

func TestParseContractIDInvalid(t *testing.T) {
	cases := []string{
		"",
		"not-a-strkey",
		"GAS3J7GYLGXMF6TDJBBYYSE3HQ6BBSMLNUQ34T6TZMYMW2EVH34XOWMA", // wrong version byte
		validContractID[:len(validContractID)-1],                   // truncated
	}
	for _, in := range cases {
		_, err := ParseContractID(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestIsContractID(t *testing.T) {
	assert.True(t, IsContractID(validContractID))
	assert.False(t, IsContractID("abc"))
}

func TestMustParseContractIDPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustParseContractID("bogus")
	})
	assert.NotPanics(t, func() {
		MustParseContractID(validContractID)
	})
}

func TestPage(t *testing.T) {
	empty := Page{}
	assert.True(t, empty.IsEmpty())
	assert.Zero(t, empty.Len())

	p := Page{Events: make([]Event, 3)}
	assert.False(t, p.IsEmpty())
	assert.Equal(t, 3, p.Len())
}

func TestPageIsFinal(t *testing.T) {
	assert.True(t, Page{}.IsFinal(100))
	assert.True(t, Page{Events: make([]Event, 99)}.IsFinal(100))
	// a page that fills the limit may be followed by more
	assert.False(t, Page{Events: make([]Event, 100)}.IsFinal(100))
}
