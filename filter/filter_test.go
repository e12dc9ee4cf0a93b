package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedeqiang/beacon/event"
)

const (
	contractA = "CAS3J7GYLGXMF6TDJBBYYSE3HQ6BBSMLNUQ34T6TZMYMW2EVH34XOWMA"
	contractB = "CDLZFC3SYJYDZT7K67VZ75HPJVIEUVNIXF47ZG2FB2RMQQVU2HHGCYSC"
)

func TestNewQueryDefaults(t *testing.T) {
	q := NewQuery()
	assert.Equal(t, event.TypeContract, q.Type)
	assert.Empty(t, q.ContractIDs)
	assert.Empty(t, q.Topics)
	assert.NoError(t, q.Validate())
}

func TestQueryOptions(t *testing.T) {
	q := NewQuery(
		WithType(event.TypeSystem),
		WithContracts(contractA, contractB),
		WithTopics("AAAADwAAAAh0cmFuc2Zlcg==", TopicWildcard, TopicWildcard),
	)

	assert.Equal(t, event.TypeSystem, q.Type)
	assert.Equal(t, []string{contractA, contractB}, q.ContractIDs)
	require.Len(t, q.Topics, 1)
	assert.Len(t, q.Topics[0], 3)
	assert.NoError(t, q.Validate())
}

func TestQueryValidateTooManyContracts(t *testing.T) {
	ids := make([]string, MaxContractIDs+1)
	for i := range ids {
		ids[i] = contractA
	}
	q := NewQuery(WithContracts(ids...))
	assert.ErrorIs(t, q.Validate(), ErrTooManyContracts)
}

func TestQueryValidateBadContract(t *testing.T) {
	q := NewQuery(WithContracts("not-a-contract-id"))
	assert.Error(t, q.Validate())

	// account strkeys start with G and must be rejected too
	q = NewQuery(WithContracts(strings.Replace(contractA, "C", "G", 1)))
	assert.Error(t, q.Validate())
}

func TestContractFilter(t *testing.T) {
	f := NewContractFilter(contractA)

	assert.True(t, f.Match(event.Event{ContractID: contractA}))
	assert.False(t, f.Match(event.Event{ContractID: contractB}))
	assert.False(t, f.Match(event.Event{}))
}

func TestLedgerRangeFilter(t *testing.T) {
	from, to := uint32(100), uint32(200)

	bounded := NewLedgerRangeFilter(&from, &to)
	assert.False(t, bounded.Match(event.Event{Ledger: 99}))
	assert.True(t, bounded.Match(event.Event{Ledger: 100}))
	assert.True(t, bounded.Match(event.Event{Ledger: 200}))
	assert.False(t, bounded.Match(event.Event{Ledger: 201}))

	open := NewLedgerRangeFilter(&from, nil)
	assert.True(t, open.Match(event.Event{Ledger: 1 << 30}))
	assert.False(t, open.Match(event.Event{Ledger: 1}))
}

func TestTopicFilter(t *testing.T) {
	transfer := "AAAADwAAAAh0cmFuc2Zlcg=="
	mint := "AAAADwAAAARtaW50"

	f := NewTopicFilter(0, transfer, mint)
	assert.True(t, f.Match(event.Event{Topics: []string{transfer, "x"}}))
	assert.True(t, f.Match(event.Event{Topics: []string{mint}}))
	assert.False(t, f.Match(event.Event{Topics: []string{"x", transfer}}))
	assert.False(t, f.Match(event.Event{}))

	positional := NewTopicFilter(2, mint)
	assert.True(t, positional.Match(event.Event{Topics: []string{"a", "b", mint}}))
	assert.False(t, positional.Match(event.Event{Topics: []string{"a", mint}}))
}

func TestCompositeFilter(t *testing.T) {
	from := uint32(100)
	inRange := NewLedgerRangeFilter(&from, nil)
	fromA := NewContractFilter(contractA)

	both := AllOf(inRange, fromA)
	assert.True(t, both.Match(event.Event{Ledger: 150, ContractID: contractA}))
	assert.False(t, both.Match(event.Event{Ledger: 50, ContractID: contractA}))
	assert.False(t, both.Match(event.Event{Ledger: 150, ContractID: contractB}))

	either := AnyOf(inRange, fromA)
	assert.True(t, either.Match(event.Event{Ledger: 50, ContractID: contractA}))
	assert.True(t, either.Match(event.Event{Ledger: 150, ContractID: contractB}))
	assert.False(t, either.Match(event.Event{Ledger: 50, ContractID: contractB}))

	assert.True(t, AllOf().Match(event.Event{}))
}
