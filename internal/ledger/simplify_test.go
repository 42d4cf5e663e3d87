package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplify_SingleDebt(t *testing.T) {
	transfers, err := Simplify(Balances{"A": m("15.00"), "B": m("-15.00")})

	require.NoError(t, err)
	assert.Equal(t, []Transfer{{From: "B", To: "A", Amount: m("15.00")}}, transfers)
}

func TestSimplify_LargestFirst(t *testing.T) {
	transfers, err := Simplify(Balances{
		"A": m("50.00"),
		"B": m("-25.00"),
		"C": m("-25.00"),
		"D": m("0.00"),
	})

	require.NoError(t, err)
	require.Len(t, transfers, 2)
	// B and C tie; B wins on member id.
	assert.Equal(t, Transfer{From: "B", To: "A", Amount: m("25.00")}, transfers[0])
	assert.Equal(t, Transfer{From: "C", To: "A", Amount: m("25.00")}, transfers[1])
}

func TestSimplify_ChainCollapses(t *testing.T) {
	// A owes B 10 and B owes C 10: one transfer A → C suffices.
	transfers, err := Simplify(Balances{"A": m("-10.00"), "B": m("0.00"), "C": m("10.00")})

	require.NoError(t, err)
	assert.Equal(t, []Transfer{{From: "A", To: "C", Amount: m("10.00")}}, transfers)
}

func TestSimplify_Deterministic(t *testing.T) {
	balances := Balances{"d": m("-7.00"), "a": m("3.00"), "c": m("-3.00"), "b": m("7.00")}

	first, err := Simplify(balances)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := Simplify(balances)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, Transfer{From: "d", To: "b", Amount: m("7.00")}, first[0])
}

func TestSimplify_AllSettled(t *testing.T) {
	transfers, err := Simplify(Balances{"A": m("0.00"), "B": m("0.00")})

	require.NoError(t, err)
	assert.Empty(t, transfers)
}

func TestSimplify_Unbalanced(t *testing.T) {
	_, err := Simplify(Balances{"A": m("10.00"), "B": m("-9.00")})

	assert.ErrorIs(t, err, ErrUnbalanced)
}

func TestTransfer_Describe(t *testing.T) {
	tr := Transfer{From: "bob", To: "alice", Amount: m("12.50")}

	assert.Equal(t, "bob owes alice €12.50", tr.Describe("EUR"))
	assert.Equal(t, "bob owes alice $12.50", tr.Describe("USD"))
	assert.Equal(t, "bob owes alice CHF 12.50", tr.Describe("CHF"))
}
