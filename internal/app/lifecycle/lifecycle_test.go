package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	assert.True(t, Valid(StatusPending))
	assert.True(t, Valid(StatusProcessing))
	assert.True(t, Valid(StatusCompleted))
	assert.True(t, Valid(StatusRejected))
	assert.False(t, Valid(Status("draft")))
	assert.False(t, Valid(Status("")))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusProcessing))
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusRejected))
	assert.False(t, IsTerminal(Status("draft")))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusProcessing, StatusCompleted, true},
		{StatusProcessing, StatusRejected, true},

		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusRejected, false},
		{StatusProcessing, StatusPending, false},
		{StatusCompleted, StatusProcessing, false},
		{StatusCompleted, StatusRejected, false},
		{StatusRejected, StatusProcessing, false},
		{StatusRejected, StatusCompleted, false},
		{StatusPending, StatusPending, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestValidate(t *testing.T) {
	t.Run("transitions nominales", func(t *testing.T) {
		require.NoError(t, Validate(StatusPending, StatusProcessing, false, ""))
		require.NoError(t, Validate(StatusProcessing, StatusCompleted, true, ""))
		require.NoError(t, Validate(StatusProcessing, StatusRejected, false, "pièces illisibles"))
	})

	t.Run("statut inconnu", func(t *testing.T) {
		assert.ErrorIs(t, Validate(Status("draft"), StatusProcessing, false, ""), ErrUnknownStatus)
		assert.ErrorIs(t, Validate(StatusPending, Status("archived"), false, ""), ErrUnknownStatus)
	})

	t.Run("transition interdite", func(t *testing.T) {
		assert.ErrorIs(t, Validate(StatusPending, StatusRejected, false, "motif"), ErrInvalidTransition)
		assert.ErrorIs(t, Validate(StatusCompleted, StatusRejected, true, "motif"), ErrInvalidTransition)
		assert.ErrorIs(t, Validate(StatusRejected, StatusProcessing, true, ""), ErrInvalidTransition)
	})

	t.Run("approbation sans paiement", func(t *testing.T) {
		assert.ErrorIs(t, Validate(StatusProcessing, StatusCompleted, false, ""), ErrPaymentNotCompleted)
	})

	t.Run("transition interdite prime sur la garde de paiement", func(t *testing.T) {
		// pending -> completed est d'abord une transition inexistante,
		// même si le paiement n'est pas confirmé non plus
		assert.ErrorIs(t, Validate(StatusPending, StatusCompleted, false, ""), ErrInvalidTransition)
	})

	t.Run("rejet sans motif", func(t *testing.T) {
		assert.ErrorIs(t, Validate(StatusProcessing, StatusRejected, false, ""), ErrReasonRequired)
		assert.ErrorIs(t, Validate(StatusProcessing, StatusRejected, false, "   "), ErrReasonRequired)
	})
}
