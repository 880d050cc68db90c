package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMembershipOffer_Compare(t *testing.T) {
	t.Run("lower rating wins regardless of eviction", func(t *testing.T) {
		cheap := NewEvictionOffer(1, -1)
		pricey := NewMembershipOffer(2)

		require.Negative(t, cheap.Compare(pricey))
		require.Positive(t, pricey.Compare(cheap))
	})

	t.Run("no eviction beats eviction at equal rating", func(t *testing.T) {
		noEviction := NewMembershipOffer(2)
		withEviction := NewEvictionOffer(2, -4)

		require.Negative(t, noEviction.Compare(withEviction))
		require.Positive(t, withEviction.Compare(noEviction))
	})

	t.Run("ordering is transitive", func(t *testing.T) {
		noEviction := NewMembershipOffer(2)
		withEviction := NewEvictionOffer(2, -4)
		withMostEviction := NewEvictionOffer(2, -7)

		require.Negative(t, noEviction.Compare(withMostEviction))
		require.Negative(t, withMostEviction.Compare(withEviction))
		require.Negative(t, noEviction.Compare(withEviction))
	})

	t.Run("equal offers compare equal", func(t *testing.T) {
		require.Zero(t, NewMembershipOffer(2).Compare(NewMembershipOffer(2)))
		require.Zero(t, NewEvictionOffer(2, -4).Compare(NewEvictionOffer(2, -4)))
	})
}

func TestTransferralOffer_Compare(t *testing.T) {
	t.Run("orders by the embedded membership offer", func(t *testing.T) {
		better := NewTransferralOffer(1, NewMembershipOffer(2))
		worse := NewTransferralOffer(2, NewEvictionOffer(2, -4))

		require.Negative(t, better.Compare(worse))
		require.Positive(t, worse.Compare(better))
	})

	t.Run("lookup key does not participate", func(t *testing.T) {
		first := NewTransferralOffer(1, NewMembershipOffer(2))
		second := NewTransferralOffer(9, NewMembershipOffer(2))

		require.Zero(t, first.Compare(second))
	})

	t.Run("eviction signal", func(t *testing.T) {
		require.False(t, NewTransferralOffer(0, NewMembershipOffer(1)).RequiresEviction())
		require.True(t, NewTransferralOffer(0, NewEvictionOffer(1, -2)).RequiresEviction())
	})
}
