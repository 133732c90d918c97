//go:build unit

package guest_test

import (
	"testing"

	"hotel-reservation/internal/domain/guest"
	"hotel-reservation/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuest(t *testing.T) {
	g, err := guest.NewGuest(" Ada King Lovelace ", "ADA@example.com", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Ada", g.FirstName())
	assert.Equal(t, "King Lovelace", g.LastName())
	assert.Equal(t, "ada@example.com", g.Email().Value())
	assert.Nil(t, g.UserID())

	single, err := guest.NewGuest("Cher", "cher@example.com", "", nil)
	require.NoError(t, err)
	assert.Empty(t, single.LastName())

	_, err = guest.NewGuest(" ", "ada@example.com", "", nil)
	assert.ErrorIs(t, err, guest.ErrInvalidName)

	_, err = guest.NewGuest("Ada", "not-an-email", "", nil)
	assert.ErrorIs(t, err, user.ErrInvalidEmail)
}
