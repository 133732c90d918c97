//go:build unit

package uow

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestReadOnlyTxOptions(t *testing.T) {
	assert.Equal(t, pgx.RepeatableRead, readOnlyTxOptions.IsoLevel)
	assert.Equal(t, pgx.ReadOnly, readOnlyTxOptions.AccessMode)
}
