package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulfwash/carwash-scheduler/internal/httperr"
)

func TestTranslateTxErrorSerializationAbort(t *testing.T) {
	for _, code := range []string{"40001", "40P01"} {
		t.Run(code, func(t *testing.T) {
			err := translateTxError(fmt.Errorf("commit: %w", &pgconn.PgError{Code: code}))
			be, ok := httperr.AsBusiness(err)
			require.True(t, ok)
			assert.Equal(t, httperr.CodePersistenceConflict, be.Code)
		})
	}
}

func TestTranslateTxErrorPassesOthersThrough(t *testing.T) {
	assert.NoError(t, translateTxError(nil))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, translateTxError(plain))

	unique := &pgconn.PgError{Code: "23505"}
	assert.Equal(t, error(unique), translateTxError(unique))

	business := httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	assert.Equal(t, business, translateTxError(business))
}
