package pg

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxManager_JoinsOpenTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), txKey{}, tx)
	m := &TxManager{}

	called := false
	err = m.Begin(ctx, func(inner context.Context) error {
		called = true
		got, ok := txFromContext(inner)
		assert.True(t, ok)
		assert.Equal(t, tx, got)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_UsesTransactionFromContext(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	db := &DB{}
	ctx := context.WithValue(context.Background(), txKey{}, tx)
	assert.Equal(t, tx, db.conn(ctx))

	mock.ExpectExec("UPDATE installments").WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	tag, err := db.Exec(ctx, "UPDATE installments SET status = 'atrasada'")
	require.NoError(t, err)
	assert.Equal(t, int64(2), tag.RowsAffected())
	assert.NoError(t, mock.ExpectationsWereMet())
}
