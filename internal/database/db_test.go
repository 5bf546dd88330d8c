package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	execs      []string
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Exec(_ context.Context, query string, _ ...any) (int64, error) {
	t.execs = append(t.execs, query)
	return 1, nil
}

func (t *fakeTx) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }
func (t *fakeTx) QueryRow(context.Context, string, ...any) Row        { return nil }

func (t *fakeTx) Commit(context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	tx       *fakeTx
	beginErr error
}

func (d *fakeDB) Exec(context.Context, string, ...any) (int64, error)  { return 0, nil }
func (d *fakeDB) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }
func (d *fakeDB) QueryRow(context.Context, string, ...any) Row        { return nil }
func (d *fakeDB) Ping(context.Context) error                          { return nil }
func (d *fakeDB) Close() error                                        { return nil }
func (d *fakeDB) SQLDB() *sql.DB                                      { return nil }

func (d *fakeDB) Begin(context.Context) (Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

func TestInTx_Commits(t *testing.T) {
	db := &fakeDB{tx: &fakeTx{}}

	err := InTx(context.Background(), db, func(q Querier) error {
		_, err := q.Exec(context.Background(), "INSERT INTO users DEFAULT VALUES")
		return err
	})
	require.NoError(t, err)

	assert.True(t, db.tx.committed)
	assert.False(t, db.tx.rolledBack)
	assert.Equal(t, []string{"INSERT INTO users DEFAULT VALUES"}, db.tx.execs)
}

func TestInTx_RollsBackOnError(t *testing.T) {
	sentinel := errors.New("not found")
	db := &fakeDB{tx: &fakeTx{}}

	err := InTx(context.Background(), db, func(Querier) error { return sentinel })

	assert.Same(t, sentinel, err)
	assert.False(t, db.tx.committed)
	assert.True(t, db.tx.rolledBack)
}

func TestInTx_BeginAndCommitErrors(t *testing.T) {
	boom := errors.New("boom")

	err := InTx(context.Background(), &fakeDB{beginErr: boom}, func(Querier) error {
		t.Fatal("fn must not run without a transaction")
		return nil
	})
	assert.ErrorIs(t, err, boom)

	db := &fakeDB{tx: &fakeTx{commitErr: boom}}
	err = InTx(context.Background(), db, func(Querier) error { return nil })
	assert.ErrorIs(t, err, boom)
	assert.True(t, db.tx.rolledBack)
}
