package sqlutil

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubConn records transaction lifecycle calls so tests can observe
// whether Run committed or rolled back.
type stubConn struct {
	began      bool
	committed  bool
	rolledBack bool
}

func (c *stubConn) Prepare(query string) (driver.Stmt, error) { return &stubStmt{}, nil }
func (c *stubConn) Close() error                              { return nil }
func (c *stubConn) Begin() (driver.Tx, error)                 { c.began = true; return c, nil }
func (c *stubConn) Commit() error                             { c.committed = true; return nil }
func (c *stubConn) Rollback() error                           { c.rolledBack = true; return nil }

type stubStmt struct{}

func (s *stubStmt) Close() error  { return nil }
func (s *stubStmt) NumInput() int { return -1 }
func (s *stubStmt) Exec(args []driver.Value) (driver.Result, error) {
	return driver.RowsAffected(1), nil
}
func (s *stubStmt) Query(args []driver.Value) (driver.Rows, error) {
	return nil, errors.New("query not supported")
}

type stubConnector struct{ conn *stubConn }

func (c stubConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }
func (c stubConnector) Driver() driver.Driver                        { return stubDriver{c.conn} }

type stubDriver struct{ conn *stubConn }

func (d stubDriver) Open(string) (driver.Conn, error) { return d.conn, nil }

func TestRunCommitsWhenFnSucceeds(t *testing.T) {
	conn := &stubConn{}
	database := sql.OpenDB(stubConnector{conn})
	defer database.Close()

	var bound *sql.Tx
	err := Run(context.Background(), database,
		func(tx *sql.Tx) *sql.Tx { return tx },
		func(q *sql.Tx) error {
			bound = q
			return nil
		})

	require.NoError(t, err)
	assert.NotNil(t, bound)
	assert.True(t, conn.began)
	assert.True(t, conn.committed)
	assert.False(t, conn.rolledBack)
}

func TestRunRollsBackWhenFnFails(t *testing.T) {
	conn := &stubConn{}
	database := sql.OpenDB(stubConnector{conn})
	defer database.Close()

	failure := errors.New("mid-transaction failure")
	err := Run(context.Background(), database,
		func(tx *sql.Tx) *sql.Tx { return tx },
		func(q *sql.Tx) error { return failure })

	assert.ErrorIs(t, err, failure)
	assert.True(t, conn.rolledBack)
	assert.False(t, conn.committed)
}
