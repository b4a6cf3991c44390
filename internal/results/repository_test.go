package results

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpitch/league/internal/db"
)

// scriptConn is a stub driver connection that serves one canned
// response per statement, in order. It records the transaction outcome
// so tests can observe rollback behavior.
type scriptStep struct {
	cols []string
	rows [][]driver.Value
	err  error
}

type scriptConn struct {
	steps      []scriptStep
	consumed   int
	committed  bool
	rolledBack bool
}

func (c *scriptConn) next() scriptStep {
	if len(c.steps) == 0 {
		return scriptStep{err: errors.New("unexpected statement")}
	}
	step := c.steps[0]
	c.steps = c.steps[1:]
	c.consumed++
	return step
}

func (c *scriptConn) Prepare(query string) (driver.Stmt, error) { return &scriptStmt{conn: c}, nil }
func (c *scriptConn) Close() error                              { return nil }
func (c *scriptConn) Begin() (driver.Tx, error)                 { return c, nil }
func (c *scriptConn) Commit() error                             { c.committed = true; return nil }
func (c *scriptConn) Rollback() error                           { c.rolledBack = true; return nil }

type scriptStmt struct {
	conn *scriptConn
}

func (s *scriptStmt) Close() error  { return nil }
func (s *scriptStmt) NumInput() int { return -1 }
func (s *scriptStmt) Exec(args []driver.Value) (driver.Result, error) {
	step := s.conn.next()
	if step.err != nil {
		return nil, step.err
	}
	return driver.RowsAffected(1), nil
}
func (s *scriptStmt) Query(args []driver.Value) (driver.Rows, error) {
	step := s.conn.next()
	if step.err != nil {
		return nil, step.err
	}
	return &scriptRows{cols: step.cols, rows: step.rows}, nil
}

type scriptRows struct {
	cols []string
	rows [][]driver.Value
	idx  int
}

func (r *scriptRows) Columns() []string { return r.cols }
func (r *scriptRows) Close() error      { return nil }
func (r *scriptRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.idx])
	r.idx++
	return nil
}

type scriptConnector struct{ conn *scriptConn }

func (c scriptConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }
func (c scriptConnector) Driver() driver.Driver                        { return scriptDriver{c.conn} }

type scriptDriver struct{ conn *scriptConn }

func (d scriptDriver) Open(string) (driver.Conn, error) { return d.conn, nil }

var matchCols = []string{
	"id", "match_date", "match_time", "home_team_id", "away_team_id",
	"field_id", "owner_id", "created_at",
}

var resultCols = []string{
	"id", "match_id", "team_id", "goals", "corner_kicks", "yellow_cards",
	"red_cards", "substitutions", "saves", "assists", "passes",
	"clean_sheet", "penalty_kicks", "free_kicks", "created_at",
}

func TestSubmitTeamResultRollsBackAfterInsertWhenAggregationFails(t *testing.T) {
	matchID, home, away := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	conn := &scriptConn{steps: []scriptStep{
		// lock the match row
		{cols: matchCols, rows: [][]driver.Value{{
			matchID.String(), "2026-09-05", "18:00",
			home.String(), away.String(),
			uuid.New().String(), uuid.New().String(), now,
		}}},
		// duplicate re-check finds nothing
		{cols: resultCols},
		// insert succeeds
		{cols: resultCols, rows: [][]driver.Value{{
			uuid.New().String(), matchID.String(), home.String(),
			[]byte("[]"), int64(0), []byte("[]"), []byte("[]"), []byte("[]"),
			[]byte("[]"), []byte("[]"), int64(0), false, int64(0), int64(0), now,
		}}},
		// counting results fails, after the row was written
		{err: errors.New("count failed")},
	}}
	database := sql.OpenDB(scriptConnector{conn})
	defer database.Close()

	repo := NewRepository(database, db.New(database))
	result, err := repo.SubmitTeamResult(context.Background(), matchID, home, SubmitTeamResultRequest{})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 4, conn.consumed)
	assert.True(t, conn.rolledBack)
	assert.False(t, conn.committed)
}
