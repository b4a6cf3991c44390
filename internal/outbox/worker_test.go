package outbox

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpitch/league/internal/db"
)

// outboxConn serves the poll cycle from canned data: the list query
// returns pendingRows once, everything else is a plain exec.
type outboxConn struct {
	mu          sync.Mutex
	pendingRows [][]driver.Value
	execQueries []string
	committed   bool
	rolledBack  bool
}

func (c *outboxConn) Prepare(query string) (driver.Stmt, error) {
	return &outboxStmt{conn: c, query: query}, nil
}
func (c *outboxConn) Close() error              { return nil }
func (c *outboxConn) Begin() (driver.Tx, error) { return c, nil }
func (c *outboxConn) Commit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.committed = true
	return nil
}
func (c *outboxConn) Rollback() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rolledBack = true
	return nil
}

type outboxStmt struct {
	conn  *outboxConn
	query string
}

func (s *outboxStmt) Close() error  { return nil }
func (s *outboxStmt) NumInput() int { return -1 }
func (s *outboxStmt) Exec(args []driver.Value) (driver.Result, error) {
	s.conn.mu.Lock()
	defer s.conn.mu.Unlock()
	s.conn.execQueries = append(s.conn.execQueries, s.query)
	return driver.RowsAffected(1), nil
}
func (s *outboxStmt) Query(args []driver.Value) (driver.Rows, error) {
	s.conn.mu.Lock()
	defer s.conn.mu.Unlock()
	rows := s.conn.pendingRows
	s.conn.pendingRows = nil
	return &outboxRows{
		cols: []string{"id", "event_type", "aggregate_id", "payload", "created_at", "processed_at"},
		rows: rows,
	}, nil
}

type outboxRows struct {
	cols []string
	rows [][]driver.Value
	pos  int
}

func (r *outboxRows) Columns() []string { return r.cols }
func (r *outboxRows) Close() error      { return nil }
func (r *outboxRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.pos])
	r.pos++
	return nil
}

type outboxConnector struct{ conn *outboxConn }

func (c outboxConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }
func (c outboxConnector) Driver() driver.Driver                        { return outboxDriver{c.conn} }

type outboxDriver struct{ conn *outboxConn }

func (d outboxDriver) Open(string) (driver.Conn, error) { return d.conn, nil }

type recordingPublisher struct {
	mu     sync.Mutex
	events []db.OutboxEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event db.OutboxEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func TestWorkerPublishesAndMarksPendingEvents(t *testing.T) {
	eventID := uuid.New()
	conn := &outboxConn{
		pendingRows: [][]driver.Value{{
			eventID.String(),
			"match.confirmed",
			uuid.New().String(),
			[]byte(`{"match_id":"abc"}`),
			time.Now(),
			nil,
		}},
	}
	publisher := &recordingPublisher{}

	worker := NewWorker(sql.OpenDB(outboxConnector{conn}), publisher, Config{
		PollInterval: time.Minute,
		BatchSize:    100,
		MaxRetries:   1,
		RetryDelay:   time.Millisecond,
	}, clockwork.NewFakeClock())

	require.NoError(t, worker.Start(context.Background()))
	require.NoError(t, worker.Stop())

	require.Len(t, publisher.events, 1)
	assert.Equal(t, eventID, publisher.events[0].ID)
	assert.Equal(t, "match.confirmed", publisher.events[0].EventType)

	var marked bool
	for _, q := range conn.execQueries {
		if strings.Contains(q, "SET processed_at") {
			marked = true
		}
	}
	assert.True(t, marked, "expected the event to be marked processed")
	assert.True(t, conn.committed)
}

func TestWorkerStartAndStopAreSingleShot(t *testing.T) {
	conn := &outboxConn{}
	worker := NewWorker(sql.OpenDB(outboxConnector{conn}), &recordingPublisher{},
		DefaultConfig(), clockwork.NewFakeClock())

	require.NoError(t, worker.Start(context.Background()))
	assert.Error(t, worker.Start(context.Background()))

	require.NoError(t, worker.Stop())
	assert.Error(t, worker.Stop())
}
