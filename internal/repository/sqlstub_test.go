package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"strings"
)

// stubRowSet is a canned result for one statement.
type stubRowSet struct {
	cols []string
	rows [][]driver.Value
}

// stubDB serves canned results keyed by a fragment of the SQL text and
// records every write statement, so repository scan and transaction
// logic can be exercised without a MySQL server.  Statements with no
// matching fragment return an empty result.
type stubDB struct {
	results map[string]*stubRowSet
	execs   []string
}

func (d *stubDB) open() *sql.DB { return sql.OpenDB(stubConnector{d}) }

type stubConnector struct{ d *stubDB }

func (c stubConnector) Connect(context.Context) (driver.Conn, error) { return &stubConn{c.d}, nil }
func (c stubConnector) Driver() driver.Driver                        { return stubDriver{c.d} }

type stubDriver struct{ d *stubDB }

func (dr stubDriver) Open(string) (driver.Conn, error) { return &stubConn{dr.d}, nil }

type stubConn struct{ d *stubDB }

func (c *stubConn) Prepare(query string) (driver.Stmt, error) { return &stubStmt{c.d, query}, nil }
func (c *stubConn) Close() error                              { return nil }
func (c *stubConn) Begin() (driver.Tx, error)                 { return stubTx{}, nil }

type stubTx struct{}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

type stubStmt struct {
	d     *stubDB
	query string
}

func (s *stubStmt) Close() error  { return nil }
func (s *stubStmt) NumInput() int { return -1 }

func (s *stubStmt) Exec([]driver.Value) (driver.Result, error) {
	s.d.execs = append(s.d.execs, s.query)
	return driver.RowsAffected(1), nil
}

func (s *stubStmt) Query([]driver.Value) (driver.Rows, error) {
	for frag, rs := range s.d.results {
		if strings.Contains(s.query, frag) {
			return &stubRows{set: rs}, nil
		}
	}
	return &stubRows{set: &stubRowSet{}}, nil
}

type stubRows struct {
	set *stubRowSet
	i   int
}

func (r *stubRows) Columns() []string { return r.set.cols }
func (r *stubRows) Close() error      { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.i >= len(r.set.rows) {
		return io.EOF
	}
	copy(dest, r.set.rows[r.i])
	r.i++
	return nil
}
