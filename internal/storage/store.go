// Package storage is the only place that talks SQL. It maps the notebooks table to
// model.Notebook through a set of statements that are prepared once at startup.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"gitlab.com/dirk.krummacker/notebook-service/internal/model"
)

const (
	columns = `id, full_name, company, phone, email, birth_date, photo`

	insertQuery = `
		INSERT INTO notebooks (full_name, company, phone, email, birth_date, photo)
		VALUES (:full_name, :company, :phone, :email, :birth_date, :photo)`

	selectPageQuery = `SELECT ` + columns + ` FROM notebooks ORDER BY id LIMIT ? OFFSET ?`

	selectWhereIdQuery = `SELECT ` + columns + ` FROM notebooks WHERE id = ?`

	updateWhereIdQuery = `
		UPDATE notebooks
		SET full_name = :full_name, company = :company, phone = :phone,
			email = :email, birth_date = :birth_date, photo = :photo
		WHERE id = :id`

	deleteWhereIdQuery = `DELETE FROM notebooks WHERE id = ?`
)

// Recorder is told about every storage operation and whether it failed.
type Recorder interface {
	StoreOperation(operation string, err error)
}

// PoolOptions limits the connection pool of a database opened with Open.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Store executes parameterized statements against the notebooks table. It is safe for concurrent
// use; concurrency is bounded by the pool of the underlying *sql.DB.
type Store struct {
	db       *sqlx.DB
	dialect  dialect
	recorder Recorder

	insert        *sqlx.NamedStmt
	selectPage    *sqlx.Stmt
	selectWhereId *sqlx.Stmt
	updateWhereId *sqlx.NamedStmt
	deleteWhereId *sqlx.Stmt
}

// Option configures a Store.
type Option func(*Store)

// WithRecorder reports every operation to r.
func WithRecorder(r Recorder) Option {
	return func(s *Store) {
		s.recorder = r
	}
}

// Open opens and pings a database for the given driver. For sqlite3 the dsn is a file path;
// the file is created on first use.
func Open(ctx context.Context, driver string, dsn string, pool PoolOptions) (*sql.DB, error) {
	if _, err := lookupDialect(driver); err != nil {
		return nil, err
	}
	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}
	return sqlDB, nil
}

// New wraps the given database and prepares all statements. The database argument can be a real
// database for production use or a mock database within unit tests. The driver name selects the
// bind variable style and the SQL dialect. If a statement cannot be prepared, the ones prepared
// before it are closed again.
func New(ctx context.Context, sqlDB *sql.DB, driver string, opts ...Option) (_ *Store, err error) {
	d, err := lookupDialect(driver)
	if err != nil {
		return nil, err
	}
	s := &Store{db: sqlx.NewDb(sqlDB, driver), dialect: d}
	for _, opt := range opts {
		opt(s)
	}
	defer func() {
		if err != nil {
			s.closeStatements()
		}
	}()

	insert := insertQuery
	if d.returningID {
		insert += ` RETURNING id`
	}
	if s.insert, err = s.db.PrepareNamedContext(ctx, insert); err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	if s.selectPage, err = s.db.PreparexContext(ctx, s.db.Rebind(selectPageQuery)); err != nil {
		return nil, fmt.Errorf("prepare select page: %w", err)
	}
	if s.selectWhereId, err = s.db.PreparexContext(ctx, s.db.Rebind(selectWhereIdQuery)); err != nil {
		return nil, fmt.Errorf("prepare select by id: %w", err)
	}
	if s.updateWhereId, err = s.db.PrepareNamedContext(ctx, updateWhereIdQuery); err != nil {
		return nil, fmt.Errorf("prepare update: %w", err)
	}
	if s.deleteWhereId, err = s.db.PreparexContext(ctx, s.db.Rebind(deleteWhereIdQuery)); err != nil {
		return nil, fmt.Errorf("prepare delete: %w", err)
	}
	return s, nil
}

// EnsureSchema creates the notebooks table if it does not exist yet.
func EnsureSchema(ctx context.Context, sqlDB *sql.DB, driver string) error {
	d, err := lookupDialect(driver)
	if err != nil {
		return err
	}
	if _, err := sqlDB.ExecContext(ctx, d.schema); err != nil {
		return fmt.Errorf("create notebooks table: %w", err)
	}
	return nil
}

// List returns at most limit notebooks in insertion order, skipping the first offset ones.
func (s *Store) List(ctx context.Context, limit int, offset int) (notebooks []model.Notebook, err error) {
	defer func() { s.record("list", err) }()

	notebooks = []model.Notebook{}
	if err = s.selectPage.SelectContext(ctx, &notebooks, limit, offset); err != nil {
		return nil, fmt.Errorf("list notebooks: %w", err)
	}
	return notebooks, nil
}

// Create inserts n and returns the id the database assigned to it. n itself is not modified.
func (s *Store) Create(ctx context.Context, n *model.Notebook) (id int64, err error) {
	defer func() { s.record("create", err) }()

	if s.dialect.returningID {
		if err = s.insert.QueryRowxContext(ctx, n).Scan(&id); err != nil {
			return 0, fmt.Errorf("insert notebook: %w", err)
		}
		return id, nil
	}
	result, err := s.insert.ExecContext(ctx, n)
	if err != nil {
		return 0, fmt.Errorf("insert notebook: %w", err)
	}
	if id, err = result.LastInsertId(); err != nil {
		return 0, fmt.Errorf("insert notebook: %w", err)
	}
	return id, nil
}

// Get returns the notebook with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id int64) (n model.Notebook, err error) {
	defer func() { s.record("get", err) }()

	err = s.selectWhereId.GetContext(ctx, &n, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Notebook{}, ErrNotFound
	}
	if err != nil {
		return model.Notebook{}, fmt.Errorf("get notebook %d: %w", id, err)
	}
	return n, nil
}

// Update replaces every field of the notebook with the given id. Updating an id that does not
// exist affects no rows and is not an error.
func (s *Store) Update(ctx context.Context, id int64, n *model.Notebook) (err error) {
	defer func() { s.record("update", err) }()

	row := *n
	row.Id = id
	if _, err = s.updateWhereId.ExecContext(ctx, &row); err != nil {
		return fmt.Errorf("update notebook %d: %w", id, err)
	}
	return nil
}

// Delete removes the notebook with the given id if present. Deleting an id that does not exist
// is not an error.
func (s *Store) Delete(ctx context.Context, id int64) (err error) {
	defer func() { s.record("delete", err) }()

	if _, err = s.deleteWhereId.ExecContext(ctx, id); err != nil {
		return fmt.Errorf("delete notebook %d: %w", id, err)
	}
	return nil
}

// Close releases the prepared statements and the database.
func (s *Store) Close() error {
	s.closeStatements()
	return s.db.Close()
}

// closeStatements closes every statement that has been prepared so far.
func (s *Store) closeStatements() {
	for _, stmt := range []*sqlx.NamedStmt{s.insert, s.updateWhereId} {
		if stmt != nil {
			_ = stmt.Close()
		}
	}
	for _, stmt := range []*sqlx.Stmt{s.selectPage, s.selectWhereId, s.deleteWhereId} {
		if stmt != nil {
			_ = stmt.Close()
		}
	}
}

// record reports the outcome of an operation. A miss is an answer, not a failure.
func (s *Store) record(operation string, err error) {
	if s.recorder == nil {
		return
	}
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	s.recorder.StoreOperation(operation, err)
}
