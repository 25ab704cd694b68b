package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// unreachableDBTX fails the test if any database method is invoked.
// It backs tests that must short-circuit before touching the database.
type unreachableDBTX struct {
	t *testing.T
}

func (d *unreachableDBTX) ExecContext(
	ctx context.Context,
	query string,
	args ...any,
) (sql.Result, error) {
	d.t.Fatal("unexpected ExecContext call")
	return nil, nil
}

func (d *unreachableDBTX) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	d.t.Fatal("unexpected PrepareContext call")
	return nil, nil
}

func (d *unreachableDBTX) QueryContext(
	ctx context.Context,
	query string,
	args ...any,
) (*sql.Rows, error) {
	d.t.Fatal("unexpected QueryContext call")
	return nil, nil
}

func (d *unreachableDBTX) QueryRowContext(
	ctx context.Context,
	query string,
	args ...any,
) *sql.Row {
	d.t.Fatal("unexpected QueryRowContext call")
	return nil
}

func TestNewPostgresTaskStore(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewPostgresTaskStore(nil, nil)
	})

	s := NewPostgresTaskStore(&unreachableDBTX{t: t}, nil)
	require.NotNil(t, s)
}

func TestCreateRejectsInvalidTask(t *testing.T) {
	t.Parallel()

	s := NewPostgresTaskStore(&unreachableDBTX{t: t}, nil)

	// Validation failures never reach the database
	err := s.Create(context.Background(), &domain.Task{
		Title:    "",
		Status:   domain.TaskStatusPending,
		Priority: domain.TaskPriorityMedium,
		UserID:   1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrTitleEmpty)
}

func TestUpdateRejectsInvalidTask(t *testing.T) {
	t.Parallel()

	s := NewPostgresTaskStore(&unreachableDBTX{t: t}, nil)

	err := s.Update(context.Background(), &domain.Task{
		ID:       7,
		Title:    "Valid title",
		Status:   "bogus",
		Priority: domain.TaskPriorityMedium,
		UserID:   1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
