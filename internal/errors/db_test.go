package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapDBError_Nil(t *testing.T) {
	assert.NoError(t, MapDBError(nil))
}

func TestMapDBError_ContextErrors(t *testing.T) {
	assert.Equal(t, ErrCodeTimeout, GetCode(MapDBError(context.DeadlineExceeded)))
	assert.Equal(t, ErrCodeCanceled, GetCode(MapDBError(context.Canceled)))
}

func TestMapDBError_NoRows(t *testing.T) {
	err := MapDBError(fmt.Errorf("query: %w", pgx.ErrNoRows))
	assert.True(t, IsNotFound(err))
}

func TestMapDBError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ColumnName: "id"}
	err := MapDBError(pgErr)
	assert.True(t, IsConflict(err))
	assert.Equal(t, "id", GetField(err))
}

func TestMapDBError_CheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "succeeded_check"}
	err := MapDBError(pgErr)
	assert.True(t, IsValidation(err))
}

func TestMapDBError_UnknownPgError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.SerializationFailure}
	assert.True(t, IsInternal(MapDBError(pgErr)))
}

func TestMapDBError_PassThrough(t *testing.T) {
	plain := stderrors.New("something else")
	assert.Equal(t, plain, MapDBError(plain))
}
