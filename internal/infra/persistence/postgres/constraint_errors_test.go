package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "business number key",
			err:  pkgerrors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: localStoreBusinessNumberKey}, "insert"),
			want: true,
		},
		{
			name: "other unique constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "local_store_road_name_address_key"},
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: localStoreBusinessNumberKey},
		},
		{
			name: "translated gorm error has no constraint name",
			err:  gorm.ErrDuplicatedKey,
		},
		{
			name: "plain error",
			err:  errors.New("duplicate key"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err, localStoreBusinessNumberKey))
		})
	}
}
