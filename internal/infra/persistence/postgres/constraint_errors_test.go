package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestViolates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind constraint
		want bool
	}{
		{name: "nil error", err: nil, kind: uniqueConstraint, want: false},
		{name: "translated duplicate", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert reminder"), kind: uniqueConstraint, want: true},
		{name: "raw duplicate", err: errors.New(`ERROR: duplicate key value violates unique constraint "uq_reminders_user_category_window" (SQLSTATE 23505)`), kind: uniqueConstraint, want: true},
		{name: "raw foreign key", err: errors.New("insert or update on table \"meals\" violates foreign key constraint (SQLSTATE 23503)"), kind: foreignKeyConstraint, want: true},
		{name: "not null is not unique", err: errors.New("null value in column \"name\" violates not-null constraint (SQLSTATE 23502)"), kind: uniqueConstraint, want: false},
		{name: "raw not null", err: errors.New("null value in column \"name\" violates not-null constraint (SQLSTATE 23502)"), kind: notNullConstraint, want: true},
		{name: "translated check", err: gorm.ErrCheckConstraintViolated, kind: checkConstraint, want: true},
		{name: "unrelated", err: errors.New("connection reset by peer"), kind: checkConstraint, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, violates(tt.err, tt.kind))
		})
	}
}
