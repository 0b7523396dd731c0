package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type constraint int

const (
	uniqueConstraint constraint = iota
	foreignKeyConstraint
	notNullConstraint
	checkConstraint
)

// constraintSignature identifies a violation either by gorm's translated sentinel
// or, for untranslated driver errors, by SQLSTATE code or message fragment.
type constraintSignature struct {
	sentinel error
	sqlState string
	fragment string
}

var constraintSignatures = map[constraint]constraintSignature{
	uniqueConstraint:     {sentinel: gorm.ErrDuplicatedKey, sqlState: "23505", fragment: "duplicate key"},
	foreignKeyConstraint: {sentinel: gorm.ErrForeignKeyViolated, sqlState: "23503", fragment: "foreign key"},
	notNullConstraint:    {sqlState: "23502", fragment: "null value"},
	checkConstraint:      {sentinel: gorm.ErrCheckConstraintViolated, sqlState: "23514", fragment: "check constraint"},
}

// violates reports whether err is a violation of the given constraint kind.
func violates(err error, kind constraint) bool {
	if err == nil {
		return false
	}

	sig := constraintSignatures[kind]
	if sig.sentinel != nil && errors.Is(err, sig.sentinel) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, sig.sqlState) || strings.Contains(msg, sig.fragment)
}
