package postgres

import (
	"fmt"
	"testing"

	"lostfound/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsNotNullConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "postgres message", err: errors.New(`ERROR: null value in column "zone_id" violates not-null constraint (SQLSTATE 23502)`), want: true},
		{name: "sqlstate only", err: errors.New("SQLSTATE 23502"), want: true},
		{name: "unrelated", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNotNullConstraintViolation(tt.err))
		})
	}
}

func TestIsCheckConstraintViolation(t *testing.T) {
	assert.True(t, isCheckConstraintViolation(fmt.Errorf("insert: %w", gorm.ErrCheckConstraintViolated)))
	assert.False(t, isCheckConstraintViolation(gorm.ErrRecordNotFound))
}
