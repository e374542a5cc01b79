package database

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestConnect_Error(t *testing.T) {
	cfg := Config{
		Driver:             "invalid",
		ConnectionString:   "invalid",
		MaxOpenConnections: 10,
		MaxIdleConnections: 5,
		ConnMaxLifetime:    time.Hour,
	}

	db, err := Connect(cfg)
	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "sql: unknown driver")
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "plain error", err: errors.New("duplicate key"), expected: false},
		{name: "postgres unique violation", err: &pq.Error{Code: "23505"}, expected: true},
		{name: "postgres wrapped", err: fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}), expected: true},
		{name: "postgres other code", err: &pq.Error{Code: "23503"}, expected: false},
		{name: "mysql duplicate entry", err: &mysql.MySQLError{Number: 1062}, expected: true},
		{name: "mysql other error", err: &mysql.MySQLError{Number: 1452}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUniqueViolation(tt.err))
		})
	}
}
