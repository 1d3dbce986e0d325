package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactTokenDigests(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "where clause",
			sql:  `SELECT * FROM "credentials" WHERE access_token_hash = 'abc123' LIMIT 1`,
			want: `SELECT * FROM "credentials" WHERE access_token_hash = '[REDACTED]' LIMIT 1`,
		},
		{
			name: "postgres update",
			sql:  `UPDATE "credentials" SET "access_token_hash"='a1',"refresh_token_hash"='r1' WHERE id = 'x' AND refresh_token_hash = 'r0'`,
			want: `UPDATE "credentials" SET "access_token_hash"='[REDACTED]',"refresh_token_hash"='[REDACTED]' WHERE id = 'x' AND refresh_token_hash = '[REDACTED]'`,
		},
		{
			name: "sqlite update",
			sql:  "UPDATE `credentials` SET `refresh_token_hash`='r1' WHERE id = 'x'",
			want: "UPDATE `credentials` SET `refresh_token_hash`='[REDACTED]' WHERE id = 'x'",
		},
		{
			name: "other columns untouched",
			sql:  `SELECT * FROM "allowed_origins" WHERE credential_id = 'c1'`,
			want: `SELECT * FROM "allowed_origins" WHERE credential_id = 'c1'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, redactTokenDigests(tt.sql))
		})
	}
}
