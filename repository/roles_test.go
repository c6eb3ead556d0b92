package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haukuraj/sqlverk/errs"
)

func TestValidateRoleIdentifiers(t *testing.T) {
	tests := []struct {
		name     string
		roleName string
		username string
		valid    bool
	}{
		{"plain identifiers", "scorekeeper", "alice_b", true},
		{"leading underscore", "_staging", "bob", true},
		{"digits after first char", "role2", "user9", true},
		{"role with space", "score keeper", "alice", false},
		{"role with dash", "score-keeper", "alice", false},
		{"username with quote", "scorekeeper", `al"ice`, false},
		{"injection in role", "r; DROP ROLE postgres", "alice", false},
		{"empty role", "", "alice", false},
		{"empty username", "scorekeeper", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRoleIdentifiers(tt.roleName, tt.username)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errs.ErrValidation)
			}
		})
	}
}

func TestValidateRoleIdentifiersReportsBothFields(t *testing.T) {
	err := validateRoleIdentifiers("bad role", "bad user")

	var gwErr *errs.Error
	require.ErrorAs(t, err, &gwErr)
	require.Len(t, gwErr.Errors, 2)
	assert.Equal(t, "rolename", gwErr.Errors[0].Field)
	assert.Equal(t, "username", gwErr.Errors[1].Field)
}

func TestCreateRoleAndUserRejectsBadIdentifiersBeforeQuerying(t *testing.T) {
	// Gateway has no database; reaching the transaction would panic,
	// so passing proves validation fires first.
	g := New(nil, nil, nil)

	err := g.CreateRoleAndUser(context.Background(), "rogue; DROP TABLE users", "alice", "pw")

	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestCreateRoleAndUserRejectsOverlongPassword(t *testing.T) {
	g := New(nil, nil, nil)

	// bcrypt refuses passwords longer than 72 bytes.
	err := g.CreateRoleAndUser(context.Background(), "scorekeeper", "alice", strings.Repeat("x", 80))

	assert.ErrorIs(t, err, errs.ErrValidation)
}
