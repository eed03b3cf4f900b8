package models

import (
	"strings"
	"testing"
)

func TestUserCreateRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     UserCreateRequest
		wantErr bool
	}{
		{
			name:    "valid user",
			req:     UserCreateRequest{Email: "john@example.com", Password: "password123", Name: "John Doe"},
			wantErr: false,
		},
		{
			name:    "valid organizer",
			req:     UserCreateRequest{Email: "bob@example.com", Password: "password123", Name: "Bob", Role: RoleOrganizer},
			wantErr: false,
		},
		{
			name:    "missing email",
			req:     UserCreateRequest{Password: "password123", Name: "John"},
			wantErr: true,
		},
		{
			name:    "invalid email",
			req:     UserCreateRequest{Email: "john@", Password: "password123", Name: "John"},
			wantErr: true,
		},
		{
			name:    "short password",
			req:     UserCreateRequest{Email: "john@example.com", Password: "short", Name: "John"},
			wantErr: true,
		},
		{
			name:    "long password",
			req:     UserCreateRequest{Email: "john@example.com", Password: strings.Repeat("a", 129), Name: "John"},
			wantErr: true,
		},
		{
			name:    "blank name",
			req:     UserCreateRequest{Email: "john@example.com", Password: "password123", Name: "  "},
			wantErr: true,
		},
		{
			name:    "unknown role",
			req:     UserCreateRequest{Email: "john@example.com", Password: "password123", Name: "John", Role: "superuser"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserRoles(t *testing.T) {
	tests := []struct {
		role      UserRole
		organizer bool
		admin     bool
	}{
		{RoleUser, false, false},
		{RoleOrganizer, true, false},
		{RoleAdmin, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			user := &User{Role: tt.role}
			if got := user.IsOrganizer(); got != tt.organizer {
				t.Errorf("IsOrganizer() = %v, want %v", got, tt.organizer)
			}
			if got := user.IsAdmin(); got != tt.admin {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.admin)
			}
		})
	}
}
