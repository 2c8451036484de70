package user

import (
	"errors"
	"testing"
)

func TestUserValidate(t *testing.T) {
	valid := User{Name: "Virat", Email: "virat@example.com", Mobile: "9876543210"}

	tests := []struct {
		name    string
		mutate  func(*User)
		wantErr error
	}{
		{name: "valid", mutate: func(*User) {}},
		{name: "blank name", mutate: func(u *User) { u.Name = "  " }, wantErr: ErrInvalidName},
		{name: "email without tld", mutate: func(u *User) { u.Email = "virat@example" }, wantErr: ErrInvalidEmail},
		{name: "email with space", mutate: func(u *User) { u.Email = "vi rat@example.com" }, wantErr: ErrInvalidEmail},
		{name: "short mobile", mutate: func(u *User) { u.Mobile = "98765" }, wantErr: ErrInvalidMobile},
		{name: "mobile with letters", mutate: func(u *User) { u.Mobile = "98765abcde" }, wantErr: ErrInvalidMobile},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := valid
			tc.mutate(&u)
			err := u.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("12345"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	if err := ValidatePassword("123456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
