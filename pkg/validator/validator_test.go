package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		password string
		wantErrs []string
	}{
		{"valid", "a@x.com", "pw1", nil},
		{"short password accepted", "a@x.com", "p", nil},
		{"missing email", "", "pw1", []string{"email"}},
		{"missing password", "a@x.com", "", []string{"password"}},
		{"missing both", "", "", []string{"email", "password"}},
		{"bad email format", "not-an-email", "pw1", []string{"email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCredentials(tt.email, tt.password)
			if len(tt.wantErrs) == 0 {
				assert.False(t, errs.HasErrors())
				return
			}
			assert.Len(t, errs, len(tt.wantErrs))
			for _, field := range tt.wantErrs {
				assert.Contains(t, errs, field)
			}
		})
	}
}
