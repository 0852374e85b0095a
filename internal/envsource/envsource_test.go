package envsource

import (
	"testing"

	"envguard/internal/evaluator"

	"github.com/stretchr/testify/assert"
)

func TestFromEnviron(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		want    evaluator.Inputs
	}{
		{
			name:    "basic entries",
			environ: []string{"HOST=example.com", "PORT=8080"},
			want:    evaluator.Inputs{"HOST": "example.com", "PORT": "8080"},
		},
		{
			name:    "value containing equals",
			environ: []string{"DATABASE_URL=postgres://u:p@host/db?sslmode=require"},
			want:    evaluator.Inputs{"DATABASE_URL": "postgres://u:p@host/db?sslmode=require"},
		},
		{
			name:    "empty value is present",
			environ: []string{"EMPTY="},
			want:    evaluator.Inputs{"EMPTY": ""},
		},
		{
			name:    "malformed entry skipped",
			environ: []string{"NOEQUALS", "OK=1"},
			want:    evaluator.Inputs{"OK": "1"},
		},
		{
			name:    "later entry wins",
			environ: []string{"KEY=first", "KEY=second"},
			want:    evaluator.Inputs{"KEY": "second"},
		},
		{
			name:    "empty environ",
			environ: nil,
			want:    evaluator.Inputs{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromEnviron(tt.environ))
		})
	}
}
