package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breezeops/breezectl/breeze"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{
			name:       "simple comparison",
			expression: `FirstName == "John"`,
			wantErr:    false,
		},
		{
			name:       "compound expression",
			expression: `Amount > 100 && Method == "Check"`,
			wantErr:    false,
		},
		{
			name:       "empty expression",
			expression: "",
			wantErr:    true,
		},
		{
			name:       "whitespace only",
			expression: "   ",
			wantErr:    true,
		},
		{
			name:       "syntax error",
			expression: `FirstName ==`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestMatchPerson(t *testing.T) {
	person := breeze.Person{
		ID:        "123",
		FirstName: "John",
		LastName:  "Doe",
	}

	tests := []struct {
		name       string
		expression string
		want       bool
	}{
		{
			name:       "first name match",
			expression: `FirstName == "John"`,
			want:       true,
		},
		{
			name:       "first name mismatch",
			expression: `FirstName == "Jane"`,
			want:       false,
		},
		{
			name:       "display name",
			expression: `Name == "John Doe"`,
			want:       true,
		},
		{
			name:       "helper function",
			expression: `lower(LastName) == "doe"`,
			want:       true,
		},
		{
			name:       "prefix helper",
			expression: `hasPrefix(FirstName, "jo")`,
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := f.MatchPerson(person)
			require.NoError(t, err)
			assert.Equal(t, tt.want, matched)
		})
	}
}

func TestMatchContribution(t *testing.T) {
	contribution := breeze.Contribution{
		ID:       "9",
		PersonID: "123",
		Amount:   "250.00",
		Method:   "Check",
	}

	f, err := Compile(`Amount > 100 && Method == "Check"`)
	require.NoError(t, err)

	matched, err := f.MatchContribution(contribution)
	require.NoError(t, err)
	assert.True(t, matched)

	f, err = Compile(`Amount > 500`)
	require.NoError(t, err)

	matched, err = f.MatchContribution(contribution)
	require.NoError(t, err)
	assert.False(t, matched)
}
