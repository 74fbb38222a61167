package employees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/staffbook/pkg/types"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name    string
		input   FormInput
		want    types.Employee
		wantErr string
	}{
		{
			name:  "valid record",
			input: FormInput{ID: "1", Name: "Alice", Salary: "50000"},
			want:  types.Employee{ID: 1, Name: "Alice", Salary: 50000},
		},
		{
			name:  "surrounding whitespace on numeric fields",
			input: FormInput{ID: " 2 ", Name: "Bob", Salary: " 40000 "},
			want:  types.Employee{ID: 2, Name: "Bob", Salary: 40000},
		},
		{
			name:  "negative salary is unconstrained",
			input: FormInput{ID: "3", Name: "Carol", Salary: "-100"},
			want:  types.Employee{ID: 3, Name: "Carol", Salary: -100},
		},
		{
			name:    "non-integer ID",
			input:   FormInput{ID: "abc", Name: "Alice", Salary: "50000"},
			wantErr: "ID and Salary must be integers",
		},
		{
			name:    "non-integer salary",
			input:   FormInput{ID: "1", Name: "Alice", Salary: "lots"},
			wantErr: "ID and Salary must be integers",
		},
		{
			name:    "empty ID",
			input:   FormInput{ID: "", Name: "Alice", Salary: "50000"},
			wantErr: "ID and Salary must be integers",
		},
		{
			name:    "float salary",
			input:   FormInput{ID: "1", Name: "Alice", Salary: "50000.5"},
			wantErr: "ID and Salary must be integers",
		},
		{
			name:    "numeric parse reported before empty name",
			input:   FormInput{ID: "x", Name: "", Salary: "y"},
			wantErr: "ID and Salary must be integers",
		},
		{
			name:    "empty name",
			input:   FormInput{ID: "1", Name: "", Salary: "50000"},
			wantErr: "Name field cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecord(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, types.ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int
		wantErr bool
	}{
		{name: "valid", text: "42", want: 42},
		{name: "whitespace", text: " 7 ", want: 7},
		{name: "negative", text: "-1", want: -1},
		{name: "empty", text: "", wantErr: true},
		{name: "word", text: "abc", wantErr: true},
		{name: "float", text: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, types.ErrInvalidInput)
				assert.Contains(t, err.Error(), "ID must be an integer")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormInputFromRecord(t *testing.T) {
	f := FormInput{ID: "typed", Name: "typed", Salary: "typed"}
	f.FromRecord(types.Employee{ID: 5, Name: "Eve", Salary: 70000})

	assert.Equal(t, FormInput{ID: "5", Name: "Eve", Salary: "70000"}, f)
}

func TestFormInputClear(t *testing.T) {
	f := FormInput{ID: "1", Name: "Alice", Salary: "50000"}
	require.False(t, f.IsEmpty())

	f.Clear()
	assert.True(t, f.IsEmpty())
}
