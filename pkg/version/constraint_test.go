package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConstraint(t *testing.T) {
	c, err := ParseConstraint("")
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = ParseConstraint(">= 1.8")
	require.NoError(t, err)
	assert.NotNil(t, c)

	_, err = ParseConstraint(">>> nope")
	assert.Error(t, err)
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		constraint string
		want       bool
		wantErr    bool
	}{
		{"no constraint", "v1.0.0", "", true, false},
		{"no constraint unknown version", Unknown, "", true, false},
		{"above minimum", "v1.9.3", ">= 1.8", true, false},
		{"equal to minimum", "v1.8.0", ">= 1.8", true, false},
		{"below minimum", "v1.7.1", ">= 1.8", false, false},
		{"caret range", "v1.9.3", "^1.5", true, false},
		{"major mismatch", "v2.0.0", "^1.5", false, false},
		{"unknown version", "(devel)", ">= 1.8", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseConstraint(tt.constraint)
			require.NoError(t, err)

			got, err := Satisfies(tt.version, c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
