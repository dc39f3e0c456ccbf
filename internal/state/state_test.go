package state_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ubuntu/godism/internal/state"
)

func TestHealthFromString(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input string

		want    state.Health
		wantErr bool
	}{
		"Healthy":       {input: "Healthy", want: state.Healthy},
		"Repairable":    {input: "Repairable", want: state.Repairable},
		"NonRepairable": {input: "NonRepairable", want: state.NonRepairable},

		// Error cases
		"Error with made-up state": {input: "Discombobulated", wantErr: true},
		"Error with empty string":  {input: "", wantErr: true},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := state.NewFromString(tc.input)
			if tc.wantErr {
				require.Error(t, err, "Unexpected success parsing wrong input")
				return
			}
			require.NoError(t, err, "NewFromString should not fail with valid inputs")

			require.Equal(t, tc.want, got, "Unexpected health state returned by NewFromString")
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input state.Health
		want  string
	}{
		"Healthy":       {input: state.Healthy, want: "Healthy"},
		"Repairable":    {input: state.Repairable, want: "Repairable"},
		"NonRepairable": {input: state.NonRepairable, want: "NonRepairable"},
		"Error":         {input: state.Error, want: "Error"},

		// Error case
		"Error with made-up state": {input: 35, want: "Unknown health state 35"},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := tc.input.String()
			require.Equal(t, tc.want, got, "Unexpected text returned by state.String()")
		})
	}
}
