package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"blskdf/internal/domain/types"
)

func TestParsePath(t *testing.T) {
	cases := []struct {
		in   string
		want types.Path
	}{
		{"m", types.Path{}},
		{"m/0", types.Path{0}},
		{"m/12381/3600/0/0/0", types.Path{12381, 3600, 0, 0, 0}},
		{"m/4294967295", types.Path{4294967295}},
		{" m/1/1 ", types.Path{1, 1}},
	}
	for _, tc := range cases {
		got, err := types.ParsePath(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestParsePath_Rejects(t *testing.T) {
	for _, in := range []string{
		"",
		"/0",
		"x/0",
		"m/",
		"m//1",
		"m/1'",
		"m/-1",
		"m/+1",
		"m/4294967296",
		"m/0x10",
	} {
		_, err := types.ParsePath(in)
		require.ErrorIs(t, err, types.ErrInvalidPath, in)
	}
}

func TestPath_StringRoundTrip(t *testing.T) {
	p := types.EIP2334SigningPath(7)
	require.Equal(t, "m/12381/3600/7/0/0", p.String())

	back, err := types.ParsePath(p.String())
	require.NoError(t, err)
	require.Equal(t, p, back)

	require.Equal(t, "m", types.Path{}.String())
	require.Equal(t, "m/12381/3600/7/0", types.EIP2334WithdrawalPath(7).String())
}

func TestPath_ChildDoesNotAlias(t *testing.T) {
	base := make(types.Path, 2, 8)
	a := base.Child(1)
	b := base.Child(2)
	require.Equal(t, types.Path{0, 0, 1}, a)
	require.Equal(t, types.Path{0, 0, 2}, b)
	require.Len(t, base, 2)
}
