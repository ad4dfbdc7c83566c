package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"blskdf/internal/store"
)

func TestEmbeddedVectors(t *testing.T) {
	vs, err := store.EmbeddedVectors()
	require.NoError(t, err)
	require.Len(t, vs, 4)

	require.Len(t, vs[0].Seed, 64)
	require.Equal(t, "12513733877922233913083619867448865075222526338446857121953625441395088009793", vs[0].MasterSK.String())
	require.EqualValues(t, 4294967295, vs[2].ChildIndex)
}

func TestVectorFileStore_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.json")
	body := `[{"seed":"00ff","master_SK":"1","child_index":"7","child_SK":"2"}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	vs, err := store.NewVectorFileStore(path).LoadVectors()
	require.NoError(t, err)
	require.Len(t, vs, 1)
	require.Equal(t, []byte{0x00, 0xff}, vs[0].Seed)
	require.EqualValues(t, 7, vs[0].ChildIndex)
	require.Equal(t, "2", vs[0].ChildSK.String())
}

func TestVectorFileStore_Missing(t *testing.T) {
	_, err := store.NewVectorFileStore(filepath.Join(t.TempDir(), "nope.json")).LoadVectors()
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestVectorFileStore_Malformed(t *testing.T) {
	cases := map[string]string{
		"seed":  `[{"seed":"zz","master_SK":"1","child_index":"0","child_SK":"1"}]`,
		"index": `[{"seed":"00","master_SK":"1","child_index":"4294967296","child_SK":"1"}]`,
		"range": `[{"seed":"00","master_SK":"52435875175126190479447740508185965837690552500527637822603658699938581184513","child_index":"0","child_SK":"1"}]`,
		"child": `[{"seed":"00","master_SK":"1","child_index":"0","child_SK":"abc"}]`,
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), name+".json")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		_, err := store.NewVectorFileStore(path).LoadVectors()
		require.ErrorIs(t, err, store.ErrMalformedVector, name)
	}
}

func TestVectorFileStore_NotJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := store.NewVectorFileStore(path).LoadVectors()
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode")
	require.NotErrorIs(t, err, store.ErrMalformedVector)
}
