package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"blskdf/cmd/blskdf/commands"
)

const (
	piSeed         = "0x3141592653589793238462643383279502884197169399375105820974944592"
	trezorMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--home", t.TempDir(), "--log", "error"}, args...))
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestMaster(t *testing.T) {
	out, err := run(t, "master", "--seed", piSeed)
	require.NoError(t, err)
	require.Equal(t, "46029459550803682895343812821003080589696405386150182061394330539196052371668", out)
}

func TestMaster_FromMnemonic(t *testing.T) {
	out, err := run(t, "master", "--mnemonic", trezorMnemonic, "--passphrase", "TREZOR")
	require.NoError(t, err)
	require.Equal(t, "12513733877922233913083619867448865075222526338446857121953625441395088009793", out)
}

func TestMaster_ShortSeedRejected(t *testing.T) {
	_, err := run(t, "master", "--seed", "0x00ff")
	require.Error(t, err)

	out, err := run(t, "--min-seed-length", "0", "master", "--seed", "0x00ff")
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestChild(t *testing.T) {
	out, err := run(t, "child",
		"--parent", "31740500954810567003972734830331791822878290325762596213711963944729383643688",
		"--index", "42")
	require.NoError(t, err)
	require.Equal(t, "51041472511529980987749393477251359993058329222191894694692317000136653813011", out)
}

func TestPath(t *testing.T) {
	out, err := run(t, "path", "--seed", piSeed, "m/0/0")
	require.NoError(t, err)
	require.Equal(t, "51276875041707949730452782900405955986955091304680802595692626124442298787762", out)

	_, err = run(t, "path", "--seed", piSeed, "m/0'")
	require.Error(t, err)
}

func TestScan(t *testing.T) {
	out, err := run(t, "scan", "--seed", piSeed, "--prefix", "m", "--from", "0", "--count", "1")
	require.NoError(t, err)
	require.Equal(t, "m/0 "+childOfPiMaster0(t), out)

	out, err = run(t, "scan", "--seed", piSeed, "--count", "3")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[2], "m/12381/3600/2 "))
}

func childOfPiMaster0(t *testing.T) string {
	t.Helper()
	out, err := run(t, "child",
		"--parent", "46029459550803682895343812821003080589696405386150182061394330539196052371668",
		"--index", "0")
	require.NoError(t, err)
	return out
}

func TestMnemonicSeed(t *testing.T) {
	out, err := run(t, "mnemonic-seed", "--mnemonic", trezorMnemonic, "--passphrase", "TREZOR")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "c55257c360c07c72"))
}

func TestFingerprint(t *testing.T) {
	out, err := run(t, "fingerprint", "--seed", piSeed)
	require.NoError(t, err)
	require.Regexp(t, `^Fingerprint: [0-9a-f]{20}$`, out)
}

func TestVerify_Embedded(t *testing.T) {
	out, err := run(t, "verify")
	require.NoError(t, err)
	require.Contains(t, out, "4 vectors passed")
}

func TestVerify_FileMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	body := `[{"seed":"0x3141592653589793238462643383279502884197169399375105820974944592",` +
		`"master_SK":"1","child_index":"0","child_SK":"1"}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	out, err := run(t, "--vectors", path, "verify")
	require.Error(t, err)
	require.Contains(t, out, "FAIL")
}

func TestConfigFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "blskdf.yaml"), []byte("min-seed-length: 0\n"), 0o600))

	cmd := commands.NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--home", home, "--log", "error", "master", "--seed", "01"})
	require.NoError(t, cmd.Execute())
	require.NotEmpty(t, strings.TrimSpace(out.String()))
}
