package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyIDPattern = regexp.MustCompile(`\(([0-9a-f-]{36})\)`)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeConfigFixture(home))

	stdout, stderr, err := runSM(t, binaryPath, home, "vault", "init")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Stored master secret")

	stdout, stderr, err = runSM(t, binaryPath, home,
		"key", "add",
		"--provider", "openai",
		"--name", "Primary",
		"--key", "sk-test1234567890abcdef",
	)
	require.NoError(t, err, "stderr: %s", stderr)
	match := keyIDPattern.FindStringSubmatch(stdout)
	require.Len(t, match, 2, "no key id in %q", stdout)

	stdout, stderr, err = runSM(t, binaryPath, home, "key", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Primary (OpenAI)")

	stdout, stderr, err = runSM(t, binaryPath, home, "key", "preview", "--id", match[1])
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "*******************cdef")

	raw, err := os.ReadFile(filepath.Join(home, ".studymate", "credentials.toml"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "sk-test1234567890abcdef")

	var stored struct {
		Credentials []struct {
			Owner        string `toml:"owner"`
			Provider     string `toml:"provider"`
			EncryptedKey string `toml:"encrypted_key"`
		} `toml:"credentials"`
	}
	require.NoError(t, toml.Unmarshal(raw, &stored))
	require.Len(t, stored.Credentials, 1)
	assert.Equal(t, "e2e", stored.Credentials[0].Owner)
	assert.Equal(t, "openai", stored.Credentials[0].Provider)
	assert.NotEmpty(t, stored.Credentials[0].EncryptedKey)
}

func TestSmokeFailsClosedWithoutSecret(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runSM(t, binaryPath, home, "key", "list")
	require.Error(t, err)
	assert.Contains(t, stderr, "sm vault init")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "sm-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/sm")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build sm binary: %s", string(output))
	return binaryPath
}

func runSM(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"PATH="+filepath.Join(home, "bin"),
		"ENCRYPTION_KEY=",
		"SM_CREDENTIALS_BACKEND=",
		"SM_CREDENTIALS_PATH=",
		"SM_SECRETS_DIR=",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeConfigFixture(home string) error {
	configDir := filepath.Join(home, ".studymate")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	config := `owner = "e2e"

[log]
level = "error"
`

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o600)
}
