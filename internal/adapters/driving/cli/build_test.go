package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairsoil/reviewbundle/internal/core/domain"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestBuildCmd_Use(t *testing.T) {
	assert.Equal(t, "build [preset...]", buildCmd.Use)
	assert.Equal(t, "Build review bundles", buildCmd.Short)
}

func TestBuildCmd_AllPresetsByDefault(t *testing.T) {
	mock, cleanup := setupCLITest()
	defer cleanup()

	out, err := executeRoot(t, "build")

	require.NoError(t, err)
	assert.Equal(t, []string{"en", "ja"}, mock.built)
	assert.Equal(t, []string{"/repo", "/repo"}, mock.roots)
	assert.Contains(t, out, "wrote docs/review_bundle_en.md")
	assert.Contains(t, out, "(2 sections, 123 bytes)")
	assert.Contains(t, out, "wrote docs/review_bundle_ja.md")
}

func TestBuildCmd_NamedPreset(t *testing.T) {
	mock, cleanup := setupCLITest()
	defer cleanup()

	out, err := executeRoot(t, "build", "ja")

	require.NoError(t, err)
	assert.Equal(t, []string{"ja"}, mock.built)
	assert.NotContains(t, out, "review_bundle_en.md")
}

func TestBuildCmd_UnknownPreset(t *testing.T) {
	_, cleanup := setupCLITest()
	defer cleanup()

	_, err := executeRoot(t, "build", "fr")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownPreset))
	assert.Contains(t, err.Error(), "build fr")
}

func TestBuildCmd_StopsAtFirstFailure(t *testing.T) {
	mock, cleanup := setupCLITest()
	defer cleanup()
	mock.failOn = "en"

	_, err := executeRoot(t, "build")

	require.Error(t, err)
	assert.Empty(t, mock.built)
	assert.Contains(t, err.Error(), "/repo/README.md")

	var readErr *domain.SourceReadError
	assert.True(t, errors.As(err, &readErr))
}

func TestBuildCmd_NoService(t *testing.T) {
	_, cleanup := setupCLITest()
	defer cleanup()
	SetConfig(Config{})

	_, err := executeRoot(t, "build")

	assert.EqualError(t, err, "bundle service not configured")
}

func TestBuildCmd_NoPresets(t *testing.T) {
	mock, cleanup := setupCLITest()
	defer cleanup()
	mock.presets = nil

	_, err := executeRoot(t, "build")

	assert.EqualError(t, err, "no presets configured")
}

func TestBuildCmd_RootResolverFails(t *testing.T) {
	mock, cleanup := setupCLITest()
	defer cleanup()
	SetConfig(Config{
		BundleService: mock,
		ResolveRoot:   func() (string, error) { return "", errors.New("no cwd") },
	})

	_, err := executeRoot(t, "build", "en")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no cwd")
	assert.Empty(t, mock.built)
}

func TestBuildCmd_MissingRootResolver(t *testing.T) {
	mock, cleanup := setupCLITest()
	defer cleanup()
	SetConfig(Config{BundleService: mock})

	_, err := executeRoot(t, "build", "en")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolver not configured")
}
