package ads

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBanner(t *testing.T) {
	b, err := LoadBanner(writeFile(t, "b.png", pngHeader))
	require.NoError(t, err)
	assert.Equal(t, "image/png", b.Type)
	assert.True(t, isDataURL(b.Base64))

	b, err = LoadBanner(writeFile(t, "notes.txt", []byte("plain text banner")))
	require.NoError(t, err)
	assert.NotContains(t, b.Type, "image/")
}

func TestLoadBanner_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(MaxBannerSize+1))
	require.NoError(t, f.Close())

	_, err = LoadBanner(path)
	assert.Error(t, err)
}

func TestIsDataURL(t *testing.T) {
	assert.True(t, isDataURL("data:image/png;base64,AAA"))
	assert.False(t, isDataURL("https://cdn.io/b.png"))
	assert.False(t, isDataURL(""))
}
