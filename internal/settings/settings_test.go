package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domonda/go-tableview"
)

func TestLoadFromPath(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantErr    bool
		wantPolicy tableview.FormatPolicy
		wantRecent []string
	}{
		{
			name: "valid settings",
			content: `decimal_places: 3
missing_marker: NaN
recent_files:
  - /data/a.csv
  - /data/b.xlsx`,
			wantPolicy: tableview.FormatPolicy{DecimalPlaces: 3, MissingMarker: "NaN"},
			wantRecent: []string{"/data/a.csv", "/data/b.xlsx"},
		},
		{
			name:       "zero decimal places",
			content:    "decimal_places: 0",
			wantPolicy: tableview.FormatPolicy{DecimalPlaces: 0},
		},
		{
			name:       "empty settings",
			content:    "",
			wantPolicy: tableview.DefaultFormatPolicy(),
		},
		{
			name:    "invalid yaml",
			content: "invalid: [yaml",
			wantErr: true,
		},
		{
			name:    "negative decimal places",
			content: "decimal_places: -1",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")
			if tt.content != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			}

			s, err := LoadFromPath(path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			policy, err := s.FormatPolicy()
			require.NoError(t, err)
			assert.Equal(t, tt.wantPolicy, policy)
			assert.Equal(t, tt.wantRecent, s.RecentFiles)
		})
	}
}

func TestSaveToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	places := 1
	s := &Settings{DecimalPlaces: &places, MissingMarker: "-", Color: "never"}
	s.AddRecentFile("/data/a.csv")
	require.NoError(t, s.SaveToPath(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestLoad_DefaultPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	orig := SetPathFunc(func() (string, error) { return path, nil })
	t.Cleanup(func() { SetPathFunc(orig) })

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, s)

	s.MissingMarker = "?"
	require.NoError(t, s.Save())

	s, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "?", s.MissingMarker)
}

func TestSettings_AddRecentFile(t *testing.T) {
	var s Settings
	for _, f := range []string{"/a", "/b", "/c", "/d", "/e", "/f"} {
		s.AddRecentFile(f)
	}
	assert.Equal(t, []string{"/f", "/e", "/d", "/c", "/b"}, s.RecentFiles)

	s.AddRecentFile("/c")
	assert.Equal(t, []string{"/c", "/f", "/e", "/d", "/b"}, s.RecentFiles)
}

func TestSettings_RecentFile(t *testing.T) {
	s := Settings{RecentFiles: []string{"/b", "/a"}}

	path, err := s.RecentFile(1)
	require.NoError(t, err)
	assert.Equal(t, "/b", path)

	path, err = s.RecentFile(2)
	require.NoError(t, err)
	assert.Equal(t, "/a", path)

	for _, n := range []int{-1, 0, 3} {
		_, err = s.RecentFile(n)
		assert.ErrorIs(t, err, ErrNoRecentFile, "n = %d", n)
	}
}
