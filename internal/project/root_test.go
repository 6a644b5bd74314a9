package project

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/wizzomafizzo/gcovaudit/internal/constants"
	"github.com/wizzomafizzo/gcovaudit/internal/testutil"
)

func TestFindProjectMarkerFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		marker   string
		start    string
		want     string
		wantFind bool
	}{
		{name: "cmake project", marker: "/proj/CMakeLists.txt", start: "/proj/build/test/gcov", want: "/proj", wantFind: true},
		{name: "git checkout", marker: "/proj/.git/HEAD", start: "/proj/src", want: "/proj", wantFind: true},
		{name: "start dir is root", marker: "/proj/meson.build", start: "/proj", want: "/proj", wantFind: true},
		{name: "no marker", marker: "/proj/README", start: "/proj/src", want: "", wantFind: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			testutil.WriteFile(t, fs, tt.marker, "")
			testutil.WriteFile(t, fs, filepath.Join(tt.start, ".keep"), "")

			got, found := FindProjectMarkerFrom(fs, tt.start)
			assert.Equal(t, tt.wantFind, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindRoot_FallbackToStartDir(t *testing.T) {
	t.Setenv(constants.ProjectDirEnv, "")

	fs := afero.NewMemMapFs()
	testutil.WriteFile(t, fs, "/work/.keep", "")

	assert.Equal(t, "/work", FindRoot(fs, "/work"))
}

func TestFindRoot_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(constants.ProjectDirEnv, dir)

	fs := afero.NewOsFs()
	assert.Equal(t, dir, FindRoot(fs, "/somewhere/else"))
}

func TestFindRoot_EnvOverrideMissingDir(t *testing.T) {
	t.Setenv(constants.ProjectDirEnv, "/does/not/exist")

	fs := afero.NewMemMapFs()
	testutil.WriteFile(t, fs, "/proj/go.mod", "")

	assert.Equal(t, "/proj", FindRoot(fs, "/proj/internal"))
}
