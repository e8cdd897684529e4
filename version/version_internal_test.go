package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevision(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		info *debug.BuildInfo
		want string
		ok   bool
	}{
		"no build info": {
			want: "unknown",
		},
		"no vcs settings": {
			info: &debug.BuildInfo{},
			ok:   true,
			want: "unknown",
		},
		"clean": {
			info: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.modified", Value: "false"},
			}},
			ok:   true,
			want: "abc123",
		},
		"dirty": {
			info: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.modified", Value: "true"},
				{Key: "vcs.revision", Value: "abc123"},
			}},
			ok:   true,
			want: "abc123-dirty",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := revision(func() (*debug.BuildInfo, bool) { return tc.info, tc.ok })
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInfoString(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		info Info
		want string
	}{
		"full": {
			info: Info{
				Version: "1.2.0", Revision: "abc123", BuildDate: "2026-01-02",
				GoVersion: "go1.25.0", Platform: "linux/amd64",
			},
			want: "1.2.0 (revision abc123, built 2026-01-02, go1.25.0 linux/amd64)",
		},
		"no build date": {
			info: Info{Version: "dev", Revision: "unknown", GoVersion: "go1.25.0", Platform: "linux/arm64"},
			want: "dev (revision unknown, go1.25.0 linux/arm64)",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.info.String())
		})
	}
}

func TestGetDefaultsVersion(t *testing.T) {
	t.Parallel()

	info := Get()
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Revision)
	assert.Contains(t, info.Platform, "/")
}
