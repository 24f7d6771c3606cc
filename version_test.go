package genkou

import (
	"strings"
	"testing"
)

func TestVersion_IsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: "1.2.3-rc.1", want: true},
		{version: "1.0.0+20261017", want: true},
		{version: "v0.1.0", want: false},
		{version: "0.1", want: false},
		{version: "0.01.0", want: false},
	}

	for _, tc := range cases {
		if got := IsSemver(tc.version); got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}

func TestBuildInfo(t *testing.T) {
	got := BuildInfo("genkou-server")
	if want := "genkou-server " + VersionTag() + " ("; !strings.HasPrefix(got, want) {
		t.Fatalf("build info: got %q, want prefix %q", got, want)
	}
}
