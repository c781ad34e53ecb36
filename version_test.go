package textview

import "testing"

func TestVersion_IsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestVersionTag_PrefixesV(t *testing.T) {
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("version tag: got %q, want %q", got, want)
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: "1.2.3-alpha.1", want: true},
		{version: "2.0.0+build.7", want: true},
		{version: "v1.2.3", want: false},
		{version: "1.2", want: false},
		{version: "01.2.3", want: false},
	}

	for _, tc := range cases {
		got := IsSemver(tc.version)
		if got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}

func TestVersionCore(t *testing.T) {
	cases := []struct {
		version             string
		major, minor, patch int
		ok                  bool
	}{
		{version: "0.1.0", major: 0, minor: 1, patch: 0, ok: true},
		{version: "12.34.56-rc.1", major: 12, minor: 34, patch: 56, ok: true},
		{version: "1.2.3+build.7", major: 1, minor: 2, patch: 3, ok: true},
		{version: "1.2", ok: false},
	}
	for _, tc := range cases {
		major, minor, patch, ok := VersionCore(tc.version)
		if major != tc.major || minor != tc.minor || patch != tc.patch || ok != tc.ok {
			t.Fatalf("VersionCore(%q): got (%d, %d, %d, %v), want (%d, %d, %d, %v)",
				tc.version, major, minor, patch, ok, tc.major, tc.minor, tc.patch, tc.ok)
		}
	}

	if _, _, _, ok := VersionCore(Version()); !ok {
		t.Fatalf("embedded version core must parse: %q", Version())
	}
}
