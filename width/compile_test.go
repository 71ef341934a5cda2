package width

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// typeCheck loads one fixture under testdata/compile and returns the
// errors reported for it.
func typeCheck(t *testing.T, fixture string) []packages.Error {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports | packages.NeedDeps |
			packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir: filepath.Join("testdata", "compile", fixture),
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		t.Fatalf("loading %s: %v", fixture, err)
	}
	var errs []packages.Error
	for _, p := range pkgs {
		errs = append(errs, p.Errors...)
	}
	return errs
}

func TestCompileFixtures(t *testing.T) {
	if testing.Short() {
		t.Skip("type-checks fixtures through the go command")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not available")
	}

	tests := []struct {
		fixture string
		want    string // substring of the expected error, empty if it must compile
	}{
		{"wrongwidth", "does not satisfy"},
		{"lookalike", "does not satisfy"},
		{"nestedcell", "does not satisfy"},
		{"floatasint", "does not satisfy"},
		{"undersize", "overflows"},
		{"oversize", "cannot use"},
		{"accepted", ""},
	}
	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			errs := typeCheck(t, tt.fixture)
			if tt.want == "" {
				for _, e := range errs {
					t.Errorf("unexpected error: %v", e)
				}
				return
			}
			if len(errs) == 0 {
				t.Fatalf("fixture compiled, want error containing %q", tt.want)
			}
			for _, e := range errs {
				if strings.Contains(e.Msg, tt.want) {
					return
				}
			}
			t.Errorf("no error contains %q: %v", tt.want, errs)
		})
	}
}
