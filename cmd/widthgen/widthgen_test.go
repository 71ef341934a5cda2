package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/ajroetker/go-unaligned/internal/lattice"
)

func TestLookupTarget(t *testing.T) {
	for _, name := range []string{"families", "neon-registers", "neon-wrappers"} {
		if _, ok := lookupTarget(name); !ok {
			t.Errorf("lookupTarget(%q) not found", name)
		}
	}
	if _, ok := lookupTarget("avx2"); ok {
		t.Error("lookupTarget(avx2) should fail")
	}
}

func TestGeneratorWritesFiles(t *testing.T) {
	dir := t.TempDir()
	for _, tgt := range targets {
		t.Run(tgt.Name, func(t *testing.T) {
			out := filepath.Join(dir, tgt.Output)
			g := &Generator{Target: tgt, Output: out, Log: zaptest.NewLogger(t)}
			if err := g.Run(); err != nil {
				t.Fatalf("Run() failed: %v", err)
			}
			if g.Package != tgt.Package {
				t.Errorf("Package = %q, want default %q", g.Package, tgt.Package)
			}
			src, err := os.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(src, []byte(lattice.Header)) {
				t.Errorf("%s lacks the generated-code header", tgt.Output)
			}
			if !bytes.Contains(src, []byte("package "+tgt.Package+"\n")) {
				t.Errorf("%s does not declare package %s", tgt.Output, tgt.Package)
			}
		})
	}
}

func TestGeneratorPackageOverride(t *testing.T) {
	tgt, _ := lookupTarget("families")
	out := filepath.Join(t.TempDir(), "f.go")
	g := &Generator{Target: tgt, Package: "lanes", Output: out}
	if err := g.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	src, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(src, []byte("package lanes\n")) {
		t.Error("package override not applied")
	}
}

func TestGeneratorWriteError(t *testing.T) {
	tgt, _ := lookupTarget("neon-registers")
	g := &Generator{Target: tgt, Output: filepath.Join(t.TempDir(), "missing", "r.go")}
	if err := g.Run(); err == nil {
		t.Error("Run() into a missing directory should fail")
	}
}
