// Copyright 2025 go-unaligned Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/ajroetker/go-unaligned/internal/lattice"
)

// Target is one kind of generated file.
type Target struct {
	Name    string
	Package string // default package
	Output  string // default file name
	Emit    func(pkg string) ([]byte, error)
}

var targets = []Target{
	{Name: "families", Package: "width", Output: "families_gen.go", Emit: emitFamilies},
	{Name: "neon-registers", Package: "neon", Output: "registers_gen.go", Emit: lattice.EmitNeonRegisters},
	{Name: "neon-wrappers", Package: "neon", Output: "wrappers_gen.go", Emit: lattice.EmitNeonWrappers},
}

func targetNames() []string {
	return lo.Map(targets, func(t Target, _ int) string { return t.Name })
}

func lookupTarget(name string) (Target, bool) {
	return lo.Find(targets, func(t Target) bool { return t.Name == name })
}

func emitFamilies(pkg string) ([]byte, error) {
	l, err := lattice.Standard()
	if err != nil {
		return nil, fmt.Errorf("invalid lattice:\n%w", err)
	}
	return lattice.EmitFamilies(l, pkg)
}

// Generator renders one target and writes it out.
type Generator struct {
	Target  Target
	Package string
	Output  string
	Log     *zap.Logger
}

// Run generates the target. Nothing is written when generation fails.
func (g *Generator) Run() error {
	if g.Log == nil {
		g.Log = zap.NewNop()
	}
	if g.Package == "" {
		g.Package = g.Target.Package
	}
	if g.Output == "" {
		g.Output = g.Target.Output
	}

	g.Log.Info("generating", zap.String("target", g.Target.Name), zap.String("package", g.Package))
	src, err := g.Target.Emit(g.Package)
	if err != nil {
		return fmt.Errorf("%s: %w", g.Target.Name, err)
	}

	if g.Output == "-" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(g.Output, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", g.Output, err)
	}
	g.Log.Info("wrote", zap.String("file", g.Output), zap.Int("bytes", len(src)))
	return nil
}
