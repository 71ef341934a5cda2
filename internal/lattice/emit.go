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

package lattice

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/tools/imports"
)

// Header starts every generated file.
const Header = "// Code generated by widthgen. DO NOT EDIT."

func byteCount(n int) string {
	if n == 1 {
		return "1 byte"
	}
	return fmt.Sprintf("%d bytes", n)
}

// EmitFamilies renders the constraint families, their size assertions and
// the registry table of l as a Go file of package pkg.
func EmitFamilies(l *Lattice, pkg string) ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n\n", Header)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import (\n\t\"reflect\"\n\t\"unsafe\"\n)\n")

	for _, lv := range l.Levels {
		for _, f := range lv.Plain {
			writeFamily(&buf, f, "")
		}
		writeComposite(&buf, lv.PlainAll)
		for i, f := range lv.Cells {
			writeFamily(&buf, f, lv.Plain[i].Name)
		}
		writeComposite(&buf, lv.CellsAll)
	}

	for _, f := range l.Families() {
		fmt.Fprintf(&buf, "\n// Size assertions for %s.\n", f.Name)
		fmt.Fprintf(&buf, "var (\n")
		for _, s := range f.Shapes {
			fmt.Fprintf(&buf, "\t_ [0]struct{} = [unsafe.Sizeof(%s) - %d]struct{}{}\n", s.Zero(""), f.Bytes())
		}
		fmt.Fprintf(&buf, ")\n")
	}

	fmt.Fprintf(&buf, "\nvar entries = []Entry{\n")
	for _, f := range l.Families() {
		kind := "KindInt"
		if f.Kind == Float {
			kind = "KindFloat"
		}
		for _, s := range f.Shapes {
			fmt.Fprintf(&buf, "\t{W%d, reflect.TypeFor[%s](), %s, %s},\n", f.Bits, s.Type(""), kind, s.Form.Const())
		}
	}
	fmt.Fprintf(&buf, "}\n")

	return format("families_gen.go", buf.Bytes())
}

func writeFamily(buf *bytes.Buffer, f Family, plain string) {
	switch {
	case f.Cells:
		fmt.Fprintf(buf, "\n// %s is satisfied by one cell layer around a member of %s.\n", f.Name, plain)
	case f.Kind == Float:
		fmt.Fprintf(buf, "\n// %s is satisfied by floating-point scalars and arrays of exactly %s.\n", f.Name, byteCount(f.Bytes()))
	default:
		fmt.Fprintf(buf, "\n// %s is satisfied by integer scalars and arrays of exactly %s.\n", f.Name, byteCount(f.Bytes()))
	}
	terms := make([]string, len(f.Shapes))
	for i, s := range f.Shapes {
		terms[i] = s.Term("")
	}
	fmt.Fprintf(buf, "type %s interface {\n\t%s\n}\n", f.Name, strings.Join(terms, " | "))
}

func writeComposite(buf *bytes.Buffer, c Composite) {
	what := "plain-data"
	if c.Cells {
		what = "cell-wrapped"
	}
	fmt.Fprintf(buf, "\n// %s is satisfied by every %s type of exactly %s.\n", c.Name, what, byteCount(c.Bits/8))
	fmt.Fprintf(buf, "type %s interface {\n\t%s\n}\n", c.Name, strings.Join(c.Parts, " | "))
}

// format runs generated source through goimports, which also gofmts it.
func format(name string, src []byte) ([]byte, error) {
	out, err := imports.Process(name, src, &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true})
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", name, err)
	}
	return out, nil
}
