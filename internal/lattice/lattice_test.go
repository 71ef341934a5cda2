package lattice

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStandard(t *testing.T) {
	l, err := Standard()
	if err != nil {
		t.Fatalf("Standard() failed: %v", err)
	}
	if len(l.Levels) != len(Bits) {
		t.Fatalf("got %d levels, want %d", len(l.Levels), len(Bits))
	}

	tests := []struct {
		name   string
		shapes int
	}{
		{"Ints8", 4},
		{"IntCells8", 6},
		{"Ints16", 6},
		{"IntCells16", 10},
		{"Ints32", 8},
		{"Floats32", 2},
		{"FloatCells32", 3},
		{"Ints64", 10},
		{"Floats64", 3},
		{"IntCells64", 18},
		{"Ints128", 8},
		{"FloatCells128", 4},
		{"Ints512", 8},
		{"Floats512", 2},
	}
	for _, tt := range tests {
		f, ok := l.Family(tt.name)
		if !ok {
			t.Errorf("family %s missing", tt.name)
			continue
		}
		if len(f.Shapes) != tt.shapes {
			t.Errorf("%s has %d shapes, want %d", tt.name, len(f.Shapes), tt.shapes)
		}
	}
	if _, ok := l.Family("Floats16"); ok {
		t.Error("Floats16 should not exist: no 2-byte float element")
	}
}

func TestEveryShapeFillsItsFamily(t *testing.T) {
	l, err := Standard()
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range l.Families() {
		for _, s := range f.Shapes {
			if s.Size() != f.Bytes() {
				t.Errorf("%s: %s is %d bytes, want %d", f.Name, s.Type(""), s.Size(), f.Bytes())
			}
			if f.Cells != (s.Form != Plain) {
				t.Errorf("%s: %s has form %s", f.Name, s.Type(""), s.Form.Const())
			}
		}
	}
}

func TestCellFamilySingleHop(t *testing.T) {
	plain := PlainFamily(128, Int)
	cells, err := CellFamily(plain)
	if err != nil {
		t.Fatalf("CellFamily(Ints128) failed: %v", err)
	}
	if len(cells.Shapes) != 2*len(plain.Shapes) {
		t.Errorf("IntCells128 has %d shapes, want %d", len(cells.Shapes), 2*len(plain.Shapes))
	}

	if _, err := CellFamily(cells); !errors.Is(err, ErrNestedCell) {
		t.Errorf("CellFamily(IntCells128) = %v, want ErrNestedCell", err)
	}

	mixed := plain
	mixed.Shapes = append([]Shape{}, plain.Shapes...)
	mixed.Shapes[0].Form = CellOfArray
	if _, err := CellFamily(mixed); !errors.Is(err, ErrNestedCell) {
		t.Errorf("CellFamily(mixed) = %v, want ErrNestedCell", err)
	}
}

func TestValidateReportsEveryMismatch(t *testing.T) {
	f := PlainFamily(64, Int)
	f.Shapes = append(f.Shapes,
		Shape{Elem: Elems[0], Len: 9},
		Shape{Elem: Elems[2], Len: 3, Form: ArrayOfCells},
	)
	err := f.Validate()
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("Validate() = %v, want ErrSizeMismatch", err)
	}
	for _, want := range []string{"[9]uint8 is 9 bytes", "[3]Cell[uint16] is 6 bytes"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, missing %q", err, want)
		}
	}

	l := &Lattice{Levels: []Level{{Bits: 64, Plain: []Family{f}}}}
	if err := l.Validate(); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Lattice.Validate() = %v, want ErrSizeMismatch", err)
	}
}

func TestShapeRendering(t *testing.T) {
	u16 := Elems[2]
	tests := []struct {
		shape Shape
		term  string
		zero  string
	}{
		{Shape{Elem: u16, Len: 8}, "~[8]uint16", "[8]uint16{}"},
		{Shape{Elem: u16}, "~uint16", "uint16(0)"},
		{Shape{Elem: u16, Len: 8, Form: ArrayOfCells}, "~[8]width.Cell[uint16]", "[8]width.Cell[uint16]{}"},
		{Shape{Elem: u16, Len: 8, Form: CellOfArray}, "width.Cell[[8]uint16]", "width.Cell[[8]uint16]{}"},
		{Shape{Elem: u16, Form: CellOfScalar}, "width.Cell[uint16]", "width.Cell[uint16]{}"},
	}
	for _, tt := range tests {
		if got := tt.shape.Term("width."); got != tt.term {
			t.Errorf("Term() = %q, want %q", got, tt.term)
		}
		if got := tt.shape.Zero("width."); got != tt.zero {
			t.Errorf("Zero() = %q, want %q", got, tt.zero)
		}
	}
}

func TestNeonNames(t *testing.T) {
	u8, u16, f64 := Elems[0], Elems[2], Elems[9]
	tests := []struct {
		op        NeonOp
		name      string
		intrinsic string
		arg       string
	}{
		{NeonOp{Contiguous, false, NeonReg{u8, false, 1}}, "Vld1U8", "vld1_u8", "[8]uint8"},
		{NeonOp{Contiguous, false, NeonReg{u8, true, 2}}, "Vld1qU8X2", "vld1q_u8_x2", "[2][16]uint8"},
		{NeonOp{Contiguous, true, NeonReg{f64, false, 1}}, "Vst1F64", "vst1_f64", "float64"},
		{NeonOp{Contiguous, false, NeonReg{f64, false, 3}}, "Vld1F64X3", "vld1_f64_x3", "[3]float64"},
		{NeonOp{Interleaved, false, NeonReg{u16, true, 2}}, "Vld2qU16", "vld2q_u16", "[16]uint16"},
		{NeonOp{Interleaved, true, NeonReg{f64, true, 4}}, "Vst4qF64", "vst4q_f64", "[8]float64"},
		{NeonOp{Replicated, false, NeonReg{u16, false, 1}}, "Vld1DupU16", "vld1_dup_u16", "uint16"},
		{NeonOp{Replicated, false, NeonReg{u16, true, 2}}, "Vld2qDupU16", "vld2q_dup_u16", "[2]uint16"},
	}
	for _, tt := range tests {
		if got := tt.op.Name(); got != tt.name {
			t.Errorf("Name() = %q, want %q", got, tt.name)
		}
		if got := tt.op.Intrinsic(); got != tt.intrinsic {
			t.Errorf("%s: Intrinsic() = %q, want %q", tt.name, got, tt.intrinsic)
		}
		if got := tt.op.ArgType(); got != tt.arg {
			t.Errorf("%s: ArgType() = %q, want %q", tt.name, got, tt.arg)
		}
	}

	if got := len(NeonRegisters()); got != 80 {
		t.Errorf("%d register types, want 80", got)
	}
	ops := NeonOps()
	if got := len(ops); got != 300 {
		t.Errorf("%d wrappers, want 300", got)
	}
	seen := map[string]bool{}
	for _, op := range ops {
		if seen[op.Name()] {
			t.Errorf("duplicate wrapper %s", op.Name())
		}
		seen[op.Name()] = true
		if op.Access != Replicated && op.ArgSize() != op.Reg.Size() {
			t.Errorf("%s: argument is %d bytes, registers are %d", op.Name(), op.ArgSize(), op.Reg.Size())
		}
	}
}

// declarations maps every top-level type and function of a Go file to the
// source form of its type, so generated files can be compared without
// depending on formatter details.
func declarations(t *testing.T, name string, src []byte) map[string]string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), name, src, parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("parsing %s: %v", name, err)
	}
	out := map[string]string{}
	vars := 0
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.GenDecl:
			for _, s := range d.Specs {
				switch s := s.(type) {
				case *ast.TypeSpec:
					out["type "+s.Name.Name] = types.ExprString(s.Type)
				case *ast.ValueSpec:
					for i, v := range s.Values {
						vars++
						out["var "+s.Names[i].Name+" "+types.ExprString(v)] = ""
					}
				}
			}
		case *ast.FuncDecl:
			key := "func " + d.Name.Name
			if d.Recv != nil {
				key = "method " + types.ExprString(d.Recv.List[0].Type) + "." + d.Name.Name
			}
			out[key] = types.ExprString(d.Type)
		}
	}
	out["#vars"] = strings.Repeat("v", vars)
	return out
}

func compareGenerated(t *testing.T, path string, gen func() ([]byte, error)) {
	t.Helper()
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading checked-in file: %v", err)
	}
	got, err := gen()
	if err != nil {
		t.Fatalf("generating %s: %v", path, err)
	}
	if !strings.HasPrefix(string(got), Header) {
		t.Errorf("generated %s lacks the generated-code header", path)
	}
	if diff := cmp.Diff(declarations(t, path, want), declarations(t, path, got)); diff != "" {
		t.Errorf("%s is stale, run go generate (-checked-in +generated):\n%s", path, diff)
	}
}

func TestGeneratedFilesUpToDate(t *testing.T) {
	root := filepath.Join("..", "..")
	compareGenerated(t, filepath.Join(root, "width", "families_gen.go"), func() ([]byte, error) {
		l, err := Standard()
		if err != nil {
			return nil, err
		}
		return EmitFamilies(l, "width")
	})
	compareGenerated(t, filepath.Join(root, "neon", "registers_gen.go"), func() ([]byte, error) {
		return EmitNeonRegisters("neon")
	})
	compareGenerated(t, filepath.Join(root, "neon", "wrappers_gen.go"), func() ([]byte, error) {
		return EmitNeonWrappers("neon")
	})
}
