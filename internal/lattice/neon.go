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
)

// NeonReg is one NEON register type: a single 64-bit (D) or 128-bit (Q)
// register, or a tuple of Count such registers.
type NeonReg struct {
	Elem  Elem
	Q     bool
	Count int // 1 for a single register
}

// Bytes returns the width of one register of the tuple.
func (r NeonReg) Bytes() int {
	if r.Q {
		return 16
	}
	return 8
}

// Lanes returns the number of elements in one register.
func (r NeonReg) Lanes() int {
	return r.Bytes() / r.Elem.Size
}

// Single returns the register type that makes up r.
func (r NeonReg) Single() NeonReg {
	r.Count = 1
	return r
}

// Name returns the Go type name: Uint8x16, Float64x1x3.
func (r NeonReg) Name() string {
	name := fmt.Sprintf("%sx%d", r.Elem.Stem, r.Lanes())
	if r.Count > 1 {
		name += fmt.Sprintf("x%d", r.Count)
	}
	return name
}

// Size returns the total byte size of r.
func (r NeonReg) Size() int {
	return r.Count * r.Bytes()
}

// NeonRegisters lists every register type in emission order: per element,
// the D and Q singles followed by their 2, 3 and 4 register tuples.
func NeonRegisters() []NeonReg {
	var out []NeonReg
	for _, e := range Elems {
		for _, q := range []bool{false, true} {
			for n := 1; n <= 4; n++ {
				out = append(out, NeonReg{Elem: e, Q: q, Count: n})
			}
		}
	}
	return out
}

// NeonAccess is the memory pattern of a NEON load or store.
type NeonAccess int

const (
	// Contiguous moves whole registers: vld1, vld1_xN.
	Contiguous NeonAccess = iota
	// Interleaved moves structures of N elements spread over N registers.
	Interleaved
	// Replicated loads one structure and broadcasts it: vldN_dup.
	Replicated
)

// NeonOp is one generated wrapper.
type NeonOp struct {
	Access NeonAccess
	Store  bool
	Reg    NeonReg
}

// Name returns the Go function name: Vld1qU8X2, Vld2qU16, Vld3DupF32.
func (op NeonOp) Name() string {
	verb := "Vld"
	if op.Store {
		verb = "Vst"
	}
	q := ""
	if op.Reg.Q {
		q = "q"
	}
	short := op.Reg.Elem.Short
	n := op.Reg.Count
	switch op.Access {
	case Interleaved:
		return fmt.Sprintf("%s%d%s%s", verb, n, q, short)
	case Replicated:
		return fmt.Sprintf("%s%d%sDup%s", verb, n, q, short)
	}
	if n > 1 {
		return fmt.Sprintf("%s1%s%sX%d", verb, q, short, n)
	}
	return fmt.Sprintf("%s1%s%s", verb, q, short)
}

// Intrinsic returns the ACLE name of the instruction the wrapper mirrors.
func (op NeonOp) Intrinsic() string {
	verb := "vld"
	if op.Store {
		verb = "vst"
	}
	q := ""
	if op.Reg.Q {
		q = "q"
	}
	short := strings.ToLower(op.Reg.Elem.Short)
	n := op.Reg.Count
	switch op.Access {
	case Interleaved:
		return fmt.Sprintf("%s%d%s_%s", verb, n, q, short)
	case Replicated:
		return fmt.Sprintf("%s%d%s_dup_%s", verb, n, q, short)
	}
	if n > 1 {
		return fmt.Sprintf("%s1%s_%s_x%d", verb, q, short, n)
	}
	return fmt.Sprintf("%s1%s_%s", verb, q, short)
}

// ArgType returns the Go type the wrapper's pointer argument points to.
func (op NeonOp) ArgType() string {
	e := op.Reg.Elem.Name
	lanes := op.Reg.Lanes()
	n := op.Reg.Count
	switch op.Access {
	case Interleaved:
		return fmt.Sprintf("[%d]%s", n*lanes, e)
	case Replicated:
		if n == 1 {
			return e
		}
		return fmt.Sprintf("[%d]%s", n, e)
	}
	one := e
	if lanes > 1 {
		one = fmt.Sprintf("[%d]%s", lanes, e)
	}
	if n == 1 {
		return one
	}
	return fmt.Sprintf("[%d]%s", n, one)
}

// ArgSize returns the byte size of ArgType.
func (op NeonOp) ArgSize() int {
	if op.Access == Replicated {
		return op.Reg.Count * op.Reg.Elem.Size
	}
	return op.Reg.Size()
}

// NeonOps lists every wrapper in emission order: contiguous loads, then
// contiguous stores, interleaved loads and stores, and replicating loads.
func NeonOps() []NeonOp {
	var out []NeonOp
	for _, store := range []bool{false, true} {
		for _, q := range []bool{false, true} {
			for n := 1; n <= 4; n++ {
				for _, e := range Elems {
					out = append(out, NeonOp{Access: Contiguous, Store: store, Reg: NeonReg{Elem: e, Q: q, Count: n}})
				}
			}
		}
	}
	for _, store := range []bool{false, true} {
		for n := 2; n <= 4; n++ {
			for _, e := range Elems {
				out = append(out, NeonOp{Access: Interleaved, Store: store, Reg: NeonReg{Elem: e, Q: true, Count: n}})
			}
		}
	}
	for _, q := range []bool{false, true} {
		for n := 1; n <= 4; n++ {
			for _, e := range Elems {
				out = append(out, NeonOp{Access: Replicated, Reg: NeonReg{Elem: e, Q: q, Count: n}})
			}
		}
	}
	return out
}

func regWord(n int) string {
	if n == 1 {
		return "one"
	}
	return fmt.Sprint(n)
}

func values(n int, elem string) string {
	if n == 1 {
		return "one " + elem + " value"
	}
	return fmt.Sprintf("%d %s values", n, elem)
}

func (op NeonOp) doc() string {
	r := op.Reg
	bits := r.Bytes() * 8
	e := r.Elem.Name
	regs := "register"
	if r.Count > 1 {
		regs = "registers"
	}
	var what string
	switch {
	case op.Access == Interleaved && op.Store:
		what = fmt.Sprintf("interleaves %d %d-bit registers into %d structures of %d %s values", r.Count, bits, r.Lanes(), r.Count, e)
	case op.Access == Interleaved:
		what = fmt.Sprintf("loads %d structures of %d %s values, de-interleaving them across %d %d-bit registers", r.Lanes(), r.Count, e, r.Count, bits)
	case op.Access == Replicated && r.Count == 1:
		what = fmt.Sprintf("loads one %s value into every lane of a %d-bit register", e, bits)
	case op.Access == Replicated:
		what = fmt.Sprintf("loads %d %s values, broadcasting each to every lane of its own %d-bit register", r.Count, e, bits)
	case op.Store:
		what = fmt.Sprintf("stores %s %d-bit %s as %s", regWord(r.Count), bits, regs, values(r.Count*r.Lanes(), e))
	default:
		what = fmt.Sprintf("loads %s into %s %d-bit %s", values(r.Count*r.Lanes(), e), regWord(r.Count), bits, regs)
	}
	return fmt.Sprintf("// %s %s (%s).", op.Name(), what, op.Intrinsic())
}

// EmitNeonRegisters renders the NEON register types, their size assertions
// and lane views as a Go file of package pkg.
func EmitNeonRegisters(pkg string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n\n", Header)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import \"unsafe\"\n")

	regs := NeonRegisters()
	for _, r := range regs {
		if r.Count == 1 {
			fmt.Fprintf(&buf, "\n// %s is a %d-bit register of %d %s lanes.\n", r.Name(), r.Bytes()*8, r.Lanes(), r.Elem.Name)
			fmt.Fprintf(&buf, "type %s [%d]byte\n", r.Name(), r.Bytes())
			continue
		}
		fmt.Fprintf(&buf, "\n// %s is a tuple of %d %s registers.\n", r.Name(), r.Count, r.Single().Name())
		fmt.Fprintf(&buf, "type %s [%d]%s\n", r.Name(), r.Count, r.Single().Name())
	}

	fmt.Fprintf(&buf, "\nvar (\n")
	for _, r := range regs {
		fmt.Fprintf(&buf, "\t_ [0]struct{} = [unsafe.Sizeof(%s{}) - %d]struct{}{}\n", r.Name(), r.Size())
	}
	fmt.Fprintf(&buf, ")\n")

	for _, r := range regs {
		if r.Count != 1 {
			continue
		}
		fmt.Fprintf(&buf, "\n// Lanes returns the %d %s lanes of r.\n", r.Lanes(), r.Elem.Name)
		fmt.Fprintf(&buf, "func (r %s) Lanes() (l [%d]%s) {\n", r.Name(), r.Lanes(), r.Elem.Name)
		fmt.Fprintf(&buf, "\tcopy(bytesOf(&l), r[:])\n\treturn l\n}\n")
	}

	return format("registers_gen.go", buf.Bytes())
}

// EmitNeonWrappers renders every NEON load and store wrapper, plus the size
// assertions tying each argument type to its register type, as a Go file of
// package pkg.
func EmitNeonWrappers(pkg string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n\n", Header)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import \"unsafe\"\n")

	ops := NeonOps()
	for _, op := range ops {
		r := op.Reg
		fmt.Fprintf(&buf, "\n%s\n", op.doc())
		switch {
		case op.Store && op.Access == Interleaved:
			fmt.Fprintf(&buf, "func %s(p *%s, a %s) {\n", op.Name(), op.ArgType(), r.Name())
			fmt.Fprintf(&buf, "\tinterleave(bytesOf(p), bytesOf(&a), %d, %d)\n}\n", r.Count, r.Elem.Size)
		case op.Store:
			fmt.Fprintf(&buf, "func %s(p *%s, a %s) {\n", op.Name(), op.ArgType(), r.Name())
			fmt.Fprintf(&buf, "\t*(*%s)(unsafe.Pointer(p)) = a\n}\n", r.Name())
		case op.Access == Interleaved:
			fmt.Fprintf(&buf, "func %s(p *%s) (r %s) {\n", op.Name(), op.ArgType(), r.Name())
			fmt.Fprintf(&buf, "\tdeinterleave(bytesOf(&r), bytesOf(p), %d, %d)\n\treturn r\n}\n", r.Count, r.Elem.Size)
		case op.Access == Replicated:
			fmt.Fprintf(&buf, "func %s(p *%s) (r %s) {\n", op.Name(), op.ArgType(), r.Name())
			fmt.Fprintf(&buf, "\treplicate(bytesOf(&r), bytesOf(p), %d, %d)\n\treturn r\n}\n", r.Count, r.Elem.Size)
		default:
			fmt.Fprintf(&buf, "func %s(p *%s) %s {\n", op.Name(), op.ArgType(), r.Name())
			fmt.Fprintf(&buf, "\treturn *(*%s)(unsafe.Pointer(p))\n}\n", r.Name())
		}
	}

	fmt.Fprintf(&buf, "\n// Every contiguous and interleaved argument covers its registers exactly.\n")
	fmt.Fprintf(&buf, "var (\n")
	for _, op := range ops {
		if op.Store || op.Access == Replicated {
			continue
		}
		fmt.Fprintf(&buf, "\t_ [0]struct{} = [unsafe.Sizeof(%s) - unsafe.Sizeof(%s{})]struct{}{}\n", zeroOf(op.ArgType()), op.Reg.Name())
	}
	fmt.Fprintf(&buf, ")\n")

	return format("wrappers_gen.go", buf.Bytes())
}

// zeroOf renders a zero value expression for a Go type expression.
func zeroOf(typ string) string {
	if strings.HasPrefix(typ, "[") {
		return typ + "{}"
	}
	return typ + "(0)"
}
