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

// Command widthgen generates the width-capability families and the NEON
// wrappers from the tables in internal/lattice.
//
// Usage:
//
//	widthgen -target families -pkg width -output families_gen.go
//	widthgen -target neon-registers -pkg neon -output registers_gen.go
//	widthgen -target neon-wrappers -pkg neon -output wrappers_gen.go
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/widthgen -target families -pkg width -output families_gen.go
//
// Every family is validated before anything is written: a member whose size
// differs from its family width aborts generation and is listed on stderr.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

var (
	target  = flag.String("target", "families", "What to generate ("+strings.Join(targetNames(), ",")+")")
	pkgName = flag.String("pkg", "", "Output package name (default: derived from the target)")
	output  = flag.String("output", "", "Output file (default: derived from the target, - for stdout)")
	verbose = flag.Bool("v", false, "Log progress to stderr")
)

func main() {
	flag.Parse()

	log := newLogger(*verbose)
	defer log.Sync()

	t, ok := lookupTarget(*target)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown target %q, want one of %s\n\n", *target, strings.Join(targetNames(), ","))
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		Target:  t,
		Package: *pkgName,
		Output:  *output,
		Log:     log,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if gen.Output != "-" {
		fmt.Printf("Successfully generated %s\n", gen.Output)
	}
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
