package dispatch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevelWidth(t *testing.T) {
	tests := []struct {
		level Level
		name  string
		width int
	}{
		{LevelScalar, "scalar", 16},
		{LevelSSE2, "sse2", 16},
		{LevelAVX, "avx", 32},
		{LevelAVX2, "avx2", 32},
		{LevelAVX512, "avx512", 64},
		{LevelNEON, "neon", 16},
		{LevelSIMD128, "simd128", 16},
		{Level(99), "unknown", 16},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.name {
			t.Errorf("Level(%d).String() = %q, want %q", int(tt.level), got, tt.name)
		}
		if got := tt.level.Width(); got != tt.width {
			t.Errorf("%s.Width() = %d, want %d", tt.name, got, tt.width)
		}
	}
}

func TestFeatureString(t *testing.T) {
	if got := SSE41.String(); got != "sse4.1" {
		t.Errorf("SSE41.String() = %q", got)
	}
	if got := Feature(-1).String(); got != "unknown" {
		t.Errorf("Feature(-1).String() = %q", got)
	}
	if Has(numFeatures) {
		t.Error("Has(numFeatures) = true")
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("UNALIGNED_NO_SIMD", tt.val)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxWidthEnv(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	tests := []struct {
		val   string
		want  int
		warns int
	}{
		{"", 0, 0},
		{"16", 16, 0},
		{" 32 ", 32, 0},
		{"64", 64, 0},
		{"24", 0, 1},
		{"wide", 0, 1},
	}
	for _, tt := range tests {
		logs.TakeAll()
		t.Setenv("UNALIGNED_MAX_WIDTH", tt.val)
		if got := MaxWidthEnv(); got != tt.want {
			t.Errorf("MaxWidthEnv(%q) = %d, want %d", tt.val, got, tt.want)
		}
		if got := logs.Len(); got != tt.warns {
			t.Errorf("MaxWidthEnv(%q) logged %d warnings, want %d", tt.val, got, tt.warns)
		}
	}
}

func TestRedetectNoSimd(t *testing.T) {
	// Cleanups run last-in first-out, so the environment is restored
	// before the second Redetect.
	t.Cleanup(Redetect)
	t.Setenv("UNALIGNED_NO_SIMD", "1")
	Redetect()

	if got := CurrentLevel(); got != LevelScalar {
		t.Errorf("CurrentLevel() = %v, want scalar", got)
	}
	if got := CurrentWidth(); got != 16 {
		t.Errorf("CurrentWidth() = %d, want 16", got)
	}
	if got := Features(); len(got) != 0 {
		t.Errorf("Features() = %v, want none", got)
	}
}

func TestRedetectMaxWidth(t *testing.T) {
	t.Cleanup(Redetect)
	t.Setenv("UNALIGNED_MAX_WIDTH", "16")
	Redetect()

	if got := CurrentWidth(); got != 16 {
		t.Errorf("CurrentWidth() = %d, want 16", got)
	}
	if Has(AVX) || Has(AVX2) || Has(AVX512F) {
		t.Errorf("wide features still reported: %v", Features())
	}
}

func TestCapWidth(t *testing.T) {
	full := func() state {
		var s state
		for f := SSE; f <= AVX512VBMI2; f++ {
			s.features[f] = true
		}
		s.set(LevelAVX512)
		return s
	}

	tests := []struct {
		limit    int
		level    Level
		features []string
	}{
		{64, LevelAVX512, []string{"sse", "sse2", "sse4.1", "avx", "avx2", "avx512f", "avx512bw", "avx512vl", "avx512vbmi2"}},
		{32, LevelAVX2, []string{"sse", "sse2", "sse4.1", "avx", "avx2"}},
		{16, LevelSSE2, []string{"sse", "sse2", "sse4.1"}},
	}
	for _, tt := range tests {
		s := full()
		s.capWidth(tt.limit)
		if s.level != tt.level || s.width != tt.limit {
			t.Errorf("capWidth(%d): level %v width %d, want %v width %d",
				tt.limit, s.level, s.width, tt.level, tt.limit)
		}
		var got []string
		for f := Feature(0); f < numFeatures; f++ {
			if s.features[f] {
				got = append(got, f.String())
			}
		}
		if diff := cmp.Diff(tt.features, got); diff != "" {
			t.Errorf("capWidth(%d) features (-want +got):\n%s", tt.limit, diff)
		}
	}
}

func TestCurrentConsistent(t *testing.T) {
	if got, want := CurrentWidth(), CurrentLevel().Width(); got > want {
		t.Errorf("CurrentWidth() = %d exceeds %v width %d", got, CurrentLevel(), want)
	}
	if CurrentName() == "" {
		t.Error("CurrentName() is empty")
	}
}
