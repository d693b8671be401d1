package simd

import (
	"os"
	"testing"
)

func TestParseISA(t *testing.T) {
	tests := []struct {
		in   string
		want ISA
		ok   bool
	}{
		{"generic", Generic, true},
		{" AVX2 ", AVX2, true},
		{"avx512", AVX512, true},
		{"neon", NEON, true},
		{"Sve2", SVE2, true},
		{"mmx", Generic, false},
		{"", Generic, false},
	}

	for _, tc := range tests {
		got, ok := ParseISA(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseISA(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestISAString(t *testing.T) {
	for _, isa := range []ISA{Generic, NEON, SVE2, AVX2, AVX512} {
		got, ok := ParseISA(isa.String())
		if !ok || got != isa {
			t.Errorf("round trip of %v failed: got %v, ok=%v", isa, got, ok)
		}
	}
	if ISA(99).String() != "unknown" {
		t.Errorf("unexpected string for invalid ISA: %s", ISA(99).String())
	}
}

func TestActiveISAAvailable(t *testing.T) {
	if !DetectedFeatures().Supports(ActiveISA()) {
		t.Fatalf("active ISA %v is not available on this CPU", ActiveISA())
	}
	if ActiveISA().Lanes() < 1 {
		t.Fatalf("lanes must be positive, got %d", ActiveISA().Lanes())
	}
}

func TestFeaturesBest(t *testing.T) {
	tests := []struct {
		f    Features
		want ISA
	}{
		{Features{}, Generic},
		{Features{ASIMD: true}, NEON},
		{Features{AVX2: true}, AVX2},
		{Features{AVX2: true, AVX512F: true}, AVX2},
		{Features{AVX2: true, AVX512F: true, AVX512BW: true}, AVX512},
	}
	for _, tc := range tests {
		if got := tc.f.best(); got != tc.want {
			t.Errorf("%+v.best() = %v, want %v", tc.f, got, tc.want)
		}
	}
}

func TestEnvOverrideGeneric(t *testing.T) {
	old, had := os.LookupEnv(EnvOverride)
	if err := os.Setenv(EnvOverride, "generic"); err != nil {
		t.Fatal(err)
	}
	initCapabilities()
	defer func() {
		if had {
			_ = os.Setenv(EnvOverride, old)
		} else {
			_ = os.Unsetenv(EnvOverride)
		}
		initCapabilities()
	}()

	if ActiveISA() != Generic {
		t.Fatalf("expected generic ISA, got %v", ActiveISA())
	}
	if !IsOverridden() {
		t.Fatal("expected override flag to be set")
	}
	if unrolled {
		t.Fatal("generic override must bind the scalar kernels")
	}
	if got := CountLess([]float32{1, 2, 3}, 2.5); got != 2 {
		t.Fatalf("CountLess = %d, want 2", got)
	}
}
