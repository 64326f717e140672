package urlenc

import (
	"math"
	"math/big"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatFloat(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input float64
		bits  int
		want  string
	}{
		"zero":            {input: 0, bits: 64, want: "0"},
		"negative zero":   {input: math.Copysign(0, -1), bits: 64, want: "-0"},
		"integral":        {input: 42, bits: 64, want: "42"},
		"fraction":        {input: 0.1, bits: 64, want: "0.1"},
		"float32":         {input: float64(float32(3.14)), bits: 32, want: "3.14"},
		"below threshold": {input: 1e20, bits: 64, want: "100000000000000000000"},
		"large":           {input: 1.5e300, bits: 64, want: "1.5e300"},
		"small":           {input: 1.5e-7, bits: 64, want: "1.5e-7"},
		"negative small":  {input: -2e-10, bits: 64, want: "-2e-10"},
		"max float32":     {input: math.MaxFloat32, bits: 32, want: "3.4028235e38"},
		"nan":             {input: math.NaN(), bits: 64, want: "NaN"},
		"inf":             {input: math.Inf(1), bits: 64, want: "inf"},
		"negative inf":    {input: math.Inf(-1), bits: 32, want: "-inf"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(formatFloat(tt.input, tt.bits), tt.want); diff != "" {
				t.Errorf("mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func TestFormatBig(t *testing.T) {
	t.Parallel()

	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	if diff := cmp.Diff(formatBig(max), "340282366920938463463374607431768211455"); diff != "" {
		t.Errorf("mismatch (-got +want):\n%s", diff)
	}

	min := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	if diff := cmp.Diff(formatBig(min), "-170141183460469231731687303715884105728"); diff != "" {
		t.Errorf("mismatch (-got +want):\n%s", diff)
	}
}

func FuzzFormatInt(f *testing.F) {
	for _, seed := range []int64{0, 1, -1, math.MaxInt8, math.MinInt16, math.MaxInt32, math.MaxInt64, math.MinInt64} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, n int64) {
		got, err := strconv.ParseInt(formatInt(n), 10, 64)
		if err != nil || got != n {
			t.Errorf("formatInt(%d) did not round-trip: %d, %v", n, got, err)
		}
	})
}

func FuzzFormatUint(f *testing.F) {
	for _, seed := range []uint64{0, 1, math.MaxUint8, math.MaxUint16, math.MaxUint32, math.MaxUint64} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, n uint64) {
		got, err := strconv.ParseUint(formatUint(n), 10, 64)
		if err != nil || got != n {
			t.Errorf("formatUint(%d) did not round-trip: %d, %v", n, got, err)
		}
	})
}

func FuzzFormatFloat64(f *testing.F) {
	for _, seed := range []float64{0, 0.1, -2.5, 1e21, 1e-7, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, x float64) {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return
		}
		s := formatFloat(x, 64)
		got, err := strconv.ParseFloat(s, 64)
		if err != nil || math.Float64bits(got) != math.Float64bits(x) {
			t.Errorf("formatFloat(%v) = %q did not round-trip: %v, %v", x, s, got, err)
		}
	})
}

func FuzzFormatFloat32(f *testing.F) {
	for _, seed := range []float32{0, 0.1, -2.5, 1e21, 1e-7, math.MaxFloat32, math.SmallestNonzeroFloat32} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, x float32) {
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return
		}
		s := formatFloat(float64(x), 32)
		got, err := strconv.ParseFloat(s, 32)
		if err != nil || math.Float32bits(float32(got)) != math.Float32bits(x) {
			t.Errorf("formatFloat(%v) = %q did not round-trip: %v, %v", x, s, got, err)
		}
	})
}

func FuzzFormatBig(f *testing.F) {
	f.Add(uint64(math.MaxUint64), uint64(math.MaxUint64), false)
	f.Add(uint64(1<<63), uint64(0), true)
	f.Fuzz(func(t *testing.T, hi, lo uint64, neg bool) {
		n := new(big.Int).Lsh(new(big.Int).SetUint64(hi), 64)
		n.Or(n, new(big.Int).SetUint64(lo))
		if neg {
			n.Neg(n)
		}
		got, ok := new(big.Int).SetString(formatBig(n), 10)
		if !ok || got.Cmp(n) != 0 {
			t.Errorf("formatBig(%v) did not round-trip: %v", n, got)
		}
	})
}
