package conv

import (
	"github.com/x448/float16"

	"github.com/trippwill/decimal/internal/components"
)

// FromFloat16_32 converts an IEEE binary16 value to a Triple32. Supplements
// the float32/float64 conversion contract with the narrowest binary format,
// widening through float32 since float16 has no decimal re-expression of
// its own.
func FromFloat16_32(h float16.Float16, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	return FromFloat32_32(h.Float32(), mode, precision)
}

// FromFloat16_64 converts an IEEE binary16 value to a Triple64.
func FromFloat16_64(h float16.Float16, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	return FromFloat32_64(h.Float32(), mode, precision)
}

// FromFloat16_128 converts an IEEE binary16 value to a Triple128.
func FromFloat16_128(h float16.Float16, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	return FromFloat32_128(h.Float32(), mode, precision)
}

// ToFloat16_32 returns the nearest IEEE binary16 value to t.
func ToFloat16_32(t components.Triple32) float16.Float16 {
	return float16.Fromfloat32(ToFloat32_32(t))
}

// ToFloat16_64 returns the nearest IEEE binary16 value to t.
func ToFloat16_64(t components.Triple64) float16.Float16 {
	return float16.Fromfloat32(ToFloat32_64(t))
}

// ToFloat16_128 returns the nearest IEEE binary16 value to t.
func ToFloat16_128(t components.Triple128) float16.Float16 {
	return float16.Fromfloat32(ToFloat32_128(t))
}
