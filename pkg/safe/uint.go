// Package safe provides overflow checked numeric helpers.
package safe

import (
	"fmt"
	"math"
	"math/bits"
)

// Uint16 converts signed or unsigned integers to uint16 with range validation.
func Uint16[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint16, error) {
	switch value := any(v).(type) {
	case int:
		if value < 0 || value > math.MaxUint16 {
			return 0, fmt.Errorf("value %d out of uint16 range", v)
		}
	case int32:
		if value < 0 || value > math.MaxUint16 {
			return 0, fmt.Errorf("value %d out of uint16 range", v)
		}
	case int64:
		if value < 0 || value > math.MaxUint16 {
			return 0, fmt.Errorf("value %d out of uint16 range", v)
		}
	case uint:
		if value > math.MaxUint16 {
			return 0, fmt.Errorf("value %d out of uint16 range", v)
		}
	case uint32:
		if value > math.MaxUint16 {
			return 0, fmt.Errorf("value %d out of uint16 range", v)
		}
	case uint64:
		if value > math.MaxUint16 {
			return 0, fmt.Errorf("value %d out of uint16 range", v)
		}
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
	return uint16(v), nil
}

// Uint64 converts signed or unsigned integers to uint64 while guarding against negatives.
func Uint64[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint64, error) {
	switch value := any(v).(type) {
	case int:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
		return uint64(value), nil
	case int32:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
		return uint64(value), nil
	case int64:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
		return uint64(value), nil
	case uint:
		return uint64(value), nil
	case uint32:
		return uint64(value), nil
	case uint64:
		return value, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

// Add returns a+b, or an error when the sum overflows uint64.
func Add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("sum of %d and %d overflows uint64", a, b)
	}
	return sum, nil
}

// SaturatingAdd returns a+b clamped to math.MaxUint64.
func SaturatingAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// Sum adds values with overflow checking.
func Sum(values ...uint64) (uint64, error) {
	var total uint64
	for _, v := range values {
		next, err := Add(total, v)
		if err != nil {
			return 0, err
		}
		total = next
	}
	return total, nil
}
