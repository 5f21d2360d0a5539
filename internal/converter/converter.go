// Package converter implements the stateless unit-conversion skill.
// Conversions go through a per-family base unit; temperature is the one
// family that is not a plain scale factor.
package converter

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type request struct {
	Value    any    `json:"value"`
	FromUnit string `json:"from_unit"`
	ToUnit   string `json:"to_unit"`
}

// family converts via multiplicative factors to a base unit.
type family struct {
	factors map[string]float64
}

func (f family) convert(value float64, from, to string) (float64, bool) {
	ff, ok := f.factors[from]
	if !ok {
		return 0, false
	}
	tf, ok := f.factors[to]
	if !ok {
		return 0, false
	}
	return value * ff / tf, true
}

var families = []family{
	{factors: map[string]float64{ // length, base meter
		"meter":      1,
		"kilometer":  1000,
		"centimeter": 0.01,
		"inch":       0.0254,
		"foot":       0.3048,
	}},
	{factors: map[string]float64{ // mass, base gram
		"gram":     1,
		"kilogram": 1000,
		"ounce":    28.3495,
		"pound":    453.592,
	}},
	{factors: map[string]float64{ // volume, base liter
		"liter":      1,
		"milliliter": 0.001,
		"gallon":     3.78541,
		"quart":      0.946353,
	}},
	{factors: map[string]float64{ // time, base second
		"second": 1,
		"minute": 60,
		"hour":   3600,
	}},
	{factors: map[string]float64{ // speed, base meter per second
		"meter per second":   1,
		"kilometer per hour": 0.277778,
		"mile per hour":      0.44704,
	}},
}

var temperatureUnits = map[string]bool{
	"celsius":    true,
	"fahrenheit": true,
	"kelvin":     true,
}

func convertTemperature(value float64, from, to string) float64 {
	var celsius float64
	switch from {
	case "celsius":
		celsius = value
	case "fahrenheit":
		celsius = (value - 32) * 5 / 9
	case "kelvin":
		celsius = value - 273.15
	}
	switch to {
	case "celsius":
		return celsius
	case "fahrenheit":
		return celsius*9/5 + 32
	case "kelvin":
		return celsius + 273.15
	}
	return 0
}

// Convert converts value between two units of the same family.
func Convert(value float64, from, to string) (float64, bool) {
	if temperatureUnits[from] && temperatureUnits[to] {
		return convertTemperature(value, from, to), true
	}
	for _, f := range families {
		if result, ok := f.convert(value, from, to); ok {
			return result, true
		}
	}
	return 0, false
}

// Run executes one converter invocation and returns the output line and
// process exit code. Argument errors exit non-zero; an unsupported
// conversion is reported on stdout only.
func Run(rawArg string) (string, int) {
	var req request
	if err := json.Unmarshal([]byte(rawArg), &req); err != nil {
		return "Error: Invalid JSON argument", 1
	}

	if req.Value == nil || req.FromUnit == "" || req.ToUnit == "" {
		return "Error: value, from_unit, and to_unit are required", 1
	}

	value, ok := numericValue(req.Value)
	if !ok {
		return "Error: value must be a number", 1
	}

	result, ok := Convert(value, req.FromUnit, req.ToUnit)
	if !ok {
		return fmt.Sprintf("Error: Conversion from %s to %s not supported or units mismatched", req.FromUnit, req.ToUnit), 0
	}
	return fmt.Sprintf("%v %s is equal to %.4f %s", value, req.FromUnit, result, req.ToUnit), 0
}

// numericValue accepts JSON numbers and numeric strings alike.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
