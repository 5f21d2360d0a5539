package converter

import (
	"math"
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		value    float64
		from, to string
		want     float64
	}{
		{0, "celsius", "fahrenheit", 32},
		{212, "fahrenheit", "celsius", 100},
		{0, "celsius", "kelvin", 273.15},
		{1000, "meter", "kilometer", 1},
		{1, "foot", "centimeter", 30.48},
		{2, "kilogram", "gram", 2000},
		{1, "gallon", "liter", 3.78541},
		{1, "hour", "second", 3600},
		{36, "kilometer per hour", "meter per second", 10.000008},
	}

	for i, tc := range cases {
		got, ok := Convert(tc.value, tc.from, tc.to)
		if !ok {
			t.Fatalf("case %d conversion rejected", i)
		}
		if math.Abs(got-tc.want) > 1e-6 {
			t.Fatalf("case %d %v %s -> %s: expected %v, got %v", i, tc.value, tc.from, tc.to, tc.want, got)
		}
	}
}

func TestConvertRejectsMismatchedFamilies(t *testing.T) {
	cases := [][2]string{
		{"meter", "gram"},
		{"celsius", "meter"},
		{"furlong", "meter"},
	}
	for i, tc := range cases {
		if _, ok := Convert(1, tc[0], tc[1]); ok {
			t.Fatalf("case %d expected rejection for %s -> %s", i, tc[0], tc[1])
		}
	}
}

func TestRun(t *testing.T) {
	cases := []struct {
		name     string
		arg      string
		wantLine string
		wantCode int
	}{
		{"bad json", "{", "Error: Invalid JSON argument", 1},
		{"missing fields", `{"value": 1}`, "Error: value, from_unit, and to_unit are required", 1},
		{"non-numeric value", `{"value": "abc", "from_unit": "meter", "to_unit": "foot"}`, "Error: value must be a number", 1},
		{"numeric string value", `{"value": "1000", "from_unit": "meter", "to_unit": "kilometer"}`, "1000 meter is equal to 1.0000 kilometer", 0},
		{"unsupported", `{"value": 1, "from_unit": "meter", "to_unit": "gram"}`, "Error: Conversion from meter to gram not supported or units mismatched", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			line, code := Run(tc.arg)
			if code != tc.wantCode {
				t.Fatalf("expected exit %d, got %d (%s)", tc.wantCode, code, line)
			}
			if !strings.HasPrefix(line, tc.wantLine) {
				t.Fatalf("expected %q, got %q", tc.wantLine, line)
			}
		})
	}
}
