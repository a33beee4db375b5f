// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package content

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SizeUnit is a measurement unit for lengths in composed output.
type SizeUnit string

const (
	UnitMillimeter SizeUnit = "mm"
	UnitCentimeter SizeUnit = "cm"
	UnitInch       SizeUnit = "in"
	UnitPoint      SizeUnit = "pt"
)

// millimeters per unit
var unitFactors = map[SizeUnit]float64{
	UnitMillimeter: 1,
	UnitCentimeter: 10,
	UnitInch:       25.4,
	UnitPoint:      25.4 / 72,
}

// Size is an immutable measurement value with a unit. The zero value is 0mm.
type Size struct {
	Value float64
	Unit  SizeUnit
}

// Millimeters returns a Size expressed in millimeters.
func Millimeters(v float64) Size { return Size{Value: v, Unit: UnitMillimeter} }

// Points returns a Size expressed in typographic points.
func Points(v float64) Size { return Size{Value: v, Unit: UnitPoint} }

// ToMillimeters converts the size to millimeters.
func (s Size) ToMillimeters() float64 {
	f, ok := unitFactors[s.Unit]
	if !ok {
		f = 1
	}
	return s.Value * f
}

// ToPoints converts the size to typographic points.
func (s Size) ToPoints() float64 {
	return s.ToMillimeters() / unitFactors[UnitPoint]
}

func (s Size) String() string {
	unit := s.Unit
	if unit == "" {
		unit = UnitMillimeter
	}
	return strconv.FormatFloat(s.Value, 'f', -1, 64) + string(unit)
}

var sizePattern = regexp.MustCompile(`^(-?[0-9]+(?:\.[0-9]+)?)(mm|cm|in|pt)$`)

// ParseSize parses a serialized size such as "12.5mm" or "10pt".
func ParseSize(raw string) (Size, error) {
	m := sizePattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return Size{}, fmt.Errorf("invalid size %q", raw)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Size{}, fmt.Errorf("invalid size %q: %w", raw, err)
	}
	return Size{Value: v, Unit: SizeUnit(m[2])}, nil
}

// MarshalJSON serializes the size as its canonical string form.
func (s Size) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses the canonical string form.
func (s *Size) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseSize(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Color is an RGB color in "#rrggbb" form.
type Color string

// Validate checks the color is a well-formed hex triplet.
func (c Color) Validate() error {
	if c == "" {
		return nil
	}
	if !colorPattern.MatchString(string(c)) {
		return fmt.Errorf("invalid color %q", string(c))
	}
	return nil
}
