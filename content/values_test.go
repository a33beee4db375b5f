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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	s, err := ParseSize("12.5mm")
	require.NoError(t, err)
	assert.Equal(t, Size{Value: 12.5, Unit: UnitMillimeter}, s)

	s, err = ParseSize(" -3pt ")
	require.NoError(t, err)
	assert.Equal(t, Size{Value: -3, Unit: UnitPoint}, s)

	for _, raw := range []string{"", "mm", "12", "12 mm", "12px", "1,5cm"} {
		_, err := ParseSize(raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}

func TestSizeConversions(t *testing.T) {
	assert.InDelta(t, 25.4, Size{Value: 1, Unit: UnitInch}.ToMillimeters(), 1e-9)
	assert.InDelta(t, 10, Size{Value: 1, Unit: UnitCentimeter}.ToMillimeters(), 1e-9)
	assert.InDelta(t, 72, Size{Value: 1, Unit: UnitInch}.ToPoints(), 1e-9)
	// zero value behaves as millimeters
	assert.InDelta(t, 5, Size{Value: 5}.ToMillimeters(), 1e-9)
}

func TestSizeStringRoundTrip(t *testing.T) {
	s := Points(7.25)
	parsed, err := ParseSize(s.String())
	require.NoError(t, err)
	assert.Equal(t, s, parsed)

	assert.Equal(t, "0mm", Size{}.String())
}

func TestColorValidate(t *testing.T) {
	assert.NoError(t, Color("").Validate())
	assert.NoError(t, Color("#0aF9b2").Validate())
	assert.Error(t, Color("#fff").Validate())
	assert.Error(t, Color("red").Validate())
	assert.Error(t, Color("#12345g").Validate())
}
