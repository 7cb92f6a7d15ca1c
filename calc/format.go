//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package calc

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Placeholder is shown instead of a result that isn't a finite number.
const Placeholder = "Oops!"

// FormatNumber renders a result for the main display. Long values are
// rounded to 4 decimal places.
func FormatNumber(n float64) string {
	return formatWithin(n, 4)
}

// FormatNumberShort renders the pending operand in the equation preview.
// Long values are rounded to 2 decimal places.
func FormatNumberShort(n float64) string {
	return formatWithin(n, 2)
}

func formatWithin(n float64, places int) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Placeholder
	}
	s := numberString(n)
	if len(s) > MaxDisplayLength {
		return fixed(n, places)
	}
	return s
}

// numberString renders n the way a number is printed by default in the
// calculator: shortest round-trip digits, plain decimal between 1e-6 and
// 1e21, exponent form outside that range.
func numberString(n float64) string {
	if n == 0 {
		return "0"
	}
	abs := math.Abs(n)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(n, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		exp = strings.TrimLeft(exp[1:], "0")
		if exp == "" {
			exp = "0"
		}
		return mantissa + "e" + sign + exp
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// fixed rounds n to the given number of decimal places. An exact tie
// rounds away from zero.
func fixed(n float64, places int) string {
	if math.Abs(n) >= 1e21 {
		return numberString(n)
	}
	scaled := new(big.Float).SetPrec(256).SetFloat64(n)
	scaled.Mul(scaled, new(big.Float).SetPrec(256).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)))
	whole, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(256).Sub(scaled, new(big.Float).SetPrec(256).SetInt(whole))
	if frac.Cmp(big.NewFloat(0.5)) != 0 && frac.Cmp(big.NewFloat(-0.5)) != 0 {
		return strconv.FormatFloat(n, 'f', places, 64)
	}
	if frac.Sign() > 0 {
		whole.Add(whole, big.NewInt(1))
	} else {
		whole.Sub(whole, big.NewInt(1))
	}
	return scaledIntString(whole, places, n < 0)
}

// scaledIntString prints whole / 10^places with exactly places decimals.
func scaledIntString(whole *big.Int, places int, negative bool) string {
	digits := new(big.Int).Abs(whole).String()
	for len(digits) <= places {
		digits = "0" + digits
	}
	s := digits[:len(digits)-places]
	if places > 0 {
		s += "." + digits[len(digits)-places:]
	}
	if negative {
		s = "-" + s
	}
	return s
}
