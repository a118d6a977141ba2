// Package risk derives drought, flood and heat-stress scores from weather
// samples and runs what-if scenarios against them.
//
// Every function in the package is pure: inputs are taken by value, slices
// are never retained, and the same inputs always produce the same output.
// All percentages are rounded to one decimal place and clamped to [0, 100].
package risk
