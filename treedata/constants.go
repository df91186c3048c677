// Package treedata defines shared constants used by the generator, keeping
// defaults and error context consistent across components.
package treedata

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// MethodGenerateTree is the canonical name for the GenerateTree builder.
	MethodGenerateTree = "GenerateTree"
	// MethodEnumeratePaths is the canonical name for the path enumerator.
	MethodEnumeratePaths = "EnumeratePaths"
	// MethodNormalizeLevel is the canonical name for the level normalizer.
	MethodNormalizeLevel = "NormalizeLevel"
	// MethodVerify is the canonical name for the invariant checker.
	MethodVerify = "Verify"
)

//-----------------------------------------------------------------------------
// Config Defaults
//-----------------------------------------------------------------------------

// DefaultConstraint is the per-group sum used when a config does not set one.
const DefaultConstraint int64 = 100

// DefaultRangeMin and DefaultRangeMax bound raw plan samples by default.
const (
	DefaultRangeMin int64 = 100
	DefaultRangeMax int64 = 1000
)

// DefaultPeriods are the twelve month keys sampled when none are configured.
var DefaultPeriods = []string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

//-----------------------------------------------------------------------------
// Sampling Bounds
//-----------------------------------------------------------------------------

// ForecastSpread is the half-width of the uniform forecast perturbation:
// forecast = round(plan * (1 + v)), v ∈ [-ForecastSpread, ForecastSpread].
const ForecastSpread = 0.05

// RelMin and RelMax bound the raw rel series, inclusive.
const (
	RelMin int64 = 1
	RelMax int64 = 30
)

// MaxSafeMagnitude bounds every sampled, rescaled or summed value: float64
// represents each integer in [-2^53, 2^53] exactly, and int64 sums of such
// values cannot wrap.
const MaxSafeMagnitude int64 = 1 << 53
