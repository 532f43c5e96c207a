// Package plan — shared constants used by the strategy constructors,
// ensuring consistent method naming and validation bounds.

package plan

//-----------------------------------------------------------------------------
// Strategy Method Name Constants
//   used to tag Plans and to prefix errors with the constructor name.
//-----------------------------------------------------------------------------

const (
	// MethodBootstrap is the canonical name for the Bootstrap strategy.
	MethodBootstrap = "Bootstrap"
	// MethodVFold is the canonical name for the VFold strategy.
	MethodVFold = "VFold"
	// MethodMonteCarlo is the canonical name for the MonteCarlo strategy.
	MethodMonteCarlo = "MonteCarlo"
	// MethodRolling is the canonical name for the RollingOrigin strategy.
	MethodRolling = "RollingOrigin"
)

//-----------------------------------------------------------------------------
// Validation bounds (named, no magic numbers).
//-----------------------------------------------------------------------------

const (
	// minTimes is the smallest admissible number of bootstrap/Monte-Carlo draws.
	minTimes = 1
	// minFolds is the smallest admissible v for V-fold cross-validation.
	minFolds = 2
	// minRepeats is the smallest admissible repeat count.
	minRepeats = 1
	// minWindow is the smallest admissible rolling initial/assess/step value.
	minWindow = 1
)
