package openloop

import "errors"

// ErrContract indicates solve inputs that violate the caller contract:
// horizon mismatches or inconsistent matrix and vector dimensions. These are
// detected before any numeric work starts. Numerical degeneracy is reported
// separately, wrapping the solve package's sentinels, so the outer loop can
// tell a malformed call from an instance with no usable open-loop solution.
var ErrContract = errors.New("openloop: solve inputs violate the solver contract")
