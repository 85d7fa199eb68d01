package bound

import "errors"

// ErrInvalidRational wraps a failure of the external rational string
// parser (math/big.Rat.SetString). The algebra itself is total; this is
// the one boundary where malformed caller input can fail.
var ErrInvalidRational = errors.New("bound: invalid rational literal")
