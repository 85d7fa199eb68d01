package zone

import "fmt"

// String renders z in the diagnostic form
// "b:[bmin,bmax] e:[emin,emax] d:[dmin,dmax]" using each bound's own
// bracket notation.
func (z Zone[T]) String() string {
	return fmt.Sprintf("b:%s,%s e:%s,%s d:%s,%s",
		z.bmin.String(), z.bmax.String(),
		z.emin.String(), z.emax.String(),
		z.dmin.String(), z.dmax.String())
}
