package zoneset_test

import (
	"fmt"

	"github.com/katalvlaran/zonealgebra/bound"
	"github.com/katalvlaran/zonealgebra/zone"
	"github.com/katalvlaran/zonealgebra/zoneset"
)

func ExampleFilter() {
	outer := zone.Make[bound.Float64](
		bound.LowerClosed[bound.Float64](0), bound.UpperClosed[bound.Float64](10),
		bound.LowerClosed[bound.Float64](0), bound.UpperClosed[bound.Float64](10),
		bound.LowerClosed[bound.Float64](0), bound.UpperClosed[bound.Float64](10),
	)
	inner := zone.Make[bound.Float64](
		bound.LowerClosed[bound.Float64](1), bound.UpperClosed[bound.Float64](2),
		bound.LowerClosed[bound.Float64](3), bound.UpperClosed[bound.Float64](4),
		bound.LowerClosed[bound.Float64](2), bound.UpperClosed[bound.Float64](3),
	)

	s := zoneset.Of(inner, outer)
	fmt.Println(len(zoneset.Filter(s)))
	// Output: 1
}
