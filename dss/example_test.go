// SPDX-License-Identifier: MIT

package dss_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eegclean/dss"
)

// ExampleDSS0 ranks channels by how much the bias amplifies them relative
// to a white baseline.
func ExampleDSS0() {
	c0 := mat.NewDiagDense(3, []float64{1, 1, 1})
	c1 := mat.NewDiagDense(3, []float64{1, 5, 2})

	res, err := dss.DSS0(c0, c1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("baseline=%.2f biased=%.2f\n", res.Pwr0, res.Pwr1)

	// Output:
	// baseline=[1.00 1.00 1.00] biased=[5.00 2.00 1.00]
}
