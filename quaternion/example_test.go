// SPDX-License-Identifier: MIT
package quaternion_test

import (
	"errors"
	"fmt"

	"github.com/lafras/quaternions/quaternion"
)

// ExampleQuaternion_Mul shows that the Hamilton product does not commute.
func ExampleQuaternion_Mul() {
	i := quaternion.MustNew(0, 1, 0, 0)
	j := quaternion.MustNew(0, 0, 1, 0)

	fmt.Println(i.Mul(j))
	fmt.Println(j.Mul(i))
	// Output:
	// +0.00+0.00i+0.00j+1.00k
	// +0.00+0.00i+0.00j-1.00k
}

// ExampleQuaternion_String rounds each component half-even to two places.
func ExampleQuaternion_String() {
	q := quaternion.MustNew("0.5", "0.25", "-0.125", 1)

	fmt.Println(q)
	// Output:
	// +0.50+0.25i-0.12j+1.00k
}

// ExampleExp demonstrates the exp/log round trip under Equal.
func ExampleExp() {
	q := quaternion.MustNew("0.5", "0.25", "-0.125", 1)

	e, err := quaternion.Exp(q)
	if err != nil {
		fmt.Println(err)
		return
	}
	back, err := quaternion.Log(e)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(back.Equal(q))
	// Output:
	// true
}

// ExampleQuaternion_Compare shows that quaternions are unordered.
func ExampleQuaternion_Compare() {
	p := quaternion.MustNew(1, 0, 0, 0)
	q := quaternion.MustNew(2, 0, 0, 0)

	_, err := p.Compare(q)
	fmt.Println(errors.Is(err, quaternion.ErrOrderingUnsupported))
	// Output:
	// true
}

// ExampleNewContext builds a context with a wider display.
func ExampleNewContext() {
	ctx, err := quaternion.NewContext(quaternion.WithPrecision(40), quaternion.WithDisplayDigits(4))
	if err != nil {
		fmt.Println(err)
		return
	}

	q := ctx.MustNew(1, 1, 1, 1)
	u, err := q.Normalise()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(u)
	// Output:
	// +0.5000+0.5000i+0.5000j+0.5000k
}
