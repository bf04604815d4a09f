package gosemver_test

import (
	"fmt"

	gosemver "github.com/albertocavalcante/go-semver"
)

func Example() {
	v, err := gosemver.Parse("1.5.3-rc.4+modified")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v.Major(), v.Minor(), v.Patch())
	fmt.Println(v.PrereleaseString())
	fmt.Println(v.BuildString())
	// Output:
	// 1 5 3
	// rc.4
	// modified
}

func ExampleVersion_Compare() {
	a := gosemver.MustParse("1.0.0-alpha.1")
	b := gosemver.MustParse("1.0.0")
	c := gosemver.MustParse("1.0.0+nightly")

	fmt.Println(a.Compare(b))
	fmt.Println(b.Compare(a))
	fmt.Println(b.Compare(c)) // build metadata carries no precedence
	// Output:
	// -1
	// 1
	// 0
}

func ExampleBuilder() {
	release, err := gosemver.NewBuilderFrom(gosemver.MustParse("1.2.3-beta.1")).
		BumpMinor().
		ClearPrerelease().
		Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(release)
	// Output:
	// 1.3.0
}

func ExampleSort() {
	versions := []gosemver.Version{
		gosemver.MustParse("1.0.0"),
		gosemver.MustParse("1.0.0-rc.1"),
		gosemver.MustParse("0.9.12"),
		gosemver.MustParse("1.0.0-alpha"),
	}
	gosemver.Sort(versions)
	for _, v := range versions {
		fmt.Println(v)
	}
	// Output:
	// 0.9.12
	// 1.0.0-alpha
	// 1.0.0-rc.1
	// 1.0.0
}
