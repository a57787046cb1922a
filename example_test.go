package disjointset_test

import (
	"errors"
	"fmt"

	"github.com/TrevorS/disjointset"
)

func Example() {
	f := disjointset.New(1, 2, 3, 4)
	fmt.Println(f.NumClasses())

	_ = f.Union(1, 3)
	_ = f.Union(2, 4)
	fmt.Println(f.NumClasses())

	_ = f.Union(3, 2)
	rep, _ := f.Find(4)
	fmt.Println(f.NumClasses(), rep)
	// Output:
	// 4
	// 2
	// 1 1
}

func ExampleForest_Find_notFound() {
	f := disjointset.New("a", "b")
	_, err := f.Find("z")
	fmt.Println(errors.Is(err, disjointset.ErrNotFound))
	// Output: true
}

func ExampleNewWithConfig() {
	cfg := disjointset.DefaultConfig()
	cfg.UnknownElements = disjointset.UnknownAdd
	f, err := disjointset.NewWithConfig(cfg, "a")
	if err != nil {
		panic(err)
	}
	_ = f.Union("a", "b")
	ok, _ := f.Connected("a", "b")
	fmt.Println(f.Len(), ok)
	// Output: 2 true
}

func ExampleForest_String() {
	f := disjointset.New("x", "y", "z")
	_ = f.Union("x", "z")
	fmt.Println(f)
	// Output: Forest(x, y, z->x)
}
