package checker

import "fmt"

func Example() {
	c := New([]string{"cat", "dog", "fox", "hen"})

	fmt.Println(c.IsInDictionary("fox"))
	fmt.Println(c.NearestWords("elk"))
	fmt.Println(c.NearestWords("zebra"))

	c.AddWord("elk")
	fmt.Println(c.NearestWords("elk"))

	// Output:
	// true
	// [cat dog fox hen]
	// [fox hen]
	// []
}
