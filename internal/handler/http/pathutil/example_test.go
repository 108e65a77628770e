package pathutil_test

import (
	"fmt"

	"tutorial-api/internal/handler/http/pathutil"
)

// ExampleNormalizePath shows every tutorial ID collapsing to one metrics label.
func ExampleNormalizePath() {
	fmt.Println(pathutil.NormalizePath("/api/tutorials/1"))
	fmt.Println(pathutil.NormalizePath("/api/tutorials/42"))
	fmt.Println(pathutil.NormalizePath("/api/tutorials/published"))
	fmt.Println(pathutil.NormalizePath("/health"))

	// Output:
	// /api/tutorials/:id
	// /api/tutorials/:id
	// /api/tutorials/published
	// /health
}

func ExampleExtractID() {
	id, err := pathutil.ExtractID("/api/tutorials/123", "/api/tutorials/")
	fmt.Println(id, err)

	_, err = pathutil.ExtractID("/api/tutorials/abc", "/api/tutorials/")
	fmt.Println(err)

	// Output:
	// 123 <nil>
	// invalid id
}
