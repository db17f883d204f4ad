package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in generated file names.
var All = map[string][]TestCase{
	"line":       lineCases,
	"polygon":    polygonCases,
	"degenerate": degenerateCases,
}
