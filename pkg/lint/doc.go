// Package lint provides the style analysis engine for Python source files.
//
// # Architecture
//
// Analysis of one file runs in two independent stages over the same text:
//
//  1. Line scanning (ScanLines): every line rule is evaluated on every raw line
//  2. Tree scanning (ScanTree): one depth-first walk of the parsed syntax tree,
//     dispatching each node to the tree rules registered for its kind
//
// Merge combines both streams into a single report ordered by line, then code.
// The Analyzer drives the pipeline for one file or many.
//
// # Rule Registration
//
// Rules are registered via init() functions when their package is imported:
//
//	import _ "github.com/leapstack-labs/pystyle/pkg/lint/rules"
//
// A rule is either a line rule (CheckLine set) or a tree rule (CheckTree set
// together with the node kinds it inspects). The catalogue is fixed; there is
// no per-rule enable or disable switch.
//
// # Rule Groups
//
//   - layout (S001-S007): line length, indentation, semicolons, comments, blank lines
//   - naming (S008-S011): class, function, argument and variable names
//   - design (S012): mutable default argument values
//
// # Using the Registry
//
//	rules := lint.GetAll()
//	rule, ok := lint.GetByID(lint.CodeLineTooLong)
//	naming := lint.GetByGroup("naming")
//
// # Analyzing Files
//
//	analyzer := lint.NewAnalyzer(lint.Config{Logger: logger})
//	violations, err := analyzer.AnalyzeFile("app/models.py")
//	for _, v := range violations {
//		fmt.Println(v)
//	}
package lint
