// Package snippet renders a pattern variant as ready-to-paste code for the
// languages people usually copy validation regexes into.
//
// Each language gets the variant source escaped for that language's string
// literal rules and a short usage example that performs a full-string test:
//
//	code, err := snippet.Render(snippet.Python, v)
//
// Go output uses the standard regexp package unless the source contains
// lookaround, in which case it uses github.com/dlclark/regexp2.
package snippet
