package ioutils

import "strings"

// fileNameReplacements maps each character that is unsafe in file names to
// its replacement. The order is fixed and every replacement text is free of
// the characters of later rules, so no rule can rewrite an earlier
// replacement.
var fileNameReplacements = []struct {
	old, new string
}{
	{":", ";"},
	{"/", "~~"},
	{"?", "(question)"},
	{"<", "(less than)"},
	{">", "(greater than)"},
	{"\\", "(backslash)"},
	{"|", "(pipe)"},
	{"*", "(asterisk)"},
	{"\"", "_"},
}

// UnsafeFileNameChars lists every character SanitizeFileName removes.
const UnsafeFileNameChars = ":/?<>\\|*\""

// SanitizeFileName maps a display title to a file-system-safe string.
//
// Each unsafe character is replaced by readable text:
//
//	:  -> ;
//	/  -> ~~
//	?  -> (question)
//	<  -> (less than)
//	>  -> (greater than)
//	\  -> (backslash)
//	|  -> (pipe)
//	*  -> (asterisk)
//	"  -> _
//
// Sanitization is one-way; there is no reverse mapping.
//
// Example:
//
//	SanitizeFileName("Who? Me: Part 1/2") // Returns "Who(question) Me; Part 1~~2"
func SanitizeFileName(name string) string {
	for _, r := range fileNameReplacements {
		name = strings.ReplaceAll(name, r.old, r.new)
	}
	return name
}
