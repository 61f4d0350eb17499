//spellchecker:words crid
package crid

//spellchecker:words strings
import "strings"

// sanitizer replaces characters that are unsafe in local names by '_' and drops brackets entirely.
var sanitizer = strings.NewReplacer(
	`\`, "_",
	"`", "_",
	"*", "_",
	" ", "_",
	">", "_",
	"#", "_",
	"+", "_",
	"-", "_",
	".", "_",
	"!", "_",
	"$", "_",
	"'", "_",

	"{", "",
	"}", "",
	"[", "",
	"]", "",
	"(", "",
	")", "",
)

// Sanitize turns a free-text label into a fragment usable within a local name.
//
// Sanitize is idempotent.
func Sanitize(label string) string {
	return sanitizer.Replace(label)
}
