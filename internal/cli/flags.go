package cli

import "github.com/spf13/pflag"

// semesterFlag registers the shared --semester selector. Commands that write
// into a semester resolve its value with resolveSemester.
func semesterFlag(fs *pflag.FlagSet, target *string, usage string) {
	fs.StringVar(target, "semester", "", usage)
}
