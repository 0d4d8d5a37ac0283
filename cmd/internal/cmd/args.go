// Package cmd provides helpers shared by the command line tools.
package cmd

// SimplifyArgs expands multichar options, e.g. -abc becomes -a -b -c.
// Everything after -- is left untouched.
func SimplifyArgs(args []string) []string {
	simplified := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(simplified, args[i:]...)
		}
		if len(arg) > 2 && arg[0] == '-' && arg[1] != '-' {
			for _, c := range arg[1:] {
				simplified = append(simplified, "-"+string(c))
			}
		} else {
			simplified = append(simplified, arg)
		}
	}
	return simplified
}

// NextArg retrieves the next argument, advancing *i past it. Returns "" if
// there is none.
func NextArg(i *int, args []string) string {
	*i++
	if *i >= len(args) {
		return ""
	}
	return args[*i]
}
