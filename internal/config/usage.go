package config

import (
	"flag"
	"fmt"
	"strings"
)

// flagGroups orders the flags in the help output. Aliases share a line with
// their long form.
var flagGroups = []struct {
	title string
	flags [][]string
}{
	{"Input", [][]string{{"input", "i"}, {"k"}}},
	{"Computation", [][]string{{"eval"}, {"threshold"}, {"timeout"}}},
	{"Output", [][]string{{"output", "o"}, {"json"}, {"quiet", "q"}, {"v"}, {"details", "d"}, {"no-color"}}},
	{"Observability", [][]string{{"log-level"}, {"metrics-file"}}},
	{"Other", [][]string{{"completion"}, {"version"}}},
}

// setCustomUsage replaces the default flag listing with a grouped one that
// also documents the POLYROOTS_ environment variables.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [options] [input]\n\n", fs.Name())
		fmt.Fprintln(out, "Rebuilds the monic polynomial whose roots are given as digit strings in")
		fmt.Fprintln(out, "arbitrary bases, then checks that every used root evaluates to zero.")

		for _, group := range flagGroups {
			fmt.Fprintf(out, "\n%s:\n", group.title)
			for _, names := range group.flags {
				f := fs.Lookup(names[0])
				if f == nil {
					continue
				}
				dashed := make([]string, len(names))
				for i, n := range names {
					dashed[i] = "-" + n
				}
				line := "  " + strings.Join(dashed, ", ")
				if f.DefValue != "" && f.DefValue != "false" {
					line += fmt.Sprintf(" (default %s)", f.DefValue)
				}
				fmt.Fprintf(out, "%-40s %s\n", line, f.Usage)
			}
		}

		fmt.Fprintln(out, "\nEnvironment:")
		for _, o := range envOverrides {
			fmt.Fprintf(out, "  %s%s overrides -%s\n", EnvPrefix, o.envKey, o.flags[0])
		}
		fmt.Fprintln(out, "  NO_COLOR disables colored output")
	}
}
