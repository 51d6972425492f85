package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// Every generator reads flagRegistry, so a new flag only needs an entry there.
type FlagCompletion struct {
	Long      string   // long flag name without dashes (e.g., "input")
	Short     string   // short flag without dash (e.g., "i")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "duration")
	IsFile    bool     // true if the flag takes a file path
	IsEval    bool     // true if values come from the evaluator list
}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Help: "Show version information"},
	{Long: "input", Short: "i", Help: "Input document (file, - or URL)", IsFile: true, ValueName: "file"},
	{Short: "k", Help: "Number of roots to build from", ValueName: "number"},
	{Long: "eval", Help: "Evaluator to validate with", IsEval: true, ValueName: "evaluator"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"10s", "1m", "5m", "30m"}, ValueName: "duration"},
	{Long: "threshold", Help: "Parallel build threshold in bits", Values: []string{"0", "4096", "8192", "16384", "32768"}, ValueName: "bits"},
	{Long: "output", Short: "o", Help: "Report file path", IsFile: true, ValueName: "file"},
	{Long: "json", Help: "Print the outcome as JSON"},
	{Long: "quiet", Short: "q", Help: "Print only the coefficients"},
	{Short: "v", Help: "Display full values"},
	{Long: "details", Short: "d", Help: "Show timings and memory details"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "metrics-file", Help: "Prometheus metrics output file", IsFile: true, ValueName: "file"},
	{Long: "log-level", Help: "Log level for stderr", Values: []string{"debug", "info", "warn", "error", "off"}, ValueName: "level"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell ("bash", "zsh",
// "fish" or "powershell"). evaluators are offered as values for -eval.
func GenerateCompletion(out io.Writer, shell string, evaluators []string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(evaluators)
	case "zsh":
		script = zshCompletion(evaluators)
	case "fish":
		script = fishCompletion(evaluators)
	case "powershell", "ps":
		script = powerShellCompletion(evaluators)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
	if _, err := io.WriteString(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

// flagNames returns the dashed spellings of f, short form first.
func flagNames(f FlagCompletion) []string {
	var names []string
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	return names
}

// completionValues returns the static or evaluator-derived values of f.
func completionValues(f FlagCompletion, evaluators []string) []string {
	if f.IsEval {
		return append(append([]string{}, evaluators...), "all")
	}
	return f.Values
}

func bashCompletion(evaluators []string) string {
	var opts, cases []string
	var filePatterns []string
	for _, f := range flagRegistry {
		names := flagNames(f)
		opts = append(opts, names...)
		switch {
		case f.IsFile:
			filePatterns = append(filePatterns, names...)
		case len(completionValues(f, evaluators)) > 0:
			cases = append(cases, fmt.Sprintf("        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;",
				strings.Join(names, "|"), strings.Join(completionValues(f, evaluators), " ")))
		}
	}
	cases = append(cases, fmt.Sprintf("        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;",
		strings.Join(filePatterns, "|")))

	return fmt.Sprintf(`# Bash completion script for polyroots
# Add this to your ~/.bashrc or source it directly

_polyroots_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"

    case "${prev}" in
%s
    esac

    if [[ ${cur} == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
    COMPREPLY=( $(compgen -f -- "${cur}") )
}

complete -F _polyroots_completions polyroots
`, strings.Join(opts, " "), strings.Join(cases, "\n"))
}

func zshCompletion(evaluators []string) string {
	var args []string
	for _, f := range flagRegistry {
		valueSuffix := ""
		values := completionValues(f, evaluators)
		switch {
		case f.IsFile:
			valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
		case len(values) > 0:
			valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(values, " "))
		case f.ValueName != "":
			valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
		}
		names := flagNames(f)
		if len(names) == 2 {
			args = append(args, fmt.Sprintf("        '(%s %s)'{%s,%s}'[%s]%s'",
				names[0], names[1], names[0], names[1], f.Help, valueSuffix))
		} else {
			args = append(args, fmt.Sprintf("        '%s[%s]%s'", names[0], f.Help, valueSuffix))
		}
	}
	args = append(args, "        '*:input:_files'")

	return fmt.Sprintf(`#compdef polyroots

# Zsh completion script for polyroots
# Place this file in a directory listed in $fpath

_polyroots() {
    _arguments -s \
%s
}

_polyroots "$@"
`, strings.Join(args, " \\\n"))
}

func fishCompletion(evaluators []string) string {
	lines := []string{
		"# Fish completion script for polyroots",
		"# Add this to ~/.config/fish/completions/polyroots.fish",
		"",
	}
	for _, f := range flagRegistry {
		parts := []string{"complete -c polyroots"}
		if f.Short != "" {
			parts = append(parts, "-s "+f.Short)
		}
		if f.Long != "" {
			parts = append(parts, "-l "+f.Long)
		}
		parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))
		values := completionValues(f, evaluators)
		switch {
		case f.IsFile:
			parts = append(parts, "-rF")
		case len(values) > 0:
			parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(values, " ")))
		case f.ValueName != "":
			parts = append(parts, "-x")
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}

func powerShellCompletion(evaluators []string) string {
	var options, switches []string
	for _, f := range flagRegistry {
		for _, name := range flagNames(f) {
			options = append(options, fmt.Sprintf("        @{Name = '%s'; Description = '%s' }", name, f.Help))
		}
		values := completionValues(f, evaluators)
		if f.IsFile || len(values) == 0 {
			continue
		}
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = "'" + v + "'"
		}
		for _, name := range flagNames(f) {
			switches = append(switches, fmt.Sprintf(`        '%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, name, strings.Join(quoted, ", ")))
		}
	}

	return fmt.Sprintf(`# PowerShell completion script for polyroots
# Add this to your $PROFILE

Register-ArgumentCompleter -CommandName 'polyroots' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    switch ($prevElement) {
%s
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, strings.Join(options, "\n"), strings.Join(switches, "\n"))
}
