// Command country resolves country codes, names, and flag emoji from the
// command line.
//
// Usage:
//
//	country code "Republic of Moldova"   # MD
//	country name 🇩🇪                      # Germany
//	country flag UK                      # 🇬🇧
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/countrykit/country"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "country",
	Short: "Resolve country codes, names, and flag emoji",
	Long: `country converts between ISO 3166-1 alpha-2 codes, country names
in many formats, and regional-indicator flag emoji.

Name resolution is fuzzy: official long forms ("Korea, Republic of"),
stripped titles ("Republic of Korea"), abbreviations ("UK"), and minor
spelling differences all resolve. Ambiguous bare terms ("Korea") do not.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "code <flag-or-name>",
			Short: "Print the ISO 3166-1 alpha-2 code",
			Args:  cobra.MinimumNArgs(1),
			RunE:  runCode,
		},
		&cobra.Command{
			Use:   "name <flag-or-code>",
			Short: "Print the canonical country name",
			Args:  cobra.MinimumNArgs(1),
			RunE:  runName,
		},
		&cobra.Command{
			Use:   "flag <code-or-name>",
			Short: "Print the flag emoji",
			Args:  cobra.MinimumNArgs(1),
			RunE:  runFlag,
		},
	)
}

func runCode(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")
	code, ok := country.Code(input)
	if !ok {
		return noMatch(input)
	}
	fmt.Println(code)
	return nil
}

func runName(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")
	name, ok := country.Name(input)
	if !ok {
		return noMatch(input)
	}
	fmt.Println(name)
	return nil
}

func runFlag(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")
	flag, ok := country.Flag(input)
	if !ok {
		return noMatch(input)
	}
	fmt.Println(flag)
	return nil
}

func noMatch(input string) error {
	if s := country.Suggest(input, 3); len(s) > 0 {
		return fmt.Errorf("no match for %q (did you mean %s?)", input, strings.Join(s, ", "))
	}
	return fmt.Errorf("no match for %q", input)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
