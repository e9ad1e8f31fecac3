package liumcli

import (
	"bufio"
	"bytes"
	"strings"
)

// Help is the parsed shape of a lium --help screen: the names of its
// positional placeholders, option flags and child subcommands.
type Help struct {
	Positionals []string
	Options     []string
	Commands    []string
}

// section labels for the help scanner
type helpSection int

const (
	sectionNone helpSection = iota
	sectionPositionals
	sectionOptions
	sectionCommands
)

// ParseHelp scans help output line by line. Header lines switch the
// scanner between sections: a leading token of "Positional" starts the
// positional-arguments section, "Options:" the flags section and
// "Commands:" the subcommands section. Sections are mutually
// exclusive; the last header seen wins. Within a section the first
// whitespace-delimited token of each line is the item name.
func ParseHelp(output []byte) *Help {
	help := &Help{
		Positionals: []string{},
		Options:     []string{},
		Commands:    []string{},
	}

	section := sectionNone

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		head := fields[0]

		switch head {
		case "Positional":
			section = sectionPositionals
			continue
		case "Options:":
			section = sectionOptions
			continue
		case "Commands:":
			section = sectionCommands
			continue
		}

		switch section {
		case sectionPositionals:
			help.Positionals = append(help.Positionals, head)
		case sectionOptions:
			// Only flag spellings count; argh prints continuation
			// lines for long descriptions that must not be offered
			if strings.HasPrefix(head, "-") {
				help.Options = append(help.Options, head)
			}
		case sectionCommands:
			help.Commands = append(help.Commands, head)
		}
	}

	return help
}
