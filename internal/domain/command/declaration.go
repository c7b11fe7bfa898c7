package command

import "strings"

// OptionType is the value type of a command option.
type OptionType string

const (
	OptionInteger OptionType = "integer"
	OptionBoolean OptionType = "boolean"
	OptionUser    OptionType = "user"
)

type Option struct {
	Name        string
	Description string
	Type        OptionType
	Required    bool
}

type Subcommand struct {
	Name        string
	Description string
	Aliases     []string
	Options     []Option
}

// Declaration describes a command to the chat platform and to the option binder.
// A command has either subcommands or top-level options.
type Declaration struct {
	Name        string
	Description string
	Subcommands []Subcommand
	Options     []Option
}

// Subcommand resolves name or an alias.
func (d Declaration) Subcommand(name string) (Subcommand, bool) {
	for _, sc := range d.Subcommands {
		if sc.Name == name {
			return sc, true
		}
		for _, alias := range sc.Aliases {
			if alias == name {
				return sc, true
			}
		}
	}
	return Subcommand{}, false
}

// Usage renders "/name sub <required> [optional]" for sc.
func (d Declaration) Usage(sc *Subcommand) string {
	usage := "/" + d.Name
	opts := d.Options
	if sc != nil {
		usage += " " + sc.Name
		opts = sc.Options
	}
	for _, o := range opts {
		if o.Required {
			usage += " <" + o.Name + ">"
		} else {
			usage += " [" + o.Name + "]"
		}
	}
	return usage
}

// Help lists the usage of every subcommand with its description.
func (d Declaration) Help() string {
	var b strings.Builder
	b.WriteString("*/" + d.Name + "*: " + d.Description + "\n")
	if len(d.Subcommands) == 0 {
		b.WriteString("• `" + d.Usage(nil) + "`\n")
		return b.String()
	}
	for i := range d.Subcommands {
		sc := &d.Subcommands[i]
		b.WriteString("• `" + d.Usage(sc) + "` - " + sc.Description + "\n")
	}
	return b.String()
}
