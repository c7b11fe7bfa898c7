package command

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/diegoclair/birthday-bot/internal/domain"
)

// Options are the typed values bound for an interaction: int, bool or a user id string.
type Options map[string]any

func (o Options) Int(name string) (int, bool) {
	v, ok := o[name].(int)
	return v, ok
}

// IntPtr returns nil when the option was not given.
func (o Options) IntPtr(name string) *int {
	v, ok := o.Int(name)
	if !ok {
		return nil
	}
	return &v
}

func (o Options) Bool(name string) (bool, bool) {
	v, ok := o[name].(bool)
	return v, ok
}

func (o Options) User(name string) (string, bool) {
	v, ok := o[name].(string)
	return v, ok && v != ""
}

var userRefPattern = regexp.MustCompile(`^<@([UW][A-Z0-9]+)(?:\|[^>]*)?>$`)

// ParseUserRef accepts a Slack mention such as <@U123> or <@U123|bob>, or a bare user id.
func ParseUserRef(token string) (string, bool) {
	if m := userRefPattern.FindStringSubmatch(token); m != nil {
		return m[1], true
	}
	if len(token) > 1 && (token[0] == 'U' || token[0] == 'W') && isUpperAlnum(token[1:]) {
		return token, true
	}
	return "", false
}

func isUpperAlnum(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// Tokenize splits command text on whitespace, keeping double-quoted parts together.
func Tokenize(text string) []string {
	var (
		tokens  []string
		current strings.Builder
		quoted  bool
		started bool
	)

	for _, r := range text {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case unicode.IsSpace(r) && !quoted:
			if started {
				tokens = append(tokens, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if started {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// Bind resolves the subcommand and typed options of in against decl.
func Bind(decl Declaration, in *Interaction) error {
	args := in.Args
	opts := decl.Options

	if len(decl.Subcommands) > 0 {
		if len(args) == 0 {
			return errMissingSubcommand
		}
		sc, ok := decl.Subcommand(strings.ToLower(args[0]))
		if !ok {
			return errUnknownSubcommand
		}
		in.Subcommand = sc.Name
		opts = sc.Options
		args = args[1:]
	}

	values, err := bindOptions(opts, args)
	if err != nil {
		return err
	}
	in.Options = values

	return nil
}

func bindOptions(opts []Option, args []string) (Options, error) {
	values := Options{}
	byName := make(map[string]Option, len(opts))
	for _, o := range opts {
		byName[o.Name] = o
	}

	var positional []string
	for _, arg := range args {
		if key, raw, ok := strings.Cut(arg, ":"); ok && !strings.HasPrefix(arg, "<") {
			o, known := byName[strings.ToLower(key)]
			if !known {
				return nil, domain.Validation("Unknown option `%s`.", key)
			}
			v, err := convert(o, raw)
			if err != nil {
				return nil, err
			}
			values[o.Name] = v
			continue
		}
		positional = append(positional, arg)
	}

	for _, arg := range positional {
		if id, ok := ParseUserRef(arg); ok {
			o, found := nextFree(opts, values, func(o Option) bool { return o.Type == OptionUser })
			if found {
				values[o.Name] = id
				continue
			}
			if strings.HasPrefix(arg, "<@") {
				return nil, domain.Validation("Unexpected user mention %s.", arg)
			}
		}

		o, found := nextFree(opts, values, func(o Option) bool { return o.Type != OptionUser })
		if !found {
			return nil, domain.Validation("Unexpected argument `%s`.", arg)
		}
		v, err := convert(o, arg)
		if err != nil {
			return nil, err
		}
		values[o.Name] = v
	}

	for _, o := range opts {
		if _, ok := values[o.Name]; o.Required && !ok {
			return nil, domain.Validation("Missing required option `%s`.", o.Name)
		}
	}

	return values, nil
}

func nextFree(opts []Option, values Options, match func(Option) bool) (Option, bool) {
	for _, o := range opts {
		if _, taken := values[o.Name]; !taken && match(o) {
			return o, true
		}
	}
	return Option{}, false
}

func convert(o Option, raw string) (any, error) {
	switch o.Type {
	case OptionInteger:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, domain.Validation("Option `%s` must be a whole number, got `%s`.", o.Name, raw)
		}
		return v, nil
	case OptionBoolean:
		switch strings.ToLower(raw) {
		case "true", "yes", "y", "1", "on":
			return true, nil
		case "false", "no", "n", "0", "off":
			return false, nil
		}
		return nil, domain.Validation("Option `%s` must be true or false, got `%s`.", o.Name, raw)
	case OptionUser:
		id, ok := ParseUserRef(raw)
		if !ok {
			return nil, domain.Validation("Option `%s` must mention a user, got `%s`.", o.Name, raw)
		}
		return id, nil
	default:
		return raw, nil
	}
}
