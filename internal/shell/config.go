package shell

import (
	"fmt"

	"github.com/alecthomas/kong"
)

// Config is the command line of mathshell. Every option can also be set by
// an environment variable or by a JSON file named with --config.
type Config struct {
	Exprs []string `arg:"" optional:"" help:"Expressions to evaluate instead of reading input."`

	In      string `short:"i" env:"MATHSHELL_IN" help:"Input file, one expression per line (default stdin)."`
	Fmt     string `default:"%g" env:"MATHSHELL_FMT" help:"Result formatting verb."`
	Echo    bool   `env:"MATHSHELL_ECHO" help:"Print scanned tokens before each result."`
	Prompt  string `default:"mathshell > " env:"MATHSHELL_PROMPT" help:"Prompt for interactive sessions."`
	History string `type:"path" env:"MATHSHELL_HISTORY" help:"History file for interactive sessions."`

	LogLevel string `default:"warn" enum:"debug,info,warn,error" env:"MATHSHELL_LOG_LEVEL" help:"Log level (${enum})."`
	LogFile  string `type:"path" env:"MATHSHELL_LOG_FILE" help:"Also write JSON logs to this file."`

	Config kong.ConfigFlag `help:"JSON configuration file."`
}

const description = `
Evaluate arithmetic expressions. Each line of input is one expression using
numbers, + - * / and parentheses. Enter "exit" or end the input to quit.
`

// Options returns the kong options used to build the parser for Config.
// configPaths are JSON files consulted for defaults, in order.
func Options(configPaths ...string) []kong.Option {
	return []kong.Option{
		kong.Name("mathshell"),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, configPaths...),
	}
}

// ParseConfig parses command-line arguments into a Config.
func ParseConfig(args []string, opts ...kong.Option) (*Config, *kong.Context, error) {
	var cfg Config
	k, err := kong.New(&cfg, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("building command line parser: %w", err)
	}
	kctx, err := k.Parse(args)
	if err != nil {
		return nil, nil, err
	}
	return &cfg, kctx, nil
}
