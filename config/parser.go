package config

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config describes the options of an application
type Config interface {
	// Use is the name of the application, as shown in its usage
	Use() string

	// EnvPrefix is prepended to the name of every option to get
	// the environment variable that sets it
	EnvPrefix() string

	// Binders are the groups of options of the application
	Binders() []Binder
}

// Parser reads the options of an application from the command
// line, the environment and an optional configuration file, in
// that order of precedence
type Parser struct {
	Config Config

	file *ConfigFile

	cmd *cobra.Command
	v   *viper.Viper
}

// Parse parses args, which must not include the program name,
// and configures every binder of the application
func (p *Parser) Parse(args []string) error {
	if p.cmd.PersistentFlags().Parsed() {
		return ErrAlreadyParsed
	}

	if err := p.cmd.PersistentFlags().Parse(args); err != nil {
		return ErrParseFlags{err}
	}

	// keep file first so that any parameters read from the file are used
	// as defaults for the other flags
	var binders []Binder
	binders = append(binders, p.file)
	binders = append(binders, p.Config.Binders()...)

	for _, c := range binders {
		if err := c.Configure(p.v); err != nil {
			return err
		}
	}

	return nil
}

// Args returns the arguments left after parsing the flags
func (p *Parser) Args() []string {
	return p.cmd.PersistentFlags().Args()
}

// File returns the path of the configuration file that was
// read, if any
func (p *Parser) File() string {
	return p.file.Path
}

// SetOutput sets where usage and parse errors are written
func (p *Parser) SetOutput(w io.Writer) {
	p.cmd.SetOut(w)
	p.cmd.SetErr(w)
	p.cmd.PersistentFlags().SetOutput(w)
}

// Usage writes the usage of the application to its output
func (p *Parser) Usage() error {
	return p.cmd.Usage()
}

// Generate creates a parser for config. The name of the
// application is used when config does not provide one
func Generate(app string, config Config) (*Parser, error) {
	use := config.Use()
	if len(use) == 0 {
		use = app
	}

	prefix := config.EnvPrefix()
	if len(prefix) == 0 {
		prefix = app
	}

	v := viper.New()
	// all environment variables start with prefix `prefix` and are set
	// by replacing `.` and `-` to _.
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{Use: use}
	file := ConfigFile{}
	var binders []Binder
	binders = append(binders, &file)
	binders = append(binders, config.Binders()...)

	for _, c := range binders {
		if err := c.Bind(v, cmd); err != nil {
			return nil, errors.Wrap(err, "failed to bind flags")
		}
	}

	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}

	return &Parser{file: &file, Config: config, cmd: cmd, v: v}, nil
}
