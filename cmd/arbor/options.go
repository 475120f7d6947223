package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eaugeas/arbor/config"
	"github.com/eaugeas/arbor/logs"
	"github.com/eaugeas/arbor/script"
)

// treeOptions select the tree to build and the operations
// applied to it
type treeOptions struct {
	Kind   string
	Insert []int
	Remove []int
	Script string
	Record string
	Verify bool
}

func (o *treeOptions) Bind(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.String("kind", script.KindAVL, "kind of tree to build, bst or avl")
	flags.String("insert", "", "comma separated values inserted into the tree")
	flags.String("remove", "", "comma separated values removed from the tree after the inserts")
	flags.String("script", "", "path to a yaml script applied after the inserts and removes")
	flags.String("record", "", "path where the applied steps are written as a yaml script")
	flags.Bool("verify", false, "validate the tree after every step")
	return nil
}

func (o *treeOptions) Configure(v *viper.Viper) error {
	var err error

	o.Kind = strings.ToLower(v.GetString("kind"))
	o.Script = v.GetString("script")
	o.Record = v.GetString("record")
	o.Verify = v.GetBool("verify")

	if o.Insert, err = parseValues(v.Get("insert")); err != nil {
		return errors.Wrap(err, "invalid values to insert")
	}

	if o.Remove, err = parseValues(v.Get("remove")); err != nil {
		return errors.Wrap(err, "invalid values to remove")
	}

	return nil
}

// steps returns the operations given by flags followed by
// the steps of the script, if any
func (o *treeOptions) steps() ([]script.Step, error) {
	var steps []script.Step

	if len(o.Insert) > 0 || len(o.Remove) > 0 {
		steps = append(steps, script.Step{Insert: o.Insert, Remove: o.Remove})
	}

	if len(o.Script) > 0 {
		loaded, err := script.Load(o.Script)
		if err != nil {
			return nil, err
		}
		steps = append(steps, loaded...)
	}

	return steps, nil
}

// parseValues accepts comma separated values as given in
// flags and environment variables, or a list as given in
// configuration files
func parseValues(raw interface{}) ([]int, error) {
	var fields []string

	switch raw := raw.(type) {
	case nil:
		return nil, nil
	case string:
		for _, field := range strings.Split(raw, ",") {
			if field = strings.TrimSpace(field); len(field) > 0 {
				fields = append(fields, field)
			}
		}
	case []interface{}:
		for _, field := range raw {
			fields = append(fields, fmt.Sprint(field))
		}
	case []int:
		return raw, nil
	default:
		return nil, errors.Errorf("unexpected type %T", raw)
	}

	values := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "value %q is not an integer", field)
		}
		values = append(values, v)
	}

	return values, nil
}

type logOptions struct {
	Level  logrus.Level
	Format string
}

func (o *logOptions) Bind(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.String("log-level", "warn", "minimum level of the log entries written to stderr")
	flags.String("log-format", logs.FormatText, "format of the log entries, text or json")
	return nil
}

func (o *logOptions) Configure(v *viper.Viper) error {
	level, err := logs.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return err
	}

	o.Level = level
	o.Format = v.GetString("log-format")
	return nil
}

// options of the arbor command
type options struct {
	tree treeOptions
	log  logOptions
}

func (o *options) Use() string       { return "arbor" }
func (o *options) EnvPrefix() string { return "arbor" }

func (o *options) Binders() []config.Binder {
	return []config.Binder{&o.tree, &o.log}
}
