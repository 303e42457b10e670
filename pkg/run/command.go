/*
   BA67 web - keyboard, charset & cloud storage for the BA67 web app
   Copyright (c) 2025, the BA67 authors

   This file is part of BA67 web.

   BA67 web is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   BA67 web is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with BA67 web. If not, see <http://www.gnu.org/licenses/>.
*/

package run

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

//
const (
	prologueHeader = ""
	epilogueHeader = `
Notes:

`
)

/*
	The package initializer sets up logging based on logrus. The following
	environment variables can be used to configure logging:

		LOG_FORMAT		set to `json` for JSON logging
		LOG_FORCE_COLORS	set to non-empty for forcing colorized log entries
		LOG_METHODS		set to non-empty for including methods in log
		LOG_LEVEL		`panic`, `fatal`, `error`, `warn`, `info`, `debug`, `trace`
*/
func init() {
	configureLogging(os.Getenv)
}

//
func configureLogging(getenv func(string) string) {

	log.SetOutput(os.Stdout)

	if strings.ToLower(getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else if getenv("LOG_FORCE_COLORS") != "" {
		log.SetFormatter(&log.TextFormatter{ForceColors: true})
	}

	log.SetReportCaller(getenv("LOG_METHODS") != "")

	if level := getenv("LOG_LEVEL"); level != "" {
		l, err := log.ParseLevel(level)
		if err != nil {
			log.Errorf("invalid log level: '%s'; valid levels are: panic, "+
				"fatal, error, warn, info, debug, trace", level)
		} else {
			log.SetLevel(l)
		}
	}
}

//
var (
	UnderTest bool
)

// DieOnError exits the running process if e is not nil. The error gets logged.
func DieOnError(e error) {
	if e != nil {
		fmt.Printf("%v\n", e)
		if UnderTest {
			panic(e.Error())
		}
		os.Exit(1)
	}
}

// Die exits the running process, while logging the given message.
func Die(msg string, params ...interface{}) {
	err := fmt.Sprintf(msg, params...)
	if UnderTest {
		panic(err)
	}
	fmt.Println(strings.TrimSuffix(err, "\n"))
	os.Exit(1)
}

//
func GetUserConfirmation(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	var res string
	fmt.Scanln(&res)
	return "y" == strings.ToLower(strings.TrimSpace(res))
}

/*
	NewCommand creates a base command instance, wrapping a new Cobra command.
	The	exec function is invoked when the command's Execute method is called.
*/
func NewCommand(use, short, long, helpPrologue, helpEpilogue string,
	exec func() error) *Command {

	ret := Command{
		cmd: &cobra.Command{
			Use:   use,
			Short: short,
			Long:  long,
			RunE: func(*cobra.Command, []string) error {
				return exec()
			},
			SilenceErrors:         true,
			SilenceUsage:          true,
			DisableFlagsInUseLine: true,
		},
		viper:        viper.New(),
		settings:     map[string]*setting{},
		helpPrologue: helpPrologue,
		helpEpilogue: helpEpilogue,
	}
	ret.helpFunc = ret.cmd.HelpFunc()
	ret.cmd.SetHelpFunc(ret.help)
	return &ret
}

/*
	Command wraps a Cobra command and a Viper instance of its own. Settings
	can come from a command line flag or an environment variable, with the
	flag taking precedence. Viper does not report a missing required setting
	in a way that mentions both, so this is done here.
*/
type Command struct {
	//
	cmd   *cobra.Command
	viper *viper.Viper
	//
	settings map[string]*setting
	//
	Args []string
	//
	helpPrologue string
	helpEpilogue string
	helpFunc     func(*cobra.Command, []string)
}

//
func (c *Command) help(cmd *cobra.Command, args []string) {
	if c.helpPrologue != "" {
		fmt.Fprintln(cmd.OutOrStdout(), prologueHeader+c.helpPrologue)
	}
	if c.helpFunc != nil {
		c.helpFunc(cmd, args)
	}
	if c.helpEpilogue != "" {
		fmt.Fprintln(cmd.OutOrStdout(), epilogueHeader+c.helpEpilogue)
	} else {
		fmt.Fprintln(cmd.OutOrStdout())
	}
}

/*
	Execute invokes the exec function that was set on this command when it was
	created. If args is of non-zero length, it overrides os.Args.
*/
func (c *Command) Execute(args []string) error {
	if len(args) > 0 {
		c.cmd.SetArgs(args)
	}
	return c.cmd.Execute()
}

/*
	AddSetting adds a setting to this command. Target is a pointer to the
	variable the setting is bound to. Flag is the long (double-dash) command
	line flag, short its single-dash version, and env the environment variable
	that may carry the setting. def is the default value, nil meaning the zero
	value of the setting's type. Required settings can't have a default.
*/
func (c *Command) AddSetting(target interface{}, flag, short, env string,
	def interface{}, help string, required bool) {

	s := setting{flag: flag, env: env, required: required, target: target}
	c.settings[flag] = &s

	t, n, err := s.typeAndName()
	DieOnError(err)

	log.Tracef("add setting: flag=%s, env=%s, type=%s", flag, env, t)

	if strings.HasSuffix(n, "Slice") && n != "StringSlice" && env != "" {
		Die("cannot use environment variable on non-string array setting")
	}

	// pflag supports more types than Viper, so check here to fail early
	if _, err := c.viperGetter(n); err != nil {
		Die("setting '%s' is of unsupported type: no Viper getter", flag)
	}

	defVal := reflect.Zero(t)

	if required {
		if def != nil {
			Die("required setting '%s' does not take a default value", flag)
		}
	} else if def != nil {
		if !reflect.TypeOf(def).ConvertibleTo(t) {
			Die("default value for setting '%s' has incorrect type", flag)
		}
		defVal = reflect.ValueOf(def).Convert(t)
	}

	flags := c.cmd.Flags()
	method, err := pflagMethodForTypeName(n, flags)
	if err != nil {
		Die("setting '%s' is of unsupported type: no pflag method", flag)
	}

	helpMsg := help
	if env != "" {
		helpMsg = fmt.Sprintf("%s (%s)", help, env)
	}

	method.Call(
		[]reflect.Value{
			reflect.ValueOf(target),
			reflect.ValueOf(flag),
			reflect.ValueOf(short),
			defVal,
			reflect.ValueOf(helpMsg),
		})

	c.viper.BindPFlag(flag, flags.Lookup(flag))
	if env != "" {
		c.viper.BindEnv(flag, env)
	}
}

/*
	ParseSettings resolves all settings added so far, and places their values
	in the variables they are bound to. Call this before touching any of those
	variables.
*/
func (c *Command) ParseSettings() error {
	for _, s := range c.settings {
		if _, err := s.get(c); err != nil {
			return err
		}
	}
	c.Args = c.cmd.Flags().Args()
	return nil
}

//
type setting struct {
	flag     string
	env      string
	required bool
	target   interface{}
}

//
func (s *setting) typeAndName() (reflect.Type, string, error) {

	typ := reflect.TypeOf(s.target)

	if typ.Kind() != reflect.Ptr {
		return nil, "", fmt.Errorf(
			"target for setting '%s' is not a pointer", s.flag)
	}

	elem := typ.Elem()
	if elem.Kind() == reflect.Slice {
		return elem, titled(elem.Elem().Name()) + "Slice", nil
	}
	return elem, titled(elem.Name()), nil
}

//
func titled(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

//
func (s *setting) get(c *Command) (interface{}, error) {

	t, n, err := s.typeAndName()
	if err != nil {
		return nil, err
	}

	method, err := c.viperGetter(n)
	if err != nil {
		return nil, err
	}

	val := method.Call([]reflect.Value{reflect.ValueOf(s.flag)})[0]
	log.Tracef("get setting: flag=%s, type=%s, value='%v', set=%v",
		s.flag, t, val, c.viper.IsSet(s.flag))

	if s.required {
		missing := false
		if val.Kind() == reflect.Slice {
			missing = val.Len() == 0
		} else {
			missing = val.Interface() == reflect.Zero(t).Interface()
		}
		if missing {
			msg := fmt.Sprintf(
				"you need to specify the --%s command line flag", s.flag)
			if s.env != "" {
				msg = fmt.Sprintf(
					"%s or the %s environment variable", msg, s.env)
			}
			return nil, fmt.Errorf("%s", msg)
		}
	}

	// BindEnv does not set the target, so when the value came from the
	// environment, the target still holds the default
	if s.env != "" {
		elem := reflect.ValueOf(s.target).Elem()
		if val.Kind() == reflect.Slice {
			if elem.Len() == 0 {
				elem.Set(reflect.ValueOf(stringSliceFromValue(val)))
			}
		} else {
			elem.Set(val)
		}
	}

	return val, nil
}

//
func (c *Command) viperGetter(n string) (reflect.Value, error) {
	method := fmt.Sprintf("Get%s", n)
	ret := reflect.ValueOf(c.viper).MethodByName(method)
	if ret.Kind() != reflect.Func {
		return ret, fmt.Errorf("no Viper getter %s for type %s", method, n)
	}
	return ret, nil
}

//
func pflagMethodForTypeName(n string, f *pflag.FlagSet) (reflect.Value, error) {
	method := fmt.Sprintf("%sVarP", n)
	ret := reflect.ValueOf(f).MethodByName(method)
	if ret.Kind() != reflect.Func {
		return ret, fmt.Errorf("no pflag method %s for type %s", method, n)
	}
	return ret, nil
}

//
func stringSliceFromValue(v reflect.Value) []string {
	ret := make([]string, 0, 16)
	if v.Kind() == reflect.Slice {
		for ix := 0; ix < v.Len(); ix++ {
			ret = append(ret, strings.Split(v.Index(ix).String(), ",")...)
		}
	}
	return ret
}
