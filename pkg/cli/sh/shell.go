package sh

import (
	"encoding/json"
	"flag"
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/robotalks/tracker.go/pkg/env"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell  *ishell.Shell
	Config *env.Config
}

const (
	shellKey = "$shell"
	prompt   = "tracker > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&ConfigCmd,
		&SourceCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *env.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(prompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// NewChecked validates conf before creating the shell.
func NewChecked(conf *env.Config) (*Shell, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return New(conf), nil
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// Output prints v as JSON in JSON mode, text otherwise.
func Output(c *ishell.Context, v interface{}, text string) {
	if ShellFrom(c).OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Println(text)
}

// IntArgs parses c.Args as integers, one per name.
func IntArgs(args []string, names ...string) ([]int, error) {
	if len(args) < len(names) {
		return nil, fmt.Errorf("%s required", names[len(args)])
	}
	vals := make([]int, len(names))
	for n, name := range names {
		val, err := strconv.Atoi(args[n])
		if err != nil {
			return nil, fmt.Errorf("Invalid %s: %v", name, err)
		}
		vals[n] = val
	}
	return vals, nil
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			glog.Exitln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	glog.Exitln("command expected")
}

var (
	// ConfigCmd prints the effective configuration.
	ConfigCmd = ishell.Cmd{
		Name: "config",
		Help: "",
		Func: func(c *ishell.Context) {
			conf := ShellFrom(c).Config
			Output(c, conf, fmt.Sprintf("%+v", *conf))
		},
	}

	// SourceCmd shows or changes the position source.
	SourceCmd = ishell.Cmd{
		Name:    "source",
		Aliases: []string{"src"},
		Help:    "[URL]",
		Func: func(c *ishell.Context) {
			conf := ShellFrom(c).Config
			if len(c.Args) > 0 {
				conf.SourceURL = c.Args[0]
			}
			c.Println(conf.SourceURL)
		},
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	s, err := NewChecked(env.NewConfig())
	if err != nil {
		glog.Exitln(err)
	}
	s.Run(flag.Args()...)
}
