package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/akgvn/bc"
)

func main() {
	log.SetFlags(0)
	var (
		inname, cfgname, verb string
		with                  [][2]string
		debug, consts         bool
		depth                 int
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "script file; - reads stdin (default interactive, or the first argument)")
	flag.StringVar(&cfgname, "config", "", "configuration file (default ~/"+rcname+" if present)")
	flag.StringVar(&verb, "fmt", "", "result formatting verb (default %v)")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&debug, "debug", false, "print tokens, trees, and bytecode")
	flag.BoolVar(&consts, "const", false, "define pi and e")
	flag.IntVar(&depth, "depth", 0, "maximum expression nesting (default 256)")
	flag.Parse()
	if inname == "" && flag.NArg() > 0 {
		inname = flag.Arg(0)
	}

	cfg, err := loadConfig(cfgname)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			cfg.Format = verb
		case "debug":
			cfg.Debug = debug
		case "const":
			cfg.Constants = consts
		case "depth":
			cfg.MaxDepth = depth
		}
	})

	if cfg.Format == "" {
		cfg.Format = "%v"
	}
	env, err := newEnv(cfg, with)
	if err != nil {
		log.Fatal(err)
	}
	opts := []bc.InterpOption{bc.WithParseOptions(bc.MaxDepth(cfg.MaxDepth))}
	if cfg.Debug {
		opts = append(opts, bc.Trace(os.Stdout))
	}
	ip := bc.NewInterp(env, opts...)
	p := &printer{out: os.Stdout, errs: log.New(os.Stderr, "", 0), verb: cfg.Format}

	if inname == "" {
		if err := repl(ip, cfg, p); err != nil {
			log.Fatal(err)
		}
		return
	}
	src, err := readScript(inname)
	if err != nil {
		log.Fatal(err)
	}
	if !runScript(ip, src, p) {
		os.Exit(1)
	}
}

// newEnv creates the session environment from the configuration and -given
// definitions. Each definition's value is itself evaluated as an expression,
// so later definitions may refer to earlier ones.
func newEnv(cfg config, with [][2]string) (*bc.Env, error) {
	var opts []bc.EnvOption
	if cfg.Constants {
		opts = append(opts, bc.Constants())
	}
	opts = append(opts, bc.SetVars(cfg.Vars))
	env := bc.NewEnv(opts...)
	for _, d := range with {
		nm, vl := d[0], d[1]
		rs := bc.NewInterp(env.Clone()).Exec(vl)
		if len(rs) == 1 && rs[0].Err != nil {
			return nil, fmt.Errorf("setting %s: %w", nm, rs[0].Err)
		}
		if len(rs) != 1 || !rs[0].HasValue {
			return nil, fmt.Errorf("setting %s: %q is not a single expression", nm, vl)
		}
		env.Set(nm, rs[0].Value)
	}
	return env, nil
}

func readScript(inname string) (string, error) {
	var (
		b   []byte
		err error
	)
	if inname == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(inname)
	}
	if err != nil {
		return "", fmt.Errorf("reading script: %w", err)
	}
	return string(b), nil
}
