package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/akgvn/bc"
)

const banner = "bc: a desk calculator. Type quit or press Ctrl+D to exit."

// printer writes results and diagnostics.
type printer struct {
	out  io.Writer
	errs *log.Logger
	verb string
}

// report prints one result and returns false if it is an error.
func (p *printer) report(r bc.Result) bool {
	if r.Err != nil {
		var ie bc.InputError
		if errors.As(r.Err, &ie) {
			// Input errors already say where they are.
			p.errs.Print(r.Err)
		} else {
			p.errs.Printf("line %d: %v", r.Line, r.Err)
		}
		return false
	}
	if r.HasValue {
		fmt.Fprintf(p.out, p.verb+"\n", r.Value)
	}
	return true
}

// runScript executes src as one source buffer and reports every result. The
// result is false if any statement failed.
func runScript(ip *bc.Interp, src string, p *printer) bool {
	ok := true
	for _, r := range ip.Exec(src) {
		if !p.report(r) {
			ok = false
		}
	}
	return ok
}

// repl reads statements interactively until quit or EOF. Statement errors are
// reported and never end the session.
func repl(ip *bc.Interp, cfg config, p *printer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := cfg.historyPath()
	if hist != "" {
		// Best-effort, like the history write below.
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}

	fmt.Fprintln(p.out, banner)
	var err error
	for {
		var line string
		line, err = ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			err = nil
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			err = nil
			break
		}
		if err != nil {
			break
		}
		text := strings.TrimSpace(line)
		if text == "quit" {
			break
		}
		if text == "" {
			continue
		}
		ln.AppendHistory(line)
		runScript(ip, line, p)
	}

	if hist != "" {
		if f, err := os.Create(hist); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}
	return err
}
