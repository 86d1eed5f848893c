// Command zipette runs programs written in the zipette language.
//
// With no argument it loads "quartier.zipette" from the current
// directory. With -i it drops into an interactive session instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/kr/pretty"
	"github.com/peterh/liner"

	"go.creack.net/zipette/executor"
	"go.creack.net/zipette/parser"
	"go.creack.net/zipette/style"
)

const (
	defaultSource = "quartier.zipette"
	sourceExt     = ".zipette"
	historyFile   = ".zipette_history"
	prompt        = ">> "
)

var (
	flInteractive = flag.Bool("i", false, "Start an interactive session.")
	flDumpAST     = flag.Bool("ast", false, "Dump the parse tree instead of executing.")
	flSeed        = flag.Int64("seed", 0, "Seed for multicolor rendering, 0 means clock-based.")
)

var errRed = color.New(color.FgRed)

func fatalf(format string, args ...any) {
	_, _ = errRed.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	flag.Parse()

	seed := *flSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	styler := style.New(rand.NewSource(seed))

	if *flInteractive {
		repl(styler)
		return
	}

	path := defaultSource
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	if filepath.Ext(path) != sourceExt {
		fatalf("zipette: %q is not a %s file", path, sourceExt)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		fatalf("zipette: %s", err)
	}

	prog, err := parser.Parse(string(source))
	if err != nil {
		fatalf("zipette: %s", err)
	}

	if *flDumpAST {
		_, _ = pretty.Println(prog)
		fmt.Print(prog.Dump())
		return
	}

	if err := executor.New(prog, executor.WithStyler(styler)).Run(); err != nil {
		fatalf("zipette: %s", err)
	}
}

// repl runs an interactive session. Every line is a full program, all
// lines share one variable environment. Errors don't end the session.
func repl(styler *style.Styler) {
	ln := liner.NewLiner()
	defer func() { _ = ln.Close() }()
	ln.SetCtrlCAborts(true)

	historyPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyPath = filepath.Join(home, historyFile)
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	fmt.Println("zipette interactive. Ctrl+D or :quit to exit.")

	env := map[string]float64{}
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fatalf("zipette: %s", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if line == ":quit" {
			break
		}

		prog, err := parser.Parse(line)
		if err != nil {
			_, _ = errRed.Fprintln(os.Stderr, err)
			continue
		}
		run := executor.New(prog,
			executor.WithEnv(env),
			executor.WithStyler(styler),
		)
		if err := run.Run(); err != nil {
			_, _ = errRed.Fprintln(os.Stderr, err)
		}
	}

	if historyPath != "" {
		if f, err := os.Create(historyPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
}
