package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/matheusportela/lispy"
)

const (
	appName     = "lispy"
	historyFile = ".lispy_history"
	promptMain  = ">>> "
)

var (
	banner   = fmt.Sprintf("lispy %s\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", lispy.Version)
	farewell = "bye!"
)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		os.Exit(cmdRepl())
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl())
	case "version":
		fmt.Println(lispy.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`lispy %s (built %s)

Usage:
  %s                   Start the REPL.
  %s repl              Start the REPL.
  %s run <file.lisp>   Run a script.
  %s version           Print the compiled version

`, lispy.Version, lispy.BuildDate, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.lisp>\n", appName)
		return 2
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return 1
	}

	ip := lispy.NewInterpreter()
	for _, chunk := range splitBalanced(string(src)) {
		if _, err := ip.EvalSource(chunk); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			return 1
		}
	}
	return 0
}

// splitBalanced cuts a script into top-level expression chunks: a chunk
// ends whenever the running parenthesis count returns to zero.
func splitBalanced(src string) []string {
	var chunks []string
	depth, start := 0, 0

	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				chunks = append(chunks, strings.TrimSpace(src[start:i+1]))
				start = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(src[start:]); tail != "" {
		chunks = append(chunks, tail)
	}
	return chunks
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := lispy.NewInterpreter()

	for {
		code, ok := readBalanced(ln)
		if !ok {
			fmt.Printf("\n%s\n", farewell)
			return 0
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			fmt.Println(farewell)
			return 0
		}

		v, err := ip.EvalSource(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, red("ERROR: "+err.Error()))
		} else {
			fmt.Println(blue(lispy.FormatValue(v)))
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readBalanced buffers prompt lines until the parenthesis count balances,
// then hands the joined buffer to the core. Continuation prompts indent to
// one column past the innermost unclosed parenthesis.
func readBalanced(ln *liner.State) (string, bool) {
	var buffer []string
	diff := 0

	for diff > 0 || len(buffer) == 0 {
		prompt := promptMain
		if len(buffer) > 0 {
			prompt += strings.Repeat(" ", indentation(buffer, diff))
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl+C: throw away the partial expression.
			buffer, diff = nil, 0
			continue
		}
		if err != nil {
			return "", false
		}

		buffer = append(buffer, line)
		diff += strings.Count(line, "(") - strings.Count(line, ")")
	}

	return strings.Join(buffer, " "), true
}

// indentation returns the column just past the opening parenthesis that is
// still waiting for its match, counting '(' occurrences across the buffer
// in order.
func indentation(buffer []string, diff int) int {
	var cols []int
	for _, line := range buffer {
		for i := 0; i < len(line); i++ {
			if line[i] == '(' {
				cols = append(cols, i)
			}
		}
	}
	if diff < 1 || diff > len(cols) {
		return 0
	}
	return cols[diff-1] + 1
}
