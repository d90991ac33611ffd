package validate

import (
	"bytes"
	"context"
	"errors"
	"go/parser"
	"go/scanner"
	"go/token"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// Failure describes the first syntax error a checker found
type Failure struct {
	// Line is the 1-based line of the error, 0 when unknown
	Line int
	// Message is the checker's error message
	Message string
}

// Checker validates the syntax of a file in one language. Check returns a
// Failure when the file is syntactically invalid, and an error only when the
// checker itself could not run.
type Checker interface {
	Language() string
	Check(ctx context.Context, path string) (*Failure, error)
}

// GoChecker validates Go files in-process with go/parser. It needs no build
// context, which matters mid-merge when the module may not load.
type GoChecker struct{}

// Language returns "go"
func (GoChecker) Language() string { return "go" }

// Check parses the file and reports the first syntax error
func (GoChecker) Check(ctx context.Context, path string) (*Failure, error) {
	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, path, nil, parser.AllErrors)
	if err == nil {
		return nil, nil
	}

	var list scanner.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		return &Failure{Line: list[0].Pos.Line, Message: list[0].Msg}, nil
	}

	// Not a parse error; the file itself could not be read.
	return nil, err
}

// CommandChecker delegates to an external syntax checker, invoked as
// argv + path. A non-zero exit is a syntax failure; any other execution
// problem (missing binary, cancelled context) is a checker error.
type CommandChecker struct {
	language string
	argv     []string
}

// NewCommandChecker creates a checker for language from its command line
func NewCommandChecker(language string, argv []string) *CommandChecker {
	return &CommandChecker{language: language, argv: argv}
}

// Language returns the language this checker validates
func (c *CommandChecker) Language() string { return c.language }

// Check runs the external checker against path
func (c *CommandChecker) Check(ctx context.Context, path string) (*Failure, error) {
	if len(c.argv) == 0 {
		return nil, errors.New("empty checker command")
	}

	args := append(append([]string{}, c.argv[1:]...), path)
	cmd := exec.CommandContext(ctx, c.argv[0], args...)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	if err == nil {
		return nil, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return nil, err
	}

	return failureFromOutput(output.String()), nil
}

var lineNumberPattern = regexp.MustCompile(`(?i)(?:line |:)(\d+)`)

// failureFromOutput lifts the first diagnostic line and, when present, a
// line number out of a checker's combined output.
func failureFromOutput(output string) *Failure {
	failure := &Failure{Message: "syntax check failed"}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			failure.Message = line
			break
		}
	}

	if match := lineNumberPattern.FindStringSubmatch(output); match != nil {
		if line, err := strconv.Atoi(match[1]); err == nil {
			failure.Line = line
		}
	}

	return failure
}
