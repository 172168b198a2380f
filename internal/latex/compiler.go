package latex

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// Compiler runs the external LaTeX binary on assembled sources.
type Compiler struct {
	Command string
	Timeout time.Duration
}

func NewCompiler(command string, timeout time.Duration) *Compiler {
	if command == "" {
		command = "pdflatex"
	}
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Compiler{Command: command, Timeout: timeout}
}

// CompileResult reports one compiler run. A failed compilation is a
// result, not an error: errors are reserved for not being able to run
// the compiler at all.
type CompileResult struct {
	OK       bool
	PDF      []byte
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
}

// Compile writes source to <jobName>.tex inside dir, runs the
// compiler with a bounded timeout and reads back the produced PDF.
// Auxiliary files are removed before returning, pass or fail.
func (c *Compiler) Compile(ctx context.Context, dir, jobName, source string) (CompileResult, error) {
	texPath := filepath.Join(dir, jobName+".tex")
	if err := os.WriteFile(texPath, []byte(source), 0o600); err != nil {
		return CompileResult{}, fmt.Errorf("write source: %w", err)
	}

	defer func() {
		for _, ext := range []string{".aux", ".log", ".out"} {
			_ = os.Remove(filepath.Join(dir, jobName+ext))
		}
	}()

	runCtx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, c.Command, "-interaction=nonstopmode", "-output-directory", dir, texPath)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	result := CompileResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		TimedOut: errors.Is(runCtx.Err(), context.DeadlineExceeded),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		if result.TimedOut {
			result.ExitCode = -1
			return result, nil
		}
		// Could not start the compiler: missing binary, bad permissions.
		return result, fmt.Errorf("run %s: %w", c.Command, runErr)
	}

	pdf, err := os.ReadFile(filepath.Join(dir, jobName+".pdf"))
	if err != nil {
		result.Stderr += "\nno PDF produced: " + err.Error()
		return result, nil
	}

	result.OK = true
	result.PDF = pdf
	return result, nil
}
