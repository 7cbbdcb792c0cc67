package devrunner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

const (
	DefaultStagger = 2 * time.Second
	DefaultGrace   = 5 * time.Second
)

// Command is one child process.
type Command struct {
	Name string
	Path string
	Args []string
}

// ParseCommand splits a whitespace separated command line.
func ParseCommand(name, line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%s command cannot be empty", name)
	}
	return Command{Name: name, Path: fields[0], Args: fields[1:]}, nil
}

type Config struct {
	Commands []Command
	Stagger  time.Duration
	Grace    time.Duration
	Stdout   io.Writer
	Stderr   io.Writer
}

// Runner starts its commands in order, one stagger apart, and relays
// shutdown signals to the ones still running.
type Runner struct {
	commands []Command
	stagger  time.Duration
	grace    time.Duration
	stdout   io.Writer
	stderr   io.Writer
	logger   *logging.Logger

	mu   sync.Mutex
	live map[string]*exec.Cmd
}

func NewRunner(cfg Config, logger *logging.Logger) *Runner {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Stagger <= 0 {
		cfg.Stagger = DefaultStagger
	}
	if cfg.Grace <= 0 {
		cfg.Grace = DefaultGrace
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}

	return &Runner{
		commands: cfg.Commands,
		stagger:  cfg.Stagger,
		grace:    cfg.Grace,
		stdout:   cfg.Stdout,
		stderr:   cfg.Stderr,
		logger:   logger,
		live:     make(map[string]*exec.Cmd, len(cfg.Commands)),
	}
}

// Run returns once every child has exited, or once a signal (or ctx
// cancellation, treated as SIGTERM) has been forwarded and the children
// exited or the grace period elapsed.
func (r *Runner) Run(ctx context.Context, signals <-chan os.Signal) error {
	if len(r.commands) == 0 {
		return fmt.Errorf("no commands to run")
	}

	var wg conc.WaitGroup
	defer wg.Wait()

	exited := make(chan string, len(r.commands))
	running := 0
	for i, command := range r.commands {
		if i > 0 {
			timer := time.NewTimer(r.stagger)
			select {
			case <-timer.C:
			case sig := <-signals:
				timer.Stop()
				return r.shutdown(sig, exited, running)
			case <-ctx.Done():
				timer.Stop()
				return r.shutdown(syscall.SIGTERM, exited, running)
			}
		}

		cmd, err := r.start(command)
		if err != nil {
			if running > 0 {
				_ = r.shutdown(syscall.SIGTERM, exited, running)
			}
			return fmt.Errorf("start %s: %w", command.Name, err)
		}
		running++
		wg.Go(func() {
			r.wait(command, cmd)
			exited <- command.Name
		})
	}

	for running > 0 {
		select {
		case <-exited:
			running--
		case sig := <-signals:
			return r.shutdown(sig, exited, running)
		case <-ctx.Done():
			return r.shutdown(syscall.SIGTERM, exited, running)
		}
	}

	r.logger.Info("all children exited")
	return nil
}

func (r *Runner) start(command Command) (*exec.Cmd, error) {
	cmd := exec.Command(command.Path, command.Args...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	cmd.Stdin = nil
	cmd.WaitDelay = r.grace

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.live[command.Name] = cmd
	r.mu.Unlock()

	r.logger.Info("child started", "name", command.Name, "pid", cmd.Process.Pid, "command", cmd.String())
	return cmd, nil
}

func (r *Runner) wait(command Command, cmd *exec.Cmd) {
	err := cmd.Wait()

	r.mu.Lock()
	delete(r.live, command.Name)
	r.mu.Unlock()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		r.logger.Info("child exited", "name", command.Name)
	case errors.As(err, &exitErr):
		r.logger.Warn("child exited with non-zero status", "name", command.Name, "code", exitErr.ExitCode(), "error", err)
	default:
		r.logger.Error("child wait failed", "name", command.Name, "error", err)
	}
}

func (r *Runner) shutdown(sig os.Signal, exited <-chan string, running int) error {
	r.logger.Info("forwarding signal to children", "signal", sig.String(), "children", running)
	r.forward(sig)

	timer := time.NewTimer(r.grace)
	defer timer.Stop()

	for running > 0 {
		select {
		case <-exited:
			running--
		case <-timer.C:
			r.logger.Warn("grace period elapsed, killing children", "grace", r.grace.String(), "remaining", running)
			r.forward(os.Kill)
			return nil
		}
	}
	return nil
}

func (r *Runner) forward(sig os.Signal) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, cmd := range r.live {
		if err := cmd.Process.Signal(sig); err != nil && !errors.Is(err, os.ErrProcessDone) {
			r.logger.Warn("forward signal failed", "name", name, "signal", sig.String(), "error", err)
		}
	}
}
