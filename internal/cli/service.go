package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/fileman-cli/fileman/internal/cursor"
	"github.com/fileman-cli/fileman/internal/errors"
	"github.com/fileman-cli/fileman/internal/messages"
	"github.com/fileman-cli/fileman/internal/token"
)

const exitCommand = ".exit"

type operation func(args []string) error

// Service holds the main business logic of the CLI: the session loop and the
// command dispatch table.
type Service struct {
	Config

	cursor   *cursor.Cursor
	commands map[string]operation
}

func NewService(cfg Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return Service{}, errors.Wrap(err, "validation failed")
	}

	start := cfg.WorkingDirectory
	if start == "" {
		home, err := cfg.FileSystem.HomeDir()
		if err != nil {
			return Service{}, err
		}
		start = home
	}

	location, err := cursor.New(cfg.FileSystem, start)
	if err != nil {
		return Service{}, errors.Wrap(err, "unable to set the working directory")
	}

	s := Service{Config: cfg, cursor: location}
	s.commands = map[string]operation{
		"up":         s.Up,
		"cd":         s.ChangeDirectory,
		"ls":         s.List,
		"cat":        s.Read,
		"add":        s.CreateFile,
		"mkdir":      s.MakeDirectory,
		"rn":         s.Rename,
		"cp":         s.Copy,
		"mv":         s.Move,
		"rm":         s.Remove,
		"os":         s.SystemInfo,
		"hash":       s.Hash,
		"compress":   s.Compress,
		"decompress": s.Decompress,
	}

	return s, nil
}

// Run drives the session loop until the exit command or the end of the input
// stream. One line is processed fully, streaming included, before the next
// one is read; a command failure never terminates the loop.
func (s Service) Run() error {
	fmt.Fprintln(s.Stdout, messages.Welcome(s.Username))
	s.echoLocation()

	scanner := bufio.NewScanner(s.Stdin)
	for {
		s.prompt()

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			s.echoLocation()
			continue
		}

		command, err := token.Parse(line)
		if err != nil {
			s.debugf(err)
			fmt.Fprintln(s.Stdout, messages.InvalidInput)
			s.echoLocation()
			continue
		}

		if command == nil {
			s.echoLocation()
			continue
		}

		if command.Name == exitCommand {
			break
		}

		s.dispatch(command)
		s.echoLocation()
	}

	if err := scanner.Err(); err != nil {
		// A broken input stream ends the session the same way EOF does.
		s.debugf(err)
	}

	fmt.Fprintln(s.Stdout, messages.Farewell(s.Username))
	return nil
}

// dispatch looks the command up in the fixed table and reduces any failure
// to a single generic message. The typed cause is kept for debug output but
// never shown to the user.
func (s Service) dispatch(command *token.Command) {
	run, ok := s.commands[command.Name]
	if !ok {
		fmt.Fprintln(s.Stdout, messages.InvalidInput)
		return
	}

	if err := run(command.Args); err != nil {
		s.debugf(err)

		if errors.Is(err, errors.ErrInvalidInput) {
			fmt.Fprintln(s.Stdout, messages.InvalidInput)
			return
		}

		fmt.Fprintln(s.Stdout, messages.OperationFailed)
	}
}

func (s Service) echoLocation() {
	fmt.Fprintln(s.Stdout, messages.CurrentDirectory(s.cursor.Location()))
}

// prompt prints an input marker, but only when attached to a terminal so
// piped sessions stay clean.
func (s Service) prompt() {
	file, ok := s.Stdin.(*os.File)
	if !ok {
		return
	}

	if term.IsTerminal(int(file.Fd())) {
		fmt.Fprint(s.Stdout, "> ")
	}
}

func (s Service) debugf(err error) {
	if s.Debug && err != nil {
		// Stacktraces are included via pkg/errors
		fmt.Fprintf(s.Stderr, "fileman: %+v\n", err)
	}
}
