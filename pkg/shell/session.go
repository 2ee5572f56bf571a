// Package shell is a line-oriented terminal front end for the note store.
//
// It plays the part of the list, add and edit screens: it reads commands,
// invokes the store and renders the result. The list is redrawn whenever the
// store reports a change.
package shell

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/aretw0/jot/pkg/core"
)

// Words with a special meaning at the add and edit prompts.
const (
	// CancelWord abandons the add or edit screen.
	CancelWord = ":cancel"
	// ClearWord sets the field to the empty string on the edit screen,
	// where a blank answer keeps the current value.
	ClearWord = ":clear"
)

// Session is one interactive run over a store.
type Session struct {
	store  *core.Store
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
	prompt string

	dirty   atomic.Bool
	readErr error
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPrompt overrides the command prompt.
func WithPrompt(prompt string) Option {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// New creates a session reading commands from in and writing to out.
func New(store *core.Store, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		store:  store,
		in:     bufio.NewReader(in),
		out:    out,
		logger: slog.New(slog.DiscardHandler),
		prompt: "jot> ",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type command struct {
	usage string
	help  string
	run   func(s *Session, args []string) (quit bool)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"list":   {"list", "show all notes, newest first", (*Session).cmdList},
		"show":   {"show <id>", "show a single note", (*Session).cmdShow},
		"add":    {"add", "create a note", (*Session).cmdAdd},
		"edit":   {"edit <id>", "change the title and text of a note", (*Session).cmdEdit},
		"delete": {"delete <id>", "delete a note after confirmation", (*Session).cmdDelete},
		"state":  {"state", "print store state as JSON", (*Session).cmdState},
		"help":   {"help", "show this help", (*Session).cmdHelp},
		"quit":   {"quit", "leave the session", func(*Session, []string) bool { return true }},
	}
}

var aliases = map[string]string{
	"ls":   "list",
	"rm":   "delete",
	"exit": "quit",
	"?":    "help",
}

// Run shows the list and processes commands until quit, end of input or ctx
// is cancelled. Cancellation is noticed between commands.
func (s *Session) Run(ctx context.Context) error {
	unsubscribe := s.store.Subscribe(func(core.Event) {
		s.dirty.Store(true)
	})
	defer unsubscribe()

	s.renderList()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, ok := s.ask(s.prompt)
		if !ok {
			fmt.Fprintln(s.out)
			return s.readErr
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if s.dispatch(fields[0], fields[1:]) {
			return nil
		}

		if s.dirty.Swap(false) {
			s.renderList()
		}
	}
}

func (s *Session) dispatch(name string, args []string) (quit bool) {
	name = strings.ToLower(name)
	if alias, ok := aliases[name]; ok {
		name = alias
	}

	cmd, ok := commands[name]
	if !ok {
		s.say("Unknown command %q. Type 'help' for a list of commands.", name)
		return false
	}

	s.logger.Debug("command", "name", name, "args", args)
	return cmd.run(s, args)
}

func (s *Session) cmdList(args []string) bool {
	s.dirty.Store(false)
	s.renderList()
	return false
}

func (s *Session) cmdShow(args []string) bool {
	id, ok := s.parseID(args)
	if !ok {
		return false
	}

	n, err := s.store.Get(id)
	if err != nil {
		s.say("No note with id %d", id)
		return false
	}
	s.renderNote(n)
	return false
}

func (s *Session) cmdAdd(args []string) bool {
	var title, text string
	for {
		var ok bool
		if title, ok = s.field("Title", title, false); !ok {
			s.say("Cancelled.")
			return false
		}
		if text, ok = s.field("Text", text, false); !ok {
			s.say("Cancelled.")
			return false
		}

		n, err := s.store.Add(title, text)
		if err != nil {
			s.logger.Debug("add rejected", "error", err)
			s.say("%s", Message(err))
			continue
		}

		s.logger.Info("note added", "id", n.ID)
		s.say("Added note #%d.", n.ID)
		return false
	}
}

func (s *Session) cmdEdit(args []string) bool {
	id, ok := s.parseID(args)
	if !ok {
		return false
	}

	n, err := s.store.Get(id)
	if err != nil {
		s.say("No note with id %d", id)
		return false
	}

	title, text := n.Title, n.Text
	for {
		if title, ok = s.field("Title", title, true); !ok {
			s.say("Cancelled.")
			return false
		}
		if text, ok = s.field("Text", text, true); !ok {
			s.say("Cancelled.")
			return false
		}

		err := s.store.Edit(id, title, text)
		switch {
		case err == nil:
			s.logger.Info("note edited", "id", id)
			s.say("Saved note #%d.", id)
			return false
		case core.IsValidation(err):
			s.logger.Debug("edit rejected", "id", id, "error", err)
			s.say("%s", Message(err))
		default:
			// Removed while the screen was open.
			s.say("No note with id %d", id)
			return false
		}
	}
}

func (s *Session) cmdDelete(args []string) bool {
	id, ok := s.parseID(args)
	if !ok {
		return false
	}

	if _, err := s.store.Get(id); err != nil {
		s.say("No note with id %d", id)
		return false
	}

	answer, ok := s.ask("Confirm deletion of the selected note [y/N]: ")
	if !ok || !isYes(answer) {
		s.say("Kept note #%d.", id)
		return false
	}

	if err := s.store.Remove(id); err != nil {
		s.say("No note with id %d", id)
		return false
	}
	s.logger.Info("note deleted", "id", id)
	s.say("Deleted note #%d.", id)
	return false
}

func (s *Session) cmdState(args []string) bool {
	encoder := json.NewEncoder(s.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s.store.State()); err != nil {
		s.say("Error encoding JSON: %v", err)
	}
	return false
}

func (s *Session) cmdHelp(args []string) bool {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	s.say("Commands:")
	for _, name := range names {
		c := commands[name]
		s.say("  %-12s %s", c.usage, c.help)
	}
	s.say("Type %s at a prompt to leave the add or edit screen.", CancelWord)
	s.say("When editing, a blank answer keeps the current value and %s empties it.", ClearWord)
	return false
}

func (s *Session) renderList() {
	notes := s.store.ListAll()
	if len(notes) == 0 {
		s.say("No notes yet. Type 'add' to create one.")
		return
	}

	s.say("Notes (%d):", len(notes))
	for _, n := range notes {
		s.renderNote(n)
	}
}

func (s *Session) renderNote(n core.Note) {
	s.say("#%d %s", n.ID, n.Title)
	if n.Text != "" {
		s.say("    %s", n.Text)
	}
}

// field prompts for one input. With keep set, a blank answer keeps current
// and ClearWord empties the field.
// It returns false when the user cancels or input ends.
func (s *Session) field(label, current string, keep bool) (string, bool) {
	prompt := label + ": "
	if keep {
		prompt = fmt.Sprintf("%s [%s]: ", label, current)
	}

	answer, ok := s.ask(prompt)
	switch {
	case !ok || strings.TrimSpace(answer) == CancelWord:
		return "", false
	case keep && strings.TrimSpace(answer) == ClearWord:
		return "", true
	case keep && answer == "":
		return current, true
	}
	return answer, true
}

// ask reads one line of any length, so oversized answers reach validation
// instead of ending the session. It returns false at end of input or on a
// read error, which Run reports.
func (s *Session) ask(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		if !errors.Is(err, io.EOF) {
			s.readErr = err
		}
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (s *Session) parseID(args []string) (int, bool) {
	if len(args) != 1 {
		s.say("Expected exactly one note id.")
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		s.say("Invalid note id %q", args[0])
		return 0, false
	}
	return id, true
}

func (s *Session) say(format string, a ...any) {
	fmt.Fprintf(s.out, format+"\n", a...)
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
