// Package prompt asks an operator for missing information.
//
// All questions that validate their answer are retried a bounded number of times.
package prompt

//spellchecker:words bufio errors strconv strings
import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultMaxAttempts is the default number of times a question is asked before giving up.
const DefaultMaxAttempts = 3

var (
	// ErrNonInteractive is returned when a question is asked of a prompter that cannot answer.
	ErrNonInteractive = errors.New("operator input required, but running non-interactively")

	// ErrTooManyAttempts is returned once a question received only invalid answers.
	ErrTooManyAttempts = errors.New("too many invalid answers")
)

// Prompter asks questions to an operator.
type Prompter interface {
	// Ask asks the given question and returns the answer, without a trailing newline.
	Ask(question string) (string, error)

	// Say informs the operator about something.
	Say(message string)
}

// Terminal prompts on an input and output stream, typically os.Stdin and os.Stderr.
type Terminal struct {
	In  io.Reader
	Out io.Writer

	scanner *bufio.Scanner
}

func (terminal *Terminal) Ask(question string) (string, error) {
	if terminal.scanner == nil {
		terminal.scanner = bufio.NewScanner(terminal.In)
	}

	fmt.Fprint(terminal.Out, question)
	if !terminal.scanner.Scan() {
		if err := terminal.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimRight(terminal.scanner.Text(), "\r"), nil
}

func (terminal *Terminal) Say(message string) {
	fmt.Fprintln(terminal.Out, message)
}

// Batch never answers any question.
type Batch struct{}

func (Batch) Ask(question string) (string, error) {
	return "", fmt.Errorf("%w: %q", ErrNonInteractive, strings.TrimSpace(question))
}

func (Batch) Say(message string) {}

// Scripted answers questions from a fixed list of answers.
// It records all questions and messages.
type Scripted struct {
	Answers []string

	Questions []string
	Messages  []string
}

func (scripted *Scripted) Ask(question string) (string, error) {
	scripted.Questions = append(scripted.Questions, question)
	if len(scripted.Answers) == 0 {
		return "", io.ErrUnexpectedEOF
	}
	answer := scripted.Answers[0]
	scripted.Answers = scripted.Answers[1:]
	return answer, nil
}

func (scripted *Scripted) Say(message string) {
	scripted.Messages = append(scripted.Messages, message)
}

// Validated asks question until parse accepts the answer, at most maxAttempts times.
// When parse rejects an answer, its error is shown to the operator.
// A maxAttempts <= 0 means [DefaultMaxAttempts].
func Validated[T any](p Prompter, question string, maxAttempts int, parse func(answer string) (T, error)) (value T, err error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	var last error
	for range maxAttempts {
		answer, err := p.Ask(question)
		if err != nil {
			return value, err
		}
		value, last = parse(strings.TrimSpace(answer))
		if last == nil {
			return value, nil
		}
		p.Say(last.Error())
	}
	return value, fmt.Errorf("%w (%d attempts): %w", ErrTooManyAttempts, maxAttempts, last)
}

var errNotPositive = errors.New("the answer has to be a positive integer")

// PositiveInt asks for a positive integer.
func PositiveInt(p Prompter, question string, maxAttempts int) (int, error) {
	return Validated(p, question, maxAttempts, func(answer string) (int, error) {
		value, err := strconv.Atoi(answer)
		if err != nil || value <= 0 {
			return 0, errNotPositive
		}
		return value, nil
	})
}

var errNotYesNo = errors.New("the expected answer is yes or no")

// YesNo asks a yes or no question.
func YesNo(p Prompter, question string, maxAttempts int) (bool, error) {
	return Validated(p, question, maxAttempts, func(answer string) (bool, error) {
		switch strings.ToLower(answer) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		default:
			return false, errNotYesNo
		}
	})
}

var errEmpty = errors.New("the answer must not be empty")

// NonEmpty asks for a non-empty string.
func NonEmpty(p Prompter, question string, maxAttempts int) (string, error) {
	return Validated(p, question, maxAttempts, func(answer string) (string, error) {
		if answer == "" {
			return "", errEmpty
		}
		return answer, nil
	})
}
