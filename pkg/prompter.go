package verprompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

var (
	// ErrNoSelection is returned by a ScriptedPrompter that has run out of answers.
	ErrNoSelection = errors.New("no answer left")
	// ErrInvalidAnswer is returned by a ScriptedPrompter when an answer matches no choice.
	ErrInvalidAnswer = errors.New("answer matches no choice")
)

// Select resolves an answer to one of the question's choices. An empty answer
// selects the default, a number selects by position starting at 1, anything
// else is matched against Short and then Value.
func (q Question) Select(answer string) (Choice, bool) {
	if answer == "" {
		if q.Default >= 0 && q.Default < len(q.Choices) {
			return q.Choices[q.Default], true
		}
		return Choice{}, false
	}
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(q.Choices) {
			return q.Choices[n-1], true
		}
		return Choice{}, false
	}
	for _, c := range q.Choices {
		if strings.EqualFold(c.Short, answer) {
			return c, true
		}
	}
	for _, c := range q.Choices {
		if c.Value == answer {
			return c, true
		}
	}
	return Choice{}, false
}

// LinePrompter renders a question as a numbered list and reads the answer
// one line at a time. Unusable answers are asked for again.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer

	once  sync.Once
	lines chan readResult
}

type readResult struct {
	line string
	err  error
}

// NewLinePrompter returns a LinePrompter reading from in and writing to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// readLines feeds p.lines until the input fails. The channel is closed
// after the failing read has been delivered.
func (p *LinePrompter) readLines() {
	defer close(p.lines)
	for {
		line, err := p.in.ReadString('\n')
		p.lines <- readResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// Ask implements Prompter. A cancelled context aborts a pending read with
// ctx.Err(). Running out of input fails with io.ErrUnexpectedEOF.
func (p *LinePrompter) Ask(ctx context.Context, q Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.once.Do(func() {
		p.lines = make(chan readResult)
		go p.readLines()
	})

	fmt.Fprintf(p.out, "? %s\n", q.Message)
	for i, c := range q.Choices {
		marker := " "
		if i == q.Default {
			marker = ">"
		}
		fmt.Fprintf(p.out, "%s %d) %s\n", marker, i+1, c.Label)
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprintf(p.out, "Answer [%d]: ", q.Default+1)

		var r readResult
		select {
		case <-ctx.Done():
			fmt.Fprintln(p.out)
			return "", ctx.Err()
		case res, ok := <-p.lines:
			if !ok {
				return "", io.ErrUnexpectedEOF
			}
			r = res
		}

		if r.err != nil && (r.line == "" || !errors.Is(r.err, io.EOF)) {
			if errors.Is(r.err, io.EOF) {
				return "", io.ErrUnexpectedEOF
			}
			return "", fmt.Errorf("reading answer: %w", r.err)
		}

		if c, ok := q.Select(strings.TrimSpace(r.line)); ok {
			return c.Value, nil
		}
		fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(q.Choices))
	}
}

// ScriptedPrompter answers questions from a fixed list, one answer per
// question, using the same matching rules as Question.Select.
type ScriptedPrompter struct {
	answers []string
}

// NewScriptedPrompter returns a prompter that gives the answers in order.
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{answers: answers}
}

// Ask implements Prompter.
func (p *ScriptedPrompter) Ask(ctx context.Context, q Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(p.answers) == 0 {
		return "", fmt.Errorf("%w for question %q", ErrNoSelection, q.Name)
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]

	c, ok := q.Select(answer)
	if !ok {
		return "", fmt.Errorf("%w: %q for question %q", ErrInvalidAnswer, answer, q.Name)
	}
	return c.Value, nil
}
