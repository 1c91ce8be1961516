package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/tmc/langchaingo/llms"
	"k8s.io/klog/v2"

	"github.com/ocinet/ocinet/internal/constants"
)

const (
	banner   = "AI Agent for Oracle Cloud Network Configuration. Type your question and press Enter. Press Ctrl+C to exit."
	farewell = "Exiting agent."
)

// Agent answers operator questions about one inventory snapshot.
type Agent struct {
	model      llms.Model
	inventory  string
	modelName  string
	llmTimeout time.Duration

	in  io.Reader
	out io.Writer
}

// Option configures an Agent.
type Option func(*Agent)

// WithModelName sets the model requested on every completion call.
func WithModelName(name string) Option {
	return func(a *Agent) { a.modelName = name }
}

// WithLLMTimeout bounds each completion call. Zero disables the bound.
func WithLLMTimeout(d time.Duration) Option {
	return func(a *Agent) { a.llmTimeout = d }
}

// New creates an agent. The inventory is captured once and reused as
// context for every question.
func New(model llms.Model, inventory string, in io.Reader, out io.Writer, opts ...Option) *Agent {
	a := &Agent{
		model:     model,
		inventory: inventory,
		modelName: constants.DefaultModel,
		in:        in,
		out:       out,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run reads questions line by line until ctx is cancelled or input ends.
// Both end the loop cleanly with a farewell; a failed completion is returned.
func (a *Agent) Run(ctx context.Context) error {
	logger := klog.FromContext(ctx)
	lipgloss.Fprintln(a.out, bannerStyle.Render(banner))

	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go readLines(a.in, lines, readErr, done)

	for {
		lipgloss.Fprint(a.out, "\n"+promptStyle.Render("> "))

		var question string
		select {
		case <-ctx.Done():
			a.sayFarewell()
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			a.sayFarewell()
			return nil
		case question = <-lines:
		}

		if strings.TrimSpace(question) == "" {
			continue
		}

		logger.V(1).Info("Asking model", "model", a.modelName, "questionLength", len(question))
		answer, err := a.Ask(ctx, question)
		if err != nil {
			if ctx.Err() != nil {
				a.sayFarewell()
				return nil
			}
			return err
		}

		lipgloss.Fprintf(a.out, "\n%s\n %s\n", answerHeaderStyle.Render("AI Agent Answer:"), answer)
	}
}

// Ask sends one question with the inventory context and returns the trimmed answer.
func (a *Agent) Ask(ctx context.Context, question string) (string, error) {
	if a.llmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.llmTimeout)
		defer cancel()
	}

	resp, err := a.model.GenerateContent(ctx, Messages(a.inventory, question),
		llms.WithModel(a.modelName),
		llms.WithMaxTokens(constants.MaxTokens),
		llms.WithTemperature(constants.Temperature),
	)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion request: no choices returned")
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}

func (a *Agent) sayFarewell() {
	lipgloss.Fprintln(a.out, "\n"+farewellStyle.Render(farewell))
}

// readLines sends each input line on lines, then the scanner error (nil at EOF).
// It returns once done is closed; a read already blocked on in finishes first.
func readLines(in io.Reader, lines chan<- string, readErr chan<- error, done <-chan struct{}) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- strings.TrimRight(scanner.Text(), "\r"):
		case <-done:
			return
		}
	}
	select {
	case readErr <- scanner.Err():
	case <-done:
	}
}
