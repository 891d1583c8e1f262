// Package agent implements an interactive AI assistant that answers
// questions about the user's portfolio, grounded on the rendered reports.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	reports string
	chat    *genai.Chat
}

// New creates a new Agent. reports is the markdown dump of the portfolio's
// current state, given to the model as grounding context.
//
// It takes an io.Writer for the agent's output (e.g., os.Stdout), and an
// io.Reader for user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, reports string) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		reports: reports,
	}
}

// Start creates the chat session.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
		You are a financial analyst assisting the owner of a personal investment
		portfolio. The full current reports of the portfolio are given below.
		Ground every figure you quote in those reports; use search for market
		news about the tickers held. You are not licensed to give personal
		financial advice, present observations and let the user decide.

		` + a.reports}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends a single question and returns the answer text.
func (a *Agent) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the assistant")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent. Any prompts given
// are played before reading from the user.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to pft assist. Type 'bye' to exit.")

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
