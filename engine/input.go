package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"battle/game"
)

type readerInput struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

// NewReaderInput reads one key per line from r. If prompt is not nil the
// acting character is announced on it before every read.
func NewReaderInput(r io.Reader, prompt io.Writer) Input {
	return &readerInput{
		scanner: bufio.NewScanner(r),
		prompt:  prompt,
	}
}

func (in *readerInput) Next(actor *game.Character) (game.Action, error) {
	if in.prompt != nil {
		fmt.Fprintf(in.prompt, "%s vs %s, [A]ttack or [S]pecial? ", actor, actor.Enemy())
	}
	if !in.scanner.Scan() {
		if err := in.scanner.Err(); err != nil {
			return game.NoOp, fmt.Errorf("failed to read input: %w", err)
		}
		return game.NoOp, io.EOF
	}
	return game.ParseAction(strings.TrimSpace(in.scanner.Text())), nil
}
