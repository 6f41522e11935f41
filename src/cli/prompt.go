package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrInvalidChoice is returned for an unrecognized answer to the prompt.
var ErrInvalidChoice = errors.New("invalid choice")

type mode int

const (
	modeReorder mode = iota
	modeShuffle
)

func parseChoice(answer string) (mode, error) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "r":
		return modeReorder, nil
	case "s":
		return modeShuffle, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, answer)
}

// parseChunkSize returns the chunk size in `answer` or `fallback` when it is
// not a positive integer.
func parseChunkSize(answer string, fallback int) int {
	size, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || size < 1 {
		return fallback
	}
	return size
}

// runInteractive asks what to do on the command's input. An invalid choice is
// reported to the user and is not an error.
func (a *app) runInteractive(cmd *cobra.Command, _ []string) error {
	var (
		in  = bufio.NewReader(cmd.InOrStdin())
		out = cmd.OutOrStdout()
		ctx = cmd.Context()
	)

	fmt.Fprint(out, "Do you want to reorder the queue (R) or shuffle albums (S)? ")
	choice, err := parseChoice(readLine(in))
	if err != nil {
		a.logger.Debug("prompt answered", zap.Error(err))
		fmt.Fprintln(out, "Invalid choice. Exiting.")
		return nil
	}

	switch choice {
	case modeReorder:
		fmt.Fprintf(out, "Enter chunk size (default %d): ", a.cfg.ChunkSize)
		chunkSize := parseChunkSize(readLine(in), a.cfg.ChunkSize)
		if err := a.reorder(ctx, chunkSize); err != nil {
			return err
		}
		fmt.Fprintln(out, reorderedMessage)
	case modeShuffle:
		if err := a.shuffle(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, shuffledMessage)
	}

	return nil
}

// readLine returns the next line without its line ending. The end of input is
// an empty line.
func readLine(in *bufio.Reader) string {
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}
