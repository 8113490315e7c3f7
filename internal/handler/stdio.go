package handler

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// ServeStdio reads newline-delimited JSON-RPC messages from in and writes
// responses to out, one message at a time, until in is exhausted or ctx is
// done.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := make(chan []byte)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		r := bufio.NewReader(in)
		for {
			line, err := r.ReadBytes('\n')
			if len(bytes.TrimSpace(line)) > 0 {
				select {
				case lines <- line:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					readErr <- err
				}
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return fmt.Errorf("failed to read stdin: %w", err)
				default:
					return nil
				}
			}

			if !json.Valid(line) {
				s.dispatcher.logger.Warn("discarding malformed message", zap.Int("bytes", len(line)))
				continue
			}

			resp := s.HandleMessage(ctx, bytes.TrimSpace(line))
			if resp == nil {
				continue
			}

			b, err := json.Marshal(resp)
			if err != nil {
				return fmt.Errorf("failed to encode response: %w", err)
			}
			if _, err := out.Write(append(b, '\n')); err != nil {
				return fmt.Errorf("failed to write response: %w", err)
			}
		}
	}
}
