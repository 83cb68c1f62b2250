package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/showdown/poker"
)

// parseHands parses one hand per argument, e.g. "6C 7C 8C 9C TC"
func parseHands(args []string) ([]poker.Hand, error) {
	hands := make([]poker.Hand, 0, len(args))
	for i, arg := range args {
		h, err := poker.ParseHandString(arg)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands = append(hands, h)
	}
	return hands, nil
}

// readHands parses one hand per line. Blank lines and lines starting with
// # are skipped.
func readHands(r io.Reader) ([]poker.Hand, error) {
	var hands []poker.Hand
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		h, err := poker.ParseHandString(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		hands = append(hands, h)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hands: %w", err)
	}
	return hands, nil
}

// collectHands gathers hands from arguments and, when file is set, from
// that file ("-" reads stdin). Argument hands come first.
func collectHands(args []string, file string, stdin io.Reader) ([]poker.Hand, error) {
	hands, err := parseHands(args)
	if err != nil {
		return nil, err
	}
	if file == "" {
		return hands, nil
	}

	r := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	fromFile, err := readHands(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return append(hands, fromFile...), nil
}
