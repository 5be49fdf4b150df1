package game

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Level is a puzzle: which piece to deliver, where the pieces start and the
// predetermined dice rolls.
type Level struct {
	Target    int
	Positions Positions
	Dice      []int
}

// LoadLevel reads a level file from disk.
func LoadLevel(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open level file: %w", err)
	}
	defer f.Close()

	level, err := ParseLevel(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse level file %s: %w", path, err)
	}
	return level, nil
}

// ParseLevel reads whitespace-separated integers: the target piece, the six
// starting cells, then the dice sequence.
func ParseLevel(r io.Reader) (*Level, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var values []int
	for scanner.Scan() {
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("invalid token %q: %w", scanner.Text(), err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read level: %w", err)
	}
	if len(values) < 1+Pieces {
		return nil, fmt.Errorf("level has %d values, need at least %d", len(values), 1+Pieces)
	}

	target := values[0]
	if err := ValidateTarget(target); err != nil {
		return nil, err
	}
	positions, err := NewPositions(values[1 : 1+Pieces])
	if err != nil {
		return nil, err
	}
	if IsTerminalLoss(positions, target) {
		return nil, fmt.Errorf("%w: target piece %d starts captured", ErrInvalidPositions, target)
	}
	dice := values[1+Pieces:]
	for _, die := range dice {
		if err := ValidateDie(die); err != nil {
			return nil, err
		}
	}

	return &Level{
		Target:    target,
		Positions: positions,
		Dice:      dice,
	}, nil
}
