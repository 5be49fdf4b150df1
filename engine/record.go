package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"einstein/game"
)

// WriteRecord writes the move log of a game: the player name, the dice
// sequence, the target, the starting positions, then the positions after
// every move played. Passed turns add no line.
func WriteRecord(w io.Writer, player string, level *game.Level, history []Turn) error {
	bw := bufio.NewWriter(w)

	dice := make([]string, len(level.Dice))
	for i, die := range level.Dice {
		dice[i] = strconv.Itoa(die)
	}
	fmt.Fprintln(bw, player)
	fmt.Fprintln(bw, strings.Join(dice, " "))
	fmt.Fprintln(bw, level.Target)
	fmt.Fprintln(bw, level.Positions)
	for _, turn := range history {
		if turn.Move == game.NoMove {
			continue
		}
		fmt.Fprintln(bw, turn.Positions)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write move record: %w", err)
	}
	return nil
}

// WriteRecordFile writes the move log to path, replacing any existing file.
func WriteRecordFile(path, player string, level *game.Level, history []Turn) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move record: %w", err)
	}
	defer f.Close()

	return WriteRecord(f, player, level, history)
}
