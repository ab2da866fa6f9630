package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// KeyboardInput reads one answer per line.
type KeyboardInput struct {
	scanner *bufio.Scanner
}

func NewKeyboardInput(r io.Reader) *KeyboardInput {
	return &KeyboardInput{
		scanner: bufio.NewScanner(r),
	}
}

// ReadString returns the next non-empty line. io.EOF is returned once the input is closed.
func (that *KeyboardInput) ReadString() (string, error) {
	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	value := strings.TrimSpace(that.scanner.Text())
	if value == "" {
		return "", apperror.ErrEmptyInput
	}

	return value, nil
}

func (that *KeyboardInput) ReadInt() (int, error) {
	value, err := that.ReadString()
	if err != nil {
		return 0, err
	}

	number, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrNotInteger, value)
	}

	return number, nil
}
