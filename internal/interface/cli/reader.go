// Package cli implements the interactive console interface for CGPA Tracker.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ══════════════════════════════════════════════════════════════════════════════
// BOUNDED INPUT READER
// Повторяет цикл "подсказка -> чтение -> проверка", пока не придёт числовое
// значение в диапазоне [min, max]. Некорректный токен отбрасывается и чтение
// повторяется. Чтение блокирующее и синхронное.
// ══════════════════════════════════════════════════════════════════════════════

// invalidInputMsg is printed after every rejected token.
const invalidInputMsg = "Invalid input. Please try again."

// Reader reads whitespace-separated numeric tokens from an input stream.
type Reader struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewReader creates a Reader over in, echoing prompts to out.
func NewReader(in io.Reader, out io.Writer) *Reader {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc, out: out}
}

// ReadInt reads an integer in [min, max] inclusive. It loops until a valid
// value arrives and returns io.EOF only when the input stream is exhausted.
func (r *Reader) ReadInt(prompt string, min, max int) (int, error) {
	for {
		token, err := r.next(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(token)
		if err != nil || v < min || v > max {
			fmt.Fprintln(r.out, invalidInputMsg)
			continue
		}
		return v, nil
	}
}

// ReadFloat reads a float in [min, max] inclusive, with the same retry loop
// as ReadInt.
func (r *Reader) ReadFloat(prompt string, min, max float64) (float64, error) {
	for {
		token, err := r.next(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil || v < min || v > max {
			fmt.Fprintln(r.out, invalidInputMsg)
			continue
		}
		return v, nil
	}
}

// next prints the prompt and reads one token.
func (r *Reader) next(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(r.out, prompt)
	}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.sc.Text(), nil
}
