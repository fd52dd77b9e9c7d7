package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"giniplot/internal/models"
)

// presetAnswers holds values given on the command line; set values skip their prompt
type presetAnswers struct {
	country  string
	start    int
	end      int
	hasStart bool
	hasEnd   bool
}

// promptQuery asks for any answer not preset and builds a validated query
func promptQuery(in io.Reader, out io.Writer, preset presetAnswers) (models.Query, error) {
	reader := bufio.NewReader(in)

	country := preset.country
	if country == "" {
		answer, err := ask(reader, out, "Enter country code (e.g., USA): ")
		if err != nil {
			return models.Query{}, err
		}
		country = answer
	}

	start := preset.start
	if !preset.hasStart {
		year, err := askYear(reader, out, "Enter start year: ")
		if err != nil {
			return models.Query{}, err
		}
		start = year
	}

	end := preset.end
	if !preset.hasEnd {
		year, err := askYear(reader, out, "Enter end year: ")
		if err != nil {
			return models.Query{}, err
		}
		end = year
	}

	return models.NewQuery(country, start, end)
}

func ask(reader *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func askYear(reader *bufio.Reader, out io.Writer, prompt string) (int, error) {
	answer, err := ask(reader, out, prompt)
	if err != nil {
		return 0, err
	}
	year, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: year %q is not an integer", models.ErrInvalidQuery, answer)
	}
	return year, nil
}
