// Package snake prompts for items on the terminal, for submitting without
// typing every description as an argument.
package snake

import (
	"errors"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
)

const (
	choiceOther = "Other…"
	choiceDone  = "Done"
)

// ErrAborted is returned when the user interrupts the prompt.
var ErrAborted = errors.New("snake: prompt aborted")

// Prompter collects item descriptions interactively.
type Prompter struct {
	Quick  []string
	Stdin  io.Reader
	Stdout io.Writer
}

// Items loops until the user picks Done, offering the quick items, a free
// form entry and Done. It returns the descriptions in the order chosen.
func (p *Prompter) Items() ([]string, error) {
	var picked []string
	choices := append(append([]string{}, p.Quick...), choiceOther, choiceDone)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "➜  {{ . | bold }}",
		Inactive: "   {{ . }}",
		Selected: "{{ . | green }}",
	}

	for {
		sel := promptui.Select{
			HideHelp:  true,
			Label:     label(picked),
			Items:     choices,
			Templates: templates,
			Size:      10,
			Stdin:     io.NopCloser(p.Stdin),
			Stdout:    nopWriteCloser{p.Stdout},
		}
		i, _, err := sel.Run()
		if err != nil {
			return picked, abort(err)
		}

		switch choices[i] {
		case choiceDone:
			return picked, nil
		case choiceOther:
			desc, err := p.describe()
			if err != nil {
				return picked, abort(err)
			}
			picked = append(picked, desc)
		default:
			picked = append(picked, choices[i])
		}
	}
}

func (p *Prompter) describe() (string, error) {
	prompt := promptui.Prompt{
		Label:    "Item",
		Validate: validate,
		Templates: &promptui.PromptTemplates{
			Prompt:  "{{ . }}: ",
			Valid:   "{{ . | green }}: ",
			Invalid: "{{ . | red }}: ",
			Success: "{{ . | bold }}: ",
		},
		Stdin:  io.NopCloser(p.Stdin),
		Stdout: nopWriteCloser{p.Stdout},
	}
	desc, err := prompt.Run()
	return strings.TrimSpace(desc), err
}

func validate(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("empty")
	}
	return nil
}

func label(picked []string) string {
	if len(picked) == 0 {
		return "Add an item"
	}
	return "Add another (" + strings.Join(picked, ", ") + ")"
}

func abort(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrAborted
	}
	return err
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
