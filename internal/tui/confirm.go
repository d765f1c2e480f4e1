package tui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when a user cancels an interactive prompt.
var ErrAborted = errors.New("aborted by user")

// ConfirmLogout asks whether the stored key for displayName should be removed.
func ConfirmLogout(displayName string, accessible bool) (bool, error) {
	confirm := false
	field := huh.NewConfirm().
		Title("Remove the stored " + displayName + " API key?").
		Affirmative("Yes, remove").
		Negative("Cancel").
		Value(&confirm)

	if err := huh.NewForm(huh.NewGroup(field)).WithAccessible(accessible).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrAborted
		}
		return false, err
	}
	return confirm, nil
}
