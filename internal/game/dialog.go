package game

import (
	"errors"

	"github.com/ncruces/zenity"
)

// dialogs are the blocking native windows the game opens.
type dialogs interface {
	// Error shows msg and waits for the user to dismiss it.
	Error(msg string) error
	// SavePath asks where to write a file. An empty path means canceled.
	SavePath(suggested string) (string, error)
}

type zenityDialogs struct{}

func (zenityDialogs) Error(msg string) error {
	err := zenity.Error(msg, zenity.Title("Error"), zenity.ErrorIcon)
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	return err
}

func (zenityDialogs) SavePath(suggested string) (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename(suggested),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return path, nil
}
