package tui

import "github.com/thenoetrevino/quadro/internal/models"

// BoardChangedMsg is sent when the store publishes a new board
type BoardChangedMsg struct {
	Board models.Board
}
