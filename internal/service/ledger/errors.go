package ledger

import "errors"

var (
	// ErrDuplicateID возвращается при попытке добавить резервацию с уже
	// существующим ID
	ErrDuplicateID = errors.New("ledger: reservation id already exists")
)
