package snapshot

import "errors"

var (
	// ErrRead возвращается при ошибке чтения из хранилища
	ErrRead = errors.New("snapshot.store: failed to read key")

	// ErrWrite возвращается при ошибке записи в хранилище
	ErrWrite = errors.New("snapshot.store: failed to write key")

	// ErrEncode возвращается при ошибке сериализации снапшота
	ErrEncode = errors.New("snapshot.store: failed to encode snapshot")

	// ErrSessionNotFound возвращается, когда сессия пользователя не сохранена
	ErrSessionNotFound = errors.New("snapshot.store: user session not found")
)
