package document

import "errors"

var (
	// ErrRead возвращается при ошибке чтения документа из хранилища
	ErrRead = errors.New("document.store: failed to read document")

	// ErrDecode возвращается, когда содержимое хранилища не является корректным документом
	ErrDecode = errors.New("document.store: failed to decode document")

	// ErrEncode возвращается при ошибке сериализации документа
	ErrEncode = errors.New("document.store: failed to encode document")

	// ErrWrite возвращается при ошибке записи документа
	ErrWrite = errors.New("document.store: failed to write document")

	// ErrConcurrentUpdate возвращается, когда документ изменился между чтением и записью
	ErrConcurrentUpdate = errors.New("document.store: concurrent update")

	// ErrSeed возвращается при ошибке первичного заполнения
	ErrSeed = errors.New("document.store: seed failed")
)
