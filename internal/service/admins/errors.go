package admins

import "errors"

var (
	// ErrAdminNotFound возвращается, когда администратор не найден
	ErrAdminNotFound = errors.New("admin user not found")

	// ErrAdminInactive возвращается для выключенного администратора
	ErrAdminInactive = errors.New("admin user is inactive")

	// ErrOwnerRequired возвращается, когда действие доступно только владельцу
	ErrOwnerRequired = errors.New("owner role required")

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidRole возвращается при неизвестной роли
	ErrInvalidRole = errors.New("invalid role, allowed admin or owner")

	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("email already registered")

	// ErrLastOwner возвращается при попытке убрать последнего включенного владельца
	ErrLastOwner = errors.New("salon must keep at least one active owner")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
