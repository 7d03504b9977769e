package adminuser

import "errors"

var (
	// ErrAdminUserNotFound возвращается, когда администратор не найден
	ErrAdminUserNotFound = errors.New("adminuser.repository: admin user not found")

	// ErrEmailTaken возвращается, когда email уже занят другим администратором
	ErrEmailTaken = errors.New("adminuser.repository: email already registered")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("adminuser.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("adminuser.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("adminuser.repository: failed to scan row")
)
