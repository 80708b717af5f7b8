package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены
	// (пользователь без предпочтений, отсутствие подходящего вопроса и т.д.).
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных
	// (отсутствующий user_id, пустой feedback).
	ErrValidation = errors.New("validation failed")

	// ErrNoActiveQuestion используется, когда фидбек приходит для пользователя,
	// которому ещё не был выдан вопрос (нет current_question в состоянии).
	ErrNoActiveQuestion = errors.New("no active question for user")

	// ErrDatasetUnavailable используется при сбоях ввода-вывода хранилища датасетов
	// (сеть, таймаут, недоступность базы).
	ErrDatasetUnavailable = errors.New("dataset store unavailable")

	// ErrDatasetMalformed используется, когда строка датасета не содержит
	// обязательных полей или их невозможно распарсить.
	ErrDatasetMalformed = errors.New("dataset row malformed")

	// ErrUnauthorized используется для ошибок авторизации на админских маршрутах.
	ErrUnauthorized = errors.New("unauthorized")
)
