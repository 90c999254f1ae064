package errors

import "net/http"

const (
	CodeDatasetNotFound    = "DATASET_NOT_FOUND"
	CodeParseFailure       = "PARSE_FAILURE"
	CodeMissingColumns     = "MISSING_COLUMNS"
	CodeConfigurationError = "CONFIGURATION_ERROR"
	CodeInvalidRequest     = "INVALID_REQUEST"
)

var (
	// ErrDatasetNotFound - исходный файл отсутствует; use case отдаёт пустое представление
	ErrDatasetNotFound = New(
		CodeDatasetNotFound,
		"Dataset file not found",
		http.StatusNotFound,
	)

	// ErrParseFailure - файл существует, но его структура не читается
	ErrParseFailure = New(
		CodeParseFailure,
		"Dataset could not be parsed",
		http.StatusUnprocessableEntity,
	)

	// ErrMissingColumns - в файле нет колонок, без которых представление не построить
	ErrMissingColumns = New(
		CodeMissingColumns,
		"Dataset is missing required columns",
		http.StatusUnprocessableEntity,
	)

	// ErrConfiguration - вызывающая сторона запросила неизвестную опцию фильтра
	ErrConfiguration = New(
		CodeConfigurationError,
		"Undefined filter option requested",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
