package domain

// Position - географическая позиция станции
type Position struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ViewStatus - маркер полноты представления для слоя отображения
type ViewStatus string

const (
	StatusOK      ViewStatus = "ok"
	StatusPartial ViewStatus = "partial"
	StatusEmpty   ViewStatus = "empty"
)

// Notice - видимое пользователю сообщение о деградации данных
type Notice struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	NoticeDatasetMissing  = "DATASET_MISSING"
	NoticeDatasetInvalid  = "DATASET_UNREADABLE"
	NoticeMissingColumns  = "MISSING_COLUMNS"
	NoticeMissingPosition = "MISSING_POSITION"
	NoticeMissingDistance = "MISSING_DISTANCE"
	NoticeMissingLength   = "MISSING_LENGTH"
	NoticeInvalidDate     = "INVALID_DATE"
	NoticeIncompleteRows  = "INCOMPLETE_ROWS"
	NoticeNoMatch         = "NO_MATCH"
	NoticeNothingSelected = "NOTHING_SELECTED"
)
