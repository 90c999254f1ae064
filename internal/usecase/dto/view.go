package dto

import "github.com/track-analytics/internal/domain"

// ViewInfo - общая часть всех представлений: полнота данных и сообщения для пользователя
type ViewInfo struct {
	Status  domain.ViewStatus `json:"status"`
	Notices []domain.Notice   `json:"notices"`
	Cached  bool              `json:"-"`
}

// AddNotice добавляет сообщение о деградации данных
func (v *ViewInfo) AddNotice(code, message string) {
	v.Notices = append(v.Notices, domain.Notice{Code: code, Message: message})
}

// HasNotice проверяет наличие сообщения с кодом
func (v *ViewInfo) HasNotice(code string) bool {
	for _, n := range v.Notices {
		if n.Code == code {
			return true
		}
	}
	return false
}

// Finish выставляет статус: empty без строк, partial при наличии сообщений
func (v *ViewInfo) Finish(rows int) {
	if v.Notices == nil {
		v.Notices = []domain.Notice{}
	}
	switch {
	case rows == 0:
		v.Status = domain.StatusEmpty
	case len(v.Notices) > 0:
		v.Status = domain.StatusPartial
	default:
		v.Status = domain.StatusOK
	}
}

// Cacheable - представления, построенные без исходного файла или без его
// колонок, не кешируются: файл может появиться или быть исправлен позже
func (v *ViewInfo) Cacheable() bool {
	return !v.HasNotice(domain.NoticeDatasetMissing) &&
		!v.HasNotice(domain.NoticeDatasetInvalid) &&
		!v.HasNotice(domain.NoticeMissingColumns)
}
