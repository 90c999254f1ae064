package domain

import "strings"

// Table - разобранный табличный файл: заголовок и строки в исходном порядке
type Table struct {
	Source  string
	Columns []string
	Records [][]string
	index   map[string]int
}

// NewTable строит таблицу и индекс колонок. Дубликаты имён колонок: побеждает первая
func NewTable(source string, columns []string, records [][]string) *Table {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		name := strings.TrimSpace(c)
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	return &Table{
		Source:  source,
		Columns: columns,
		Records: records,
		index:   idx,
	}
}

// Len возвращает количество строк без заголовка
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// HasColumn проверяет наличие колонки
func (t *Table) HasColumn(column string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[column]
	return ok
}

// MissingColumns возвращает колонки из списка, которых нет в заголовке, в порядке списка
func (t *Table) MissingColumns(columns ...string) []string {
	var missing []string
	for _, c := range columns {
		if t == nil || !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// Value возвращает обрезанное значение ячейки. Отсутствующая колонка или короткая строка дают ""
func (t *Table) Value(row int, column string) string {
	i, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.Records) {
		return ""
	}
	rec := t.Records[row]
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
