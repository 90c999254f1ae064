package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/track-analytics/internal/domain"
	"github.com/track-analytics/internal/pkg/errors"
)

// DefaultDelimiter - разделитель публикуемых файлов SNCF
const DefaultDelimiter = ';'

const utf8BOM = "\uFEFF"

func notFound(path string) error {
	return errors.ErrDatasetNotFound.WithDetails(map[string]interface{}{"path": path})
}

func parseFailure(path string, err error) error {
	return errors.ErrParseFailure.WithDetails(map[string]interface{}{
		"path":   path,
		"reason": err.Error(),
	})
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, notFound(path)
		}
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return data, nil
}

// LoadCSV читает файл с разделителем. Первая строка - заголовок, строки разной
// длины допускаются, числовые поля не проверяются: приведение делает pipeline
func LoadCSV(path string, delimiter rune) (*domain.Table, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCSV(path, bytes.NewReader(data), delimiter)
}

// ParseCSV разбирает поток в таблицу; source используется только в сообщениях
func ParseCSV(source string, r io.Reader, delimiter rune) (*domain.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return domain.NewTable(source, nil, nil), nil
	}
	if err != nil {
		return nil, parseFailure(source, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, parseFailure(source, err)
	}
	return domain.NewTable(source, header, records), nil
}

// LoadGeoJSON читает коллекцию фич
func LoadGeoJSON(path string) (*geojson.FeatureCollection, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, parseFailure(path, err)
	}
	return &fc, nil
}
