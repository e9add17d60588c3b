package document

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Decode разбирает документ и один раз нормализует длительности старых записей
func Decode(data []byte) (*domain.Document, error) {
	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	domain.NormalizeDurations(&doc)
	return &doc, nil
}

// Encode сериализует документ с отступами; nil-коллекции пишутся как []
func Encode(doc *domain.Document) ([]byte, error) {
	doc.EnsureCollections()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}
