package cartfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/craftlane/storefront-service/internal/domain"
)

// cartRecord is the persisted shape of one cart line. The product snapshot
// is nested the way presentation layers expect to read it back.
type cartRecord struct {
	Product       productRecord `json:"product"`
	Quantity      int           `json:"quantity"`
	MerchantKey   string        `json:"merchantKey"`
	MerchantLabel string        `json:"merchantLabel"`
}

type productRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description,omitempty"`
}

// SnapshotStore persists the full cart as one JSON document at a fixed path.
// Writes go through a temp file and a rename, so a crash mid-write leaves
// the previous snapshot intact.
type SnapshotStore struct {
	path string
}

func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

func (s *SnapshotStore) Save(lines []domain.CartLine) error {
	records := make([]cartRecord, 0, len(lines))
	for _, line := range lines {
		records = append(records, cartRecord{
			Product: productRecord{
				ID:          line.ProductID,
				Name:        line.Name,
				Price:       line.UnitPrice,
				ImageURL:    line.ImageURL,
				Description: line.Description,
			},
			Quantity:      line.Quantity,
			MerchantKey:   line.MerchantID,
			MerchantLabel: line.MerchantLabel,
		})
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding cart snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("writing cart snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing cart snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot back. A missing file is an empty cart; a corrupt
// payload is reported as an error and the caller decides the fallback.
func (s *SnapshotStore) Load() ([]domain.CartLine, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cart snapshot: %w", err)
	}

	var records []cartRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decoding cart snapshot: %w", err)
	}

	lines := make([]domain.CartLine, 0, len(records))
	for _, rec := range records {
		if rec.Product.ID == "" || rec.Quantity < 1 {
			continue
		}
		lines = append(lines, domain.CartLine{
			ProductID:     rec.Product.ID,
			Name:          rec.Product.Name,
			UnitPrice:     rec.Product.Price,
			ImageURL:      rec.Product.ImageURL,
			Description:   rec.Product.Description,
			Quantity:      rec.Quantity,
			MerchantID:    rec.MerchantKey,
			MerchantLabel: rec.MerchantLabel,
		})
	}
	return lines, nil
}
