package dto

import (
	"time"

	"github.com/opms-dev/opms_backend/internal/core/domain"
)

// ArchivedItemResponse is one row of the archive screen: enough to identify
// the item and offer restore/purge.
type ArchivedItemResponse struct {
	TransactionID string     `json:"transactionID"`
	Name          string     `json:"name"`
	Branch        string     `json:"branch"`
	Kind          string     `json:"kind"` // "folder" or "child"
	Status        string     `json:"status"`
	ArchivedAt    *time.Time `json:"archivedAt,omitempty"`
}

// ToArchivedItemResponses converts archived transactions for listing.
func ToArchivedItemResponses(ts []domain.Transaction) []ArchivedItemResponse {
	items := make([]ArchivedItemResponse, len(ts))
	for i := range ts {
		kind := "child"
		if ts[i].IsFolder() {
			kind = "folder"
		}
		items[i] = ArchivedItemResponse{
			TransactionID: ts[i].TransactionID,
			Name:          ts[i].Name,
			Branch:        ts[i].Branch,
			Kind:          kind,
			Status:        string(ts[i].Status),
			ArchivedAt:    ts[i].ArchivedAt,
		}
	}
	return items
}
