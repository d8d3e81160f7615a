package interfaces

import (
	"context"

	"webquote/internal/domain/draft"
)

// IDraftRepository abstracts the external draft store keyed by session id.
//
// Both operations are fallible; the store only guarantees that the last
// successful save wins. Load reports found=false with a nil error when no
// draft exists for the key.
type IDraftRepository interface {
	Save(ctx context.Context, key string, s draft.Snapshot) error
	Load(ctx context.Context, key string) (s draft.Snapshot, found bool, err error)
}
