package snapshot

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/the-markets-must-flow/internal/common"
	"github.com/Veraticus/the-markets-must-flow/internal/model"
)

// importPayload decodes only what Import needs; additional top-level
// fields in the file are ignored.
type importPayload struct {
	Sports map[string]*model.Sport `json:"sports"`
}

// Import reads a full snapshot and overlays its sports onto the store
// wholesale. The read is the single suspend point: nothing touches the
// store until the payload has been read, parsed, and validated, so a slow
// or failing read never leaves it partially updated. Any rejection wraps
// common.ErrImport inside a user-facing error and leaves the existing
// collection intact.
func (s *Serializer) Import(ctx context.Context, r io.Reader) error {
	if err := s.applySnapshot(ctx, r); err != nil {
		common.LogError(err, "import rejected", nil)
		return common.NewUserError("Error importing file", err)
	}
	return nil
}

func (s *Serializer) applySnapshot(ctx context.Context, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return common.Importf("failed to read snapshot: %v", err)
	}
	if err := ctx.Err(); err != nil {
		return common.Importf("import canceled: %v", err)
	}

	var payload importPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return common.Importf("malformed JSON: %v", err)
	}
	if payload.Sports == nil {
		return common.Importf("snapshot has no sports key")
	}

	if err := s.store.Overlay(payload.Sports); err != nil {
		return common.Importf("rejected snapshot: %v", err)
	}

	common.LogInfo("imported snapshot", common.Fields{"sports": len(payload.Sports)})
	return nil
}

// ImportFile imports a snapshot from a file the user selected.
func (s *Serializer) ImportFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return common.Importf("failed to open %s: %v", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("failed to close import file", "path", path, "error", cerr)
		}
	}()
	return s.Import(ctx, f)
}
