package bulk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sirup-monitor/internal/model"
)

// ExportBackup menulis seluruh state sebagai JSON berindentasi dua spasi.
func ExportBackup(w io.Writer, state model.AppState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(state)
}

// requiredKeys: setiap grup cukup terpenuhi oleh salah satu nama key.
var requiredKeys = [][]string{
	{model.KeyOPDs, model.LegacyKeyOPDs},
	{model.KeyProgress, model.LegacyKeyProgress},
	{model.KeySettings},
}

// RestoreBackup memvalidasi struktur dokumen lalu mengembalikan state penggantinya.
// Dokumen yang gagal validasi ditolak utuh.
func RestoreBackup(r io.Reader) (model.AppState, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return model.AppState{}, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return model.AppState{}, fmt.Errorf("%w: bukan objek JSON: %v", ErrInvalidBackup, err)
	}

	var missing []string
	for _, group := range requiredKeys {
		if !hasAny(top, group) {
			missing = append(missing, group[0])
		}
	}
	if len(missing) > 0 {
		return model.AppState{}, fmt.Errorf("%w: key wajib tidak ada: %s", ErrInvalidBackup, strings.Join(missing, ", "))
	}

	var state model.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		return model.AppState{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return state, nil
}

func hasAny(top map[string]json.RawMessage, keys []string) bool {
	for _, k := range keys {
		v, ok := top[k]
		if ok && !bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return true
		}
	}
	return false
}
