package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/xavierca1/ligue-cursos/internal/entity"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// FileStore persiste un Lead por archivo JSON, con escritura atómica
// (rename-into-place). Una lectura fallida entrega un lead limpio con
// warning; una escritura fallida se reintenta una vez y queda no fatal.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error al crear directorio de sesiones: %w", err)
	}
	return &FileStore{Dir: dir}, nil
}

func (s *FileStore) path(userID string) string {
	safe := unsafeChars.ReplaceAllString(userID, "_")
	return filepath.Join(s.Dir, safe+".json")
}

func (s *FileStore) Load(ctx context.Context, userID string) (*entity.Lead, error) {
	raw, err := os.ReadFile(s.path(userID))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ SessionStore: lectura falló para %s, arrancando limpio: %v", userID, err)
		}
		return entity.NewLead(userID), nil
	}

	var lead entity.Lead
	if err := json.Unmarshal(raw, &lead); err != nil {
		log.Printf("⚠️ SessionStore: sesión corrupta para %s, arrancando limpio: %v", userID, err)
		return entity.NewLead(userID), nil
	}
	return &lead, nil
}

func (s *FileStore) Save(ctx context.Context, lead *entity.Lead) error {
	if err := s.write(lead); err != nil {
		log.Printf("⚠️ SessionStore: escritura falló para %s, reintentando: %v", lead.UserID, err)
		if err := s.write(lead); err != nil {
			return fmt.Errorf("error al persistir sesión de %s: %w", lead.UserID, err)
		}
	}
	return nil
}

func (s *FileStore) write(lead *entity.Lead) error {
	raw, err := json.MarshalIndent(lead, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.Dir, "lead-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, s.path(lead.UserID))
}

// Reset borra el registro; el próximo Load entrega un lead inicial.
func (s *FileStore) Reset(ctx context.Context, userID string) error {
	err := os.Remove(s.path(userID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error al reiniciar sesión de %s: %w", userID, err)
	}
	return nil
}

// PendingEscalations lista los leads marcados pending_escalation para que
// el reconciliador reintente la notificación al asesor.
func (s *FileStore) PendingEscalations(ctx context.Context) ([]*entity.Lead, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("error al listar sesiones: %w", err)
	}

	var pending []*entity.Lead
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.Dir, e.Name()))
		if err != nil {
			continue
		}
		var lead entity.Lead
		if err := json.Unmarshal(raw, &lead); err != nil {
			continue
		}
		if lead.PendingEscalation {
			pending = append(pending, &lead)
		}
	}
	return pending, nil
}
