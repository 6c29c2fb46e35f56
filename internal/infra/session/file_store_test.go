package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/ligue-cursos/internal/entity"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)

	lead := entity.NewLead("12345")
	lead.ChatID = 100
	lead.Name = "Ana"
	lead.Email = "ana@ejemplo.com"
	lead.Stage = entity.StageExploring
	lead.SelectedCourseID = "ia-chatgpt"
	lead.InterestScore = 72
	lead.AcceptPrivacy(time.Now())
	lead.AppendHistory("hola", "bienvenida", time.Now())

	assert.NoError(t, store.Save(ctx, lead))

	loaded, err := store.Load(ctx, "12345")
	assert.NoError(t, err)
	assert.Equal(t, lead.UserID, loaded.UserID)
	assert.Equal(t, lead.ChatID, loaded.ChatID)
	assert.Equal(t, lead.Name, loaded.Name)
	assert.Equal(t, lead.Email, loaded.Email)
	assert.Equal(t, lead.Stage, loaded.Stage)
	assert.Equal(t, lead.SelectedCourseID, loaded.SelectedCourseID)
	assert.Equal(t, lead.InterestScore, loaded.InterestScore)
	assert.True(t, loaded.PrivacyAccepted)
	assert.Len(t, loaded.History, 1)
	assert.Equal(t, "hola", loaded.History[0].Inbound)
}

func TestFileStoreUsuarioDesconocidoEntregaLeadLimpio(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)

	lead, err := store.Load(context.Background(), "nunca-visto")
	assert.NoError(t, err)
	assert.Equal(t, "nunca-visto", lead.UserID)
	assert.Equal(t, entity.StageNew, lead.Stage)
}

func TestFileStoreSesionCorruptaEntregaLeadLimpio(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "roto.json"), []byte("{truncado"), 0o644))

	lead, err := store.Load(context.Background(), "roto")
	assert.NoError(t, err)
	assert.Equal(t, entity.StageNew, lead.Stage)
	assert.Empty(t, lead.Name)
}

func TestFileStoreResetBorraElRegistro(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)

	lead := entity.NewLead("u1")
	lead.Name = "Ana"
	lead.Stage = entity.StageExploring
	assert.NoError(t, store.Save(ctx, lead))

	assert.NoError(t, store.Reset(ctx, "u1"))

	loaded, err := store.Load(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, entity.StageNew, loaded.Stage)
	assert.Empty(t, loaded.Name)

	// Reset de un usuario inexistente no es error
	assert.NoError(t, store.Reset(ctx, "fantasma"))
}

func TestFileStoreSanitizaUserID(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	assert.NoError(t, err)

	lead := entity.NewLead("../../etc/passwd")
	assert.NoError(t, store.Save(ctx, lead))

	// El archivo queda dentro del directorio, con el id saneado
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "/")

	loaded, err := store.Load(ctx, "../../etc/passwd")
	assert.NoError(t, err)
	assert.Equal(t, "../../etc/passwd", loaded.UserID)
}

func TestFileStorePendingEscalations(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)

	normal := entity.NewLead("u1")
	pendiente := entity.NewLead("u2")
	pendiente.PendingEscalation = true
	assert.NoError(t, store.Save(ctx, normal))
	assert.NoError(t, store.Save(ctx, pendiente))

	pending, err := store.PendingEscalations(ctx)
	assert.NoError(t, err)
	if assert.Len(t, pending, 1) {
		assert.Equal(t, "u2", pending[0].UserID)
	}
}
