package files

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

// PhotoArchive скачивает одобренные фото в локальную папку,
// чтобы их можно было опубликовать в канале.
type PhotoArchive struct {
	botAPI *tgbotapi.BotAPI
	dir    string
}

func NewPhotoArchive(botAPI *tgbotapi.BotAPI, dir string) (*PhotoArchive, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("PhotoArchive: cannot create dir %s: %w", dir, err)
	}

	return &PhotoArchive{
		botAPI: botAPI,
		dir:    dir,
	}, nil
}

func (a *PhotoArchive) ArchivePhoto(fileID string) (string, error) {
	file, err := a.botAPI.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("PhotoArchive.ArchivePhoto: cannot get file: %w", err)
	}

	fileExt := filepath.Ext(file.FilePath)
	if fileExt == "" {
		fileExt = ".jpg"
	}

	fileName := fmt.Sprintf("%s%s", uuid.New().String(), fileExt)
	filePath := filepath.Join(a.dir, fileName)

	resp, err := http.Get(file.Link(a.botAPI.Token))
	if err != nil {
		return "", fmt.Errorf("PhotoArchive.ArchivePhoto: cannot download file: %w", err)
	}

	defer resp.Body.Close()

	out, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("PhotoArchive.ArchivePhoto: cannot create file: %w", err)
	}

	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	if err != nil {
		return "", fmt.Errorf("PhotoArchive.ArchivePhoto: cannot save file: %w", err)
	}

	return filePath, nil
}
