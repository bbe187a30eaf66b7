package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// SyncRequest carries one designer's inputs for a catalog sync. Name and
// ImagePath come from the command line; Bio and URLs are optional and
// usually resolved from the shared spreadsheet.
type SyncRequest struct {
	Name      string `validate:"required,strNotEmpty"`
	ImagePath string `validate:"required"`
	Bio       string
	URLs      []string
}

// Synchronizer creates or updates designer records on disk. The avatar
// and metadata files are rewritten on every sync; the bio fragment only
// when there is new content or no fragment exists yet.
type Synchronizer struct {
	Avatar *AvatarProcessor
	Logger *zap.SugaredLogger
}

func NewSynchronizer(logger *zap.SugaredLogger, avatarMaxSize int) *Synchronizer {
	avatar := NewAvatarProcessor(logger)
	if avatarMaxSize > 0 {
		avatar.MaxSize = avatarMaxSize
	}
	return &Synchronizer{Avatar: avatar, Logger: logger}
}

// Sync writes the designer's record under designersDir. Writes are
// whole-file replacements with no rollback: a failure partway through can
// leave the record half updated, and rerunning the sync is the fix.
func (s *Synchronizer) Sync(designersDir string, req SyncRequest) error {
	key := DirectoryKey(req.Name)
	designerDir := filepath.Join(designersDir, key)

	if _, err := os.Stat(designerDir); os.IsNotExist(err) {
		s.Logger.Infof("%s isn't in catalog. Creating new dir %s", req.Name, designerDir)
	}
	if err := os.MkdirAll(designerDir, 0755); err != nil {
		return fmt.Errorf("failed to create designer directory: %w", err)
	}

	s.Logger.Infof("processing image %s", req.ImagePath)
	thumb, err := s.Avatar.Process(req.ImagePath)
	if err != nil {
		return err
	}
	avatarFile := filepath.Join(designerDir, key+".png")
	if err := imaging.Save(thumb, avatarFile); err != nil {
		return fmt.Errorf("failed to save avatar: %w", err)
	}

	s.Logger.Infof("generating %s", InfoFileName)
	info, err := NewDesignerInfo(req.Name, filepath.Base(avatarFile)).Marshal()
	if err != nil {
		return fmt.Errorf("failed to serialize designer info: %w", err)
	}
	if err := os.WriteFile(filepath.Join(designerDir, InfoFileName), info, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", InfoFileName, err)
	}

	bioFile := filepath.Join(designerDir, BioFileName)
	html, ok := RenderBio(req.Bio, req.URLs, fileExists(bioFile))
	if !ok {
		s.Logger.Infof("skipping %s: no bio text supplied but the file already exists", BioFileName)
		return nil
	}
	if req.Bio == "" {
		s.Logger.Infof("please manually update the %s file", BioFileName)
	} else {
		s.Logger.Infof("generating %s", BioFileName)
	}
	if err := os.WriteFile(bioFile, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", BioFileName, err)
	}

	return nil
}

func fileExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.Mode().IsRegular()
}
