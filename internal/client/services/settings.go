package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/nvxprofile/internal/client/models"
	"github.com/dmitrijs2005/nvxprofile/internal/client/storage"
	"github.com/dmitrijs2005/nvxprofile/internal/common"
	"github.com/dmitrijs2005/nvxprofile/internal/filex"
	"github.com/dmitrijs2005/nvxprofile/internal/logging"
	"github.com/google/uuid"
)

// AppVersion is shown in the About row.
const AppVersion = "1.0.0"

// SettingsService backs the settings screen and the test history.
type SettingsService struct {
	repos *storage.Repositories
	log   logging.Logger
	now   func() time.Time
}

func NewSettingsService(repos *storage.Repositories, log logging.Logger) *SettingsService {
	return &SettingsService{repos: repos, log: log, now: time.Now}
}

// Open returns fresh toggle state for a visit to the settings screen.
// Toggles are not persisted.
func (s *SettingsService) Open() models.Settings {
	return models.DefaultSettings()
}

// Sections lists the settings screen rows for the given toggle state.
func (s *SettingsService) Sections(st models.Settings) []models.SettingsSection {
	return []models.SettingsSection{
		{
			Title: "General",
			Items: []models.SettingsItem{
				{Label: "Notifications " + onOff(st.Notifications), Description: "Receive alerts for analysis results and health updates", Command: "toggle notifications"},
				{Label: "Language", Description: "English (US)"},
			},
		},
		{
			Title: "Privacy & Security",
			Items: []models.SettingsItem{
				{Label: "Data Privacy", Description: "Manage how your health data is stored and processed"},
				{Label: "Change Password", Description: "Update your account password"},
				{Label: "Biometric Settings", Description: "Manage fingerprint and face scan enrollment"},
				{Label: "Data Sharing " + onOff(st.DataSharing), Description: "Share anonymized data for research improvements", Command: "toggle sharing"},
			},
		},
		{
			Title: "Data Management",
			Items: []models.SettingsItem{
				{Label: "Export Data", Description: "Download all your health analysis data as a file", Command: "export <path>"},
				{Label: "Clear History", Description: "Remove all past test records and analysis data", Command: "clearhistory"},
			},
		},
		{
			Title: "Support",
			Items: []models.SettingsItem{
				{Label: "Help & FAQ", Description: "Common questions and troubleshooting guides", Command: "help"},
				{Label: "About Neuro-Vitals", Description: "Version " + AppVersion + ", AI-powered biometric health platform"},
			},
		},
		{
			Title: "Danger Zone",
			Items: []models.SettingsItem{
				{Label: "Log Out", Description: "Sign out of your account on this device", Command: "logout"},
				{Label: "Delete Account", Description: "Permanently delete your account and all associated data", Command: "delete"},
			},
		},
	}
}

func onOff(v bool) string {
	if v {
		return "[on]"
	}
	return "[off]"
}

// ClearHistory removes the whole test history, for every user.
func (s *SettingsService) ClearHistory(ctx context.Context) error {
	if err := s.repos.History.Clear(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "test history cleared")
	return nil
}

// RecordTest appends a result for the logged-in user.
func (s *SettingsService) RecordTest(ctx context.Context, kind string, score float64) (models.TestRecord, error) {
	userID, err := s.currentUser(ctx)
	if err != nil {
		return models.TestRecord{}, err
	}

	rec := models.TestRecord{
		ID:      uuid.NewString(),
		UserID:  userID,
		Kind:    kind,
		Score:   score,
		TakenAt: s.now().UTC(),
	}
	if err := s.repos.History.Append(ctx, rec); err != nil {
		return models.TestRecord{}, err
	}
	return rec, nil
}

// History returns the stored test records.
func (s *SettingsService) History(ctx context.Context) ([]models.TestRecord, error) {
	return s.repos.History.List(ctx)
}

// Export writes the logged-in user's data to w as indented JSON. Password
// fields are left out.
func (s *SettingsService) Export(ctx context.Context, w io.Writer) error {
	userID, err := s.currentUser(ctx)
	if err != nil {
		return err
	}

	user, err := s.repos.Users.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", userID, common.ErrorNotFound)
	}
	avatar, err := s.repos.Avatars.Get(ctx, userID)
	if err != nil {
		return err
	}
	mode, err := s.repos.Theme.Get(ctx)
	if err != nil {
		return err
	}
	recs, err := s.repos.History.List(ctx)
	if err != nil {
		return err
	}

	bundle := models.ExportBundle{
		ExportedAt: s.now().UTC(),
		User:       user.Public(),
		Avatar:     avatar,
		Theme:      mode,
		History:    make([]models.TestRecord, 0, len(recs)),
	}
	for _, r := range recs {
		if r.UserID == "" || r.UserID == userID {
			bundle.History = append(bundle.History, r)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(bundle)
}

// ExportFile writes the export to path, creating its directory. The file
// is replaced only once the whole export has been built and written.
func (s *SettingsService) ExportFile(ctx context.Context, path string) error {
	var buf bytes.Buffer
	if err := s.Export(ctx, &buf); err != nil {
		return err
	}

	dir, err := filex.EnsureParentDir(path)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(dir, path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	s.log.Info(ctx, "data exported", "path", path)
	return nil
}

// writeFileAtomic writes data to a temp file in dir and renames it over path.
func writeFileAtomic(dir, path string, data []byte) error {
	f, err := os.CreateTemp(dir, ".nvx-export-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func (s *SettingsService) currentUser(ctx context.Context) (string, error) {
	userID, err := s.repos.Session.Current(ctx)
	if err != nil {
		return "", err
	}
	if userID == "" {
		return "", common.ErrUnauthenticated
	}
	return userID, nil
}
