package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"sync"
	"time"

	// decoders recognised by image.DecodeConfig
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/avatars"
	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/session"
	"github.com/dmitrijs2005/nvxprofile/internal/common"
	"github.com/dmitrijs2005/nvxprofile/internal/logging"
)

// MaxAvatarBytes bounds the size of an uploaded image.
const MaxAvatarBytes = 5 << 20

// UploadResult is delivered by AvatarService.UploadAsync.
type UploadResult struct {
	DataURL string
	Err     error
}

// AvatarService turns an image into a data URL and stores it for the
// logged-in user.
//
// Uploads are numbered as they start. Starting an upload cancels the one
// before it, and only the most recently started upload may store its
// result; older ones finish with common.ErrUploadSuperseded.
type AvatarService struct {
	session session.Repository
	avatars avatars.Repository
	timeout time.Duration
	log     logging.Logger

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// NewAvatarService builds the service. A zero timeout disables the bound.
func NewAvatarService(sess session.Repository, avatars avatars.Repository, timeout time.Duration, log logging.Logger) *AvatarService {
	return &AvatarService{session: sess, avatars: avatars, timeout: timeout, log: log}
}

// Upload reads and decodes file, then stores it as the current user's
// avatar. A nil file does nothing.
func (s *AvatarService) Upload(ctx context.Context, file io.Reader) (string, error) {
	if file == nil {
		return "", nil
	}

	userID, err := s.session.Current(ctx)
	if err != nil {
		return "", err
	}
	if userID == "" {
		return "", common.ErrUnauthenticated
	}

	ctx, gen := s.begin(ctx)
	defer s.finish(gen)

	dataURL, err := decodeAvatar(ctx, file)
	if err != nil {
		if s.superseded(gen) {
			return "", common.ErrUploadSuperseded
		}
		return "", err
	}

	if err := s.commit(ctx, gen, userID, dataURL); err != nil {
		return "", err
	}
	return dataURL, nil
}

// UploadAsync runs Upload on its own goroutine. The channel receives
// exactly one result.
func (s *AvatarService) UploadAsync(ctx context.Context, file io.Reader) <-chan UploadResult {
	out := make(chan UploadResult, 1)
	go func() {
		url, err := s.Upload(ctx, file)
		out <- UploadResult{DataURL: url, Err: err}
	}()
	return out
}

// UploadFile uploads the image at path.
func (s *AvatarService) UploadFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open avatar: %w", err)
	}
	defer f.Close()
	return s.Upload(ctx, f)
}

func (s *AvatarService) begin(ctx context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.gen++

	var cancel context.CancelFunc
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	s.cancel = cancel
	return ctx, s.gen
}

func (s *AvatarService) finish(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen == s.gen && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *AvatarService) superseded(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen != s.gen
}

// commit stores the result if gen is still the latest upload and the
// session still belongs to userID. Holding mu keeps a newer upload from
// committing in between.
func (s *AvatarService) commit(ctx context.Context, gen uint64, userID, dataURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		s.log.Debug(ctx, "discarding superseded avatar upload", "generation", gen)
		return common.ErrUploadSuperseded
	}

	current, err := s.session.Current(ctx)
	if err != nil {
		return err
	}
	if current != userID {
		s.log.Warn(ctx, "discarding avatar upload, session changed", "user", userID)
		return common.ErrSessionChanged
	}

	if err := s.avatars.Put(ctx, userID, dataURL); err != nil {
		return err
	}
	s.log.Info(ctx, "avatar updated", "user", userID, "bytes", len(dataURL))
	return nil
}

// decodeAvatar reads r and encodes it as a data URL. Reading happens on a
// separate goroutine so a stalled reader cannot outlive ctx.
func decodeAvatar(ctx context.Context, r io.Reader) (string, error) {
	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(io.LimitReader(r, MaxAvatarBytes+1))
		ch <- result{data: data, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", common.ErrAvatarDecode, ctx.Err())
	case res = <-ch:
	}

	if res.err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrAvatarDecode, res.err)
	}
	if len(res.data) > MaxAvatarBytes {
		return "", fmt.Errorf("%w: image exceeds %d bytes", common.ErrAvatarDecode, MaxAvatarBytes)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(res.data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return "", fmt.Errorf("%w: unsupported image format", common.ErrAvatarDecode)
		}
		return "", fmt.Errorf("%w: %w", common.ErrAvatarDecode, err)
	}

	return "data:image/" + format + ";base64," + base64.StdEncoding.EncodeToString(res.data), nil
}
