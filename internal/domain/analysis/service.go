package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/skintrack/skintrack/pkg/errors"
)

// Service runs the photo analysis pipeline: validate, downscale, ship to
// the remote model, and optionally archive a copy.
type Service interface {
	Analyze(ctx context.Context, userID int64, req Request) (Response, error)
}

type service struct {
	cfg     Config
	client  RemoteClient
	storage ObjectStorage
	logger  *slog.Logger
	now     func() time.Time
}

// NewService wires the analysis service.
func NewService(cfg Config, client RemoteClient, storage ObjectStorage, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		cfg:     cfg,
		client:  client,
		storage: storage,
		logger:  logger.With("component", "analysis.service"),
		now:     time.Now,
	}
}

func (s *service) Analyze(ctx context.Context, userID int64, req Request) (Response, error) {
	if strings.TrimSpace(req.Image) == "" {
		return Response{}, apperrors.Wrap("invalid_input", "image is required", nil)
	}

	mime, raw, err := ParseDataURL(req.Image)
	if err != nil {
		return Response{}, apperrors.Wrap("invalid_input", "image must be a base64 data URL", err)
	}
	if int64(len(raw)) > s.cfg.maxUploadBytes() {
		return Response{}, apperrors.Wrap("payload_too_large",
			fmt.Sprintf("image exceeds the %d byte limit", s.cfg.maxUploadBytes()), nil)
	}

	prepared, outMime, err := PrepareImage(raw, mime)
	if err != nil {
		if errors.Is(err, ErrImageLoad) {
			return Response{}, apperrors.Wrap("invalid_input", "image could not be decoded", err)
		}
		return Response{}, apperrors.Wrap("analysis_error", "image could not be prepared", err)
	}

	requestID := uuid.NewString()
	storageKey := s.archiveCopy(ctx, userID, requestID, prepared, outMime)

	remote := RemoteRequest{
		Image:     EncodeDataURL(outMime, prepared),
		Timestamp: s.now().UnixMilli(),
		RequestID: requestID,
	}
	if userID > 0 {
		id := strconv.FormatInt(userID, 10)
		remote.UserID = &id
	}

	result, err := s.client.Analyze(ctx, remote)
	if err != nil {
		return Response{}, apperrors.Wrap("analysis_error", "analysis request failed", err)
	}
	if len(result) == 0 {
		return Response{}, apperrors.Wrap("empty_result",
			"the analysis returned no result, the AI may have refused the request", nil)
	}

	return Response{RequestID: requestID, Analysis: result, StorageKey: storageKey}, nil
}

// archiveCopy keeps the prepared photo for later review. A storage failure
// never blocks the analysis itself.
func (s *service) archiveCopy(ctx context.Context, userID int64, requestID string, data []byte, mime string) string {
	if !s.cfg.KeepCopies || s.storage == nil {
		return ""
	}
	key := fmt.Sprintf("analysis/%d/%s%s", userID, requestID, extensionFor(mime))
	if _, err := s.storage.Put(ctx, key, data, mime); err != nil {
		s.logger.Warn("failed to archive analyzed photo", "key", key, "error", err)
		return ""
	}
	return key
}

func extensionFor(mime string) string {
	switch mime {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
