package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/entity"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/repo"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/logger"

	"github.com/google/uuid"
)

const (
	MaxTitleChars       = 255
	MaxDescriptionBytes = 2048
)

// videoExtensions restricts the scroll feed to video uploads only.
var videoExtensions = map[string]bool{
	"mp4": true, "webm": true, "mov": true,
}

type VideoUseCase interface {
	Videos(ctx context.Context) []entity.Video
	CreateVideo(ctx context.Context, username, title, description string, upload *Upload) (*entity.Video, error)
	ToggleVideoLike(ctx context.Context, videoID, username string) (LikeAction, int, error)
	TrackView(ctx context.Context, videoID string) (int, error)
}

type videoUseCase struct {
	repo   *repo.Repository
	hub    HubUseCase
	logger *logger.Logger
}

func NewVideoUseCase(repository *repo.Repository, hub HubUseCase, log *logger.Logger) VideoUseCase {
	return &videoUseCase{repo: repository, hub: hub, logger: log}
}

func (uc *videoUseCase) Videos(ctx context.Context) []entity.Video {
	return uc.repo.LoadVideos(ctx)
}

func (uc *videoUseCase) CreateVideo(ctx context.Context, username, title, description string, upload *Upload) (*entity.Video, error) {
	username = strings.TrimSpace(username)
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if username == "" || title == "" {
		return nil, fmt.Errorf("%w: username and title are required", ErrValidation)
	}
	if utf8.RuneCountInString(username) > MaxUsernameChars {
		return nil, fmt.Errorf("%w: username too long, maximum %d characters", ErrValidation, MaxUsernameChars)
	}
	if utf8.RuneCountInString(title) > MaxTitleChars {
		return nil, fmt.Errorf("%w: title too long, maximum %d characters", ErrValidation, MaxTitleChars)
	}
	if len(description) > MaxDescriptionBytes {
		return nil, fmt.Errorf("%w: description too long, maximum %d bytes", ErrValidation, MaxDescriptionBytes)
	}

	var filename string
	if upload != nil {
		stored, err := storeUpload(ctx, uc.repo, uc.logger, upload, videoExtensions)
		if err != nil {
			return nil, err
		}
		filename = stored
	}

	video := entity.Video{
		ID:          uuid.New().String(),
		Username:    username,
		Title:       title,
		Description: description,
		Filename:    filename,
		Views:       0,
		Timestamp:   time.Now(),
	}

	videos := uc.repo.LoadVideos(ctx)
	videos = append(videos, video)
	if err := uc.repo.SaveVideos(ctx, videos); err != nil {
		uc.logger.Error("Failed to persist video: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &video, nil
}

func (uc *videoUseCase) ToggleVideoLike(ctx context.Context, videoID, username string) (LikeAction, int, error) {
	if !uc.videoExists(ctx, videoID) {
		return "", 0, fmt.Errorf("%w: video %s", ErrNotFound, videoID)
	}
	return uc.hub.ToggleLike(ctx, videoID, username)
}

func (uc *videoUseCase) TrackView(ctx context.Context, videoID string) (int, error) {
	videos := uc.repo.LoadVideos(ctx)

	for i := range videos {
		if videos[i].ID == videoID {
			videos[i].Views++
			if err := uc.repo.SaveVideos(ctx, videos); err != nil {
				uc.logger.Error("Failed to persist view count: %v", err)
				return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
			}
			return videos[i].Views, nil
		}
	}

	return 0, fmt.Errorf("%w: video %s", ErrNotFound, videoID)
}

func (uc *videoUseCase) videoExists(ctx context.Context, videoID string) bool {
	for _, video := range uc.repo.LoadVideos(ctx) {
		if video.ID == videoID {
			return true
		}
	}
	return false
}
