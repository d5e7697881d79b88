package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/entity"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/repo"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/storage"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/logger"

	"github.com/google/uuid"
)

const (
	MaxContentBytes  = 2048
	MaxCommentBytes  = 500
	MaxUsernameChars = 50
)

// allowedExtensions is the upload allow-list for regular posts.
var allowedExtensions = map[string]bool{
	"txt": true, "pdf": true, "png": true, "jpg": true, "jpeg": true,
	"gif": true, "mp4": true, "webm": true, "mp3": true, "wav": true,
	"doc": true, "docx": true, "zip": true,
}

type LikeAction string

const (
	ActionLiked   LikeAction = "liked"
	ActionUnliked LikeAction = "unliked"
)

// Upload is a decoded multipart file ready for storage.
type Upload struct {
	Filename    string
	Data        []byte
	ContentType string
}

// FeedResult is one page of the decorated feed.
type FeedResult struct {
	Posts       []entity.FeedPost
	Pagination  Page[entity.FeedPost]
	SearchQuery string
	StorageType string
}

type HubUseCase interface {
	FeedPage(ctx context.Context, search string, page int) *FeedResult
	CreatePost(ctx context.Context, username, content string, upload *Upload) (*entity.Post, error)
	AddComment(ctx context.Context, postID, username, content string) (*entity.Comment, error)
	ToggleLike(ctx context.Context, postID, username string) (LikeAction, int, error)
	SearchPosts(ctx context.Context, query string) []entity.Post
	AllPosts(ctx context.Context) []entity.Post
	GetComments(ctx context.Context, postID string, page int) Page[entity.Comment]
	HallOfFame(ctx context.Context) []entity.Post
	HallOfShame(ctx context.Context) []entity.Post
	FetchUpload(ctx context.Context, filename string) (*storage.StoredFile, error)
}

type hubUseCase struct {
	repo   *repo.Repository
	logger *logger.Logger
}

func NewHubUseCase(repository *repo.Repository, log *logger.Logger) HubUseCase {
	return &hubUseCase{repo: repository, logger: log}
}

func (uc *hubUseCase) FeedPage(ctx context.Context, search string, page int) *FeedResult {
	posts := uc.SearchPosts(ctx, search)

	comments := uc.repo.LoadComments(ctx)
	likes := uc.repo.LoadLikes(ctx)

	decorated := make([]entity.FeedPost, 0, len(posts))
	for _, post := range posts {
		postComments := comments[post.ID]
		if postComments == nil {
			postComments = []entity.Comment{}
		}
		decorated = append(decorated, entity.FeedPost{
			Post:         post,
			LikeCount:    len(likes[post.ID]),
			LikesCount:   len(likes[post.ID]),
			CommentCount: len(postComments),
			CommentsData: postComments,
		})
	}

	pagination := Paginate(decorated, page, PostsPerPage)
	return &FeedResult{
		Posts:       pagination.Items,
		Pagination:  pagination,
		SearchQuery: search,
		StorageType: uc.repo.StorageType(),
	}
}

func (uc *hubUseCase) CreatePost(ctx context.Context, username, content string, upload *Upload) (*entity.Post, error) {
	username = strings.TrimSpace(username)
	content = strings.TrimSpace(content)

	if username == "" || content == "" {
		return nil, fmt.Errorf("%w: username and content are required", ErrValidation)
	}
	if utf8.RuneCountInString(username) > MaxUsernameChars {
		return nil, fmt.Errorf("%w: username too long, maximum %d characters", ErrValidation, MaxUsernameChars)
	}
	if len(content) > MaxContentBytes {
		return nil, fmt.Errorf("%w: content too long, maximum %d bytes", ErrValidation, MaxContentBytes)
	}

	var filename string
	if upload != nil {
		stored, err := storeUpload(ctx, uc.repo, uc.logger, upload, allowedExtensions)
		if err != nil {
			return nil, err
		}
		filename = stored
	}

	post := entity.Post{
		ID:           uuid.New().String(),
		Username:     username,
		Content:      content,
		Filename:     filename,
		Timestamp:    time.Now(),
		SkibidiLevel: entity.DefaultSkibidiLevel,
	}

	posts := uc.repo.LoadPosts(ctx)
	posts = append(posts, post)
	if err := uc.repo.SavePosts(ctx, posts); err != nil {
		uc.logger.Error("Failed to persist post: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &post, nil
}

func (uc *hubUseCase) AddComment(ctx context.Context, postID, username, content string) (*entity.Comment, error) {
	username = strings.TrimSpace(username)
	content = strings.TrimSpace(content)

	if username == "" || content == "" {
		return nil, fmt.Errorf("%w: username and comment are required", ErrValidation)
	}
	if utf8.RuneCountInString(username) > MaxUsernameChars {
		return nil, fmt.Errorf("%w: username too long, maximum %d characters", ErrValidation, MaxUsernameChars)
	}
	if len(content) > MaxCommentBytes {
		return nil, fmt.Errorf("%w: comment too long, maximum %d bytes", ErrValidation, MaxCommentBytes)
	}

	comment := entity.Comment{
		ID:        uuid.New().String(),
		PostID:    postID,
		Username:  username,
		Content:   content,
		Timestamp: time.Now(),
	}

	comments := uc.repo.LoadComments(ctx)
	comments[postID] = append(comments[postID], comment)
	if err := uc.repo.SaveComments(ctx, comments); err != nil {
		uc.logger.Error("Failed to persist comment: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &comment, nil
}

func (uc *hubUseCase) ToggleLike(ctx context.Context, postID, username string) (LikeAction, int, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", 0, fmt.Errorf("%w: username is required", ErrValidation)
	}

	likes := uc.repo.LoadLikes(ctx)

	action := ActionLiked
	current := likes[postID]
	if idx := indexOf(current, username); idx >= 0 {
		likes[postID] = append(current[:idx], current[idx+1:]...)
		action = ActionUnliked
	} else {
		likes[postID] = append(current, username)
	}

	if err := uc.repo.SaveLikes(ctx, likes); err != nil {
		uc.logger.Error("Failed to persist likes: %v", err)
		return "", 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return action, len(likes[postID]), nil
}

func (uc *hubUseCase) SearchPosts(ctx context.Context, query string) []entity.Post {
	posts := uc.repo.LoadPosts(ctx)
	if query == "" {
		return posts
	}

	needle := strings.ToLower(query)
	matched := make([]entity.Post, 0, len(posts))
	for _, post := range posts {
		if strings.Contains(strings.ToLower(post.Content), needle) ||
			strings.Contains(strings.ToLower(post.Username), needle) {
			matched = append(matched, post)
		}
	}
	return matched
}

func (uc *hubUseCase) AllPosts(ctx context.Context) []entity.Post {
	return uc.repo.LoadPosts(ctx)
}

func (uc *hubUseCase) GetComments(ctx context.Context, postID string, page int) Page[entity.Comment] {
	comments := uc.repo.LoadComments(ctx)
	list := comments[postID]
	if list == nil {
		list = []entity.Comment{}
	}
	return Paginate(list, page, CommentsPerPage)
}

func (uc *hubUseCase) HallOfFame(ctx context.Context) []entity.Post {
	return uc.repo.LoadHallOfFame(ctx)
}

func (uc *hubUseCase) HallOfShame(ctx context.Context) []entity.Post {
	return uc.repo.LoadHallOfShame(ctx)
}

func (uc *hubUseCase) FetchUpload(ctx context.Context, filename string) (*storage.StoredFile, error) {
	file, err := uc.repo.FetchUpload(ctx, filename)
	if err != nil {
		uc.logger.Error("Failed to fetch upload %s: %v", filename, err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if file == nil {
		return nil, fmt.Errorf("%w: file %s", ErrNotFound, filename)
	}
	return file, nil
}

// storeUpload validates the extension against the given allow-list, assigns a
// generated unique name and persists the payload.
func storeUpload(ctx context.Context, repository *repo.Repository, log *logger.Logger, upload *Upload, allowed map[string]bool) (string, error) {
	ext := fileExtension(upload.Filename)
	if ext == "" || !allowed[ext] {
		return "", fmt.Errorf("%w: extension %q is not allowed", ErrUnsupportedMedia, ext)
	}

	name := uuid.New().String() + "." + ext
	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ref, err := repository.StoreUpload(ctx, name, upload.Data, contentType)
	if err != nil {
		log.Error("Failed to store upload: %v", err)
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return ref, nil
}

func fileExtension(filename string) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	return strings.ToLower(ext)
}

func indexOf(list []string, value string) int {
	for i, item := range list {
		if item == value {
			return i
		}
	}
	return -1
}
