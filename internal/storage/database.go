package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/entity"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DatabaseBackend maps the whole-collection contract onto relational tables.
// Each Write runs in a single transaction, which is what makes this the only
// backend safe against concurrent writers.
type DatabaseBackend struct {
	db *gorm.DB
}

func NewDatabaseBackend(db *gorm.DB) (*DatabaseBackend, error) {
	err := db.AutoMigrate(
		&model.PostModel{},
		&model.CommentModel{},
		&model.LikeModel{},
		&model.HallOfFameModel{},
		&model.HallOfShameModel{},
		&model.VideoModel{},
		&model.StoredFileModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &DatabaseBackend{db: db}, nil
}

func (b *DatabaseBackend) Read(ctx context.Context, collection string) (json.RawMessage, error) {
	db := b.db.WithContext(ctx)

	switch collection {
	case CollectionPosts:
		var rows []model.PostModel
		if err := db.Order("timestamp DESC").Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to read posts: %w", err)
		}
		posts := make([]entity.Post, 0, len(rows))
		for _, row := range rows {
			posts = append(posts, entity.Post{
				ID:           row.ID,
				Username:     row.Username,
				Content:      row.Content,
				Filename:     row.Filename,
				Timestamp:    row.Timestamp,
				SkibidiLevel: row.SkibidiLevel,
			})
		}
		return json.Marshal(posts)

	case CollectionComments:
		var rows []model.CommentModel
		if err := db.Order("timestamp DESC").Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to read comments: %w", err)
		}
		comments := make(map[string][]entity.Comment)
		for _, row := range rows {
			comments[row.PostID] = append(comments[row.PostID], entity.Comment{
				ID:        row.ID,
				PostID:    row.PostID,
				Username:  row.Username,
				Content:   row.Content,
				Timestamp: row.Timestamp,
			})
		}
		return json.Marshal(comments)

	case CollectionLikes:
		var rows []model.LikeModel
		if err := db.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to read likes: %w", err)
		}
		likes := make(map[string][]string)
		for _, row := range rows {
			likes[row.PostID] = append(likes[row.PostID], row.Username)
		}
		return json.Marshal(likes)

	case CollectionHallOfFame:
		var rows []model.HallOfFameModel
		if err := db.Order("added_timestamp DESC").Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to read hall of fame: %w", err)
		}
		entries := make([]entity.HallEntry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, entity.HallEntry{PostID: row.PostID, AddedAt: row.AddedTimestamp})
		}
		return json.Marshal(entries)

	case CollectionHallOfShame:
		var rows []model.HallOfShameModel
		if err := db.Order("added_timestamp DESC").Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to read hall of shame: %w", err)
		}
		entries := make([]entity.HallEntry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, entity.HallEntry{PostID: row.PostID, AddedAt: row.AddedTimestamp})
		}
		return json.Marshal(entries)

	case CollectionVideos:
		var rows []model.VideoModel
		if err := db.Order("timestamp DESC").Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to read videos: %w", err)
		}
		videos := make([]entity.Video, 0, len(rows))
		for _, row := range rows {
			videos = append(videos, entity.Video{
				ID:          row.ID,
				Username:    row.Username,
				Title:       row.Title,
				Description: row.Description,
				Filename:    row.Filename,
				Views:       row.Views,
				Timestamp:   row.Timestamp,
			})
		}
		return json.Marshal(videos)
	}

	return nil, fmt.Errorf("unknown collection %q", collection)
}

func (b *DatabaseBackend) Write(ctx context.Context, collection string, value json.RawMessage) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		switch collection {
		case CollectionPosts:
			return writePosts(tx, value)
		case CollectionComments:
			return writeComments(tx, value)
		case CollectionLikes:
			return writeLikes(tx, value)
		case CollectionHallOfFame:
			return writeHallOfFame(tx, value)
		case CollectionHallOfShame:
			return writeHallOfShame(tx, value)
		case CollectionVideos:
			return writeVideos(tx, value)
		}
		return fmt.Errorf("unknown collection %q", collection)
	})
}

// writePosts upserts the rows present in the value and prunes the rest.
// A plain delete-all would cascade into comments before the reinsert.
func writePosts(tx *gorm.DB, value json.RawMessage) error {
	var posts []entity.Post
	if err := json.Unmarshal(value, &posts); err != nil {
		return fmt.Errorf("failed to decode posts: %w", err)
	}

	ids := make([]string, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
		row := model.PostModel{
			ID:           post.ID,
			Username:     post.Username,
			Content:      post.Content,
			Filename:     post.Filename,
			Timestamp:    post.Timestamp,
			SkibidiLevel: post.SkibidiLevel,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("failed to upsert post %s: %w", post.ID, err)
		}
	}

	if len(ids) == 0 {
		return tx.Exec("DELETE FROM posts").Error
	}
	return tx.Where("id NOT IN ?", ids).Delete(&model.PostModel{}).Error
}

func writeComments(tx *gorm.DB, value json.RawMessage) error {
	var comments map[string][]entity.Comment
	if err := json.Unmarshal(value, &comments); err != nil {
		return fmt.Errorf("failed to decode comments: %w", err)
	}

	if err := tx.Exec("DELETE FROM comments").Error; err != nil {
		return err
	}
	for postID, list := range comments {
		for _, comment := range list {
			row := model.CommentModel{
				ID:        comment.ID,
				PostID:    postID,
				Username:  comment.Username,
				Content:   comment.Content,
				Timestamp: comment.Timestamp,
			}
			if err := tx.Omit("Post").Create(&row).Error; err != nil {
				return fmt.Errorf("failed to insert comment %s: %w", comment.ID, err)
			}
		}
	}
	return nil
}

func writeLikes(tx *gorm.DB, value json.RawMessage) error {
	var likes map[string][]string
	if err := json.Unmarshal(value, &likes); err != nil {
		return fmt.Errorf("failed to decode likes: %w", err)
	}

	if err := tx.Exec("DELETE FROM likes").Error; err != nil {
		return err
	}
	for postID, usernames := range likes {
		for _, username := range usernames {
			row := model.LikeModel{PostID: postID, Username: username}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to insert like %s/%s: %w", postID, username, err)
			}
		}
	}
	return nil
}

func writeHallOfFame(tx *gorm.DB, value json.RawMessage) error {
	var entries []entity.HallEntry
	if err := json.Unmarshal(value, &entries); err != nil {
		return fmt.Errorf("failed to decode hall of fame: %w", err)
	}

	if err := tx.Exec("DELETE FROM hall_of_fame").Error; err != nil {
		return err
	}
	for _, entry := range entries {
		row := model.HallOfFameModel{PostID: entry.PostID, AddedTimestamp: entry.AddedAt}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert hall of fame entry: %w", err)
		}
	}
	return nil
}

func writeHallOfShame(tx *gorm.DB, value json.RawMessage) error {
	var entries []entity.HallEntry
	if err := json.Unmarshal(value, &entries); err != nil {
		return fmt.Errorf("failed to decode hall of shame: %w", err)
	}

	if err := tx.Exec("DELETE FROM hall_of_shame").Error; err != nil {
		return err
	}
	for _, entry := range entries {
		row := model.HallOfShameModel{PostID: entry.PostID, AddedTimestamp: entry.AddedAt}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert hall of shame entry: %w", err)
		}
	}
	return nil
}

func writeVideos(tx *gorm.DB, value json.RawMessage) error {
	var videos []entity.Video
	if err := json.Unmarshal(value, &videos); err != nil {
		return fmt.Errorf("failed to decode videos: %w", err)
	}

	if err := tx.Exec("DELETE FROM videos").Error; err != nil {
		return err
	}
	for _, video := range videos {
		row := model.VideoModel{
			ID:          video.ID,
			Username:    video.Username,
			Title:       video.Title,
			Description: video.Description,
			Filename:    video.Filename,
			Views:       video.Views,
			Timestamp:   video.Timestamp,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert video %s: %w", video.ID, err)
		}
	}
	return nil
}

func (b *DatabaseBackend) StoreBlob(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	row := model.StoredFileModel{
		Name:        name,
		Data:        data,
		ContentType: contentType,
		Size:        int64(len(data)),
	}
	err := b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		return "", fmt.Errorf("failed to store file %s: %w", name, err)
	}
	return name, nil
}

func (b *DatabaseBackend) FetchBlob(ctx context.Context, name string) (*StoredFile, error) {
	var row model.StoredFileModel
	err := b.db.WithContext(ctx).First(&row, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}
	return &StoredFile{
		Data:        row.Data,
		ContentType: row.ContentType,
		Size:        row.Size,
		Timestamp:   row.CreatedAt,
	}, nil
}

func (b *DatabaseBackend) Name() string {
	return "Database"
}

func (b *DatabaseBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ Backend = (*DatabaseBackend)(nil)
