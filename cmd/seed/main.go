package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"

	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/app"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/repo"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/usecase"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/config"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/logger"

	"github.com/brianvoe/gofakeit/v6"
)

func main() {
	var (
		postCount  = flag.Int("posts", 20, "number of posts to create")
		videoCount = flag.Int("videos", 5, "number of videos to create")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	backend, err := app.NewBackend(cfg, log)
	if err != nil {
		log.Error("Failed to initialize storage backend: %v", err)
		panic(err)
	}
	defer backend.Close()

	repository := repo.New(backend, log)
	hubUseCase := usecase.NewHubUseCase(repository, log)
	videoUseCase := usecase.NewVideoUseCase(repository, hubUseCase, log)

	ctx := context.Background()

	for i := 0; i < *postCount; i++ {
		username := gofakeit.Username()
		content := gofakeit.HipsterSentence(rand.Intn(15) + 3)

		post, err := hubUseCase.CreatePost(ctx, username, content, nil)
		if err != nil {
			log.Error("Failed to seed post: %v", err)
			continue
		}

		for j := 0; j < rand.Intn(4); j++ {
			commenter := gofakeit.Username()
			comment := gofakeit.Sentence(rand.Intn(8) + 2)
			if _, err := hubUseCase.AddComment(ctx, post.ID, commenter, comment); err != nil {
				log.Error("Failed to seed comment: %v", err)
			}
		}

		for j := 0; j < rand.Intn(6); j++ {
			if _, _, err := hubUseCase.ToggleLike(ctx, post.ID, gofakeit.Username()); err != nil {
				log.Error("Failed to seed like: %v", err)
			}
		}
	}

	for i := 0; i < *videoCount; i++ {
		username := gofakeit.Username()
		title := gofakeit.Sentence(rand.Intn(5) + 2)
		description := gofakeit.HipsterSentence(rand.Intn(10) + 3)

		video, err := videoUseCase.CreateVideo(ctx, username, title, description, nil)
		if err != nil {
			log.Error("Failed to seed video: %v", err)
			continue
		}

		for j := 0; j < rand.Intn(20); j++ {
			if _, err := videoUseCase.TrackView(ctx, video.ID); err != nil {
				log.Error("Failed to seed view: %v", err)
			}
		}
	}

	log.Info("Seeded %d posts and %d videos into %s storage", *postCount, *videoCount, backend.Name())
}
