package main

import (
	"flag"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/linuxbro/blog_go_server/config"
	"github.com/linuxbro/blog_go_server/internal/database"
	"github.com/linuxbro/blog_go_server/internal/model"
	"github.com/linuxbro/blog_go_server/internal/pkg/logger"
	"github.com/linuxbro/blog_go_server/internal/repository"
)

var categoryNames = []string{"Technology", "Science", "Culture", "Travel", "Food"}

var tagPool = []string{
	"go", "python", "webdev", "databases", "linux",
	"photography", "cooking", "history", "space", "music",
}

func main() {
	authorCount := flag.Int("authors", 10, "number of authors to create")
	storyCount := flag.Int("stories", 30, "number of stories to create")
	flag.Parse()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		logger.Log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Server.Mode)

	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		logger.Log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatalf("Failed to migrate database: %v", err)
	}

	authorRepo := repository.NewAuthorRepository(db)
	storyRepo := repository.NewStoryRepository(db)
	taxonomyRepo := repository.NewTaxonomyRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// 分类
	categories := make([]*model.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		category := &model.Category{Name: name, Description: faker.Sentence()}
		if err := db.Create(category).Error; err != nil {
			logger.Log.Fatalf("Failed to create category: %v", err)
		}
		categories = append(categories, category)
	}

	// 作者，统一密码方便本地调试
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	hashStr := string(hash)

	authors := make([]*model.Author, 0, *authorCount)
	for i := 0; i < *authorCount; i++ {
		email := faker.Email()
		author := &model.Author{
			UUID:         uuid.NewString(),
			Username:     faker.Username(),
			Email:        &email,
			PasswordHash: &hashStr,
			FullName:     faker.Name(),
			Bio:          faker.Sentence(),
		}
		if err := authorRepo.Create(author); err != nil {
			logger.Log.Warnf("Skipping author: %v", err)
			continue
		}
		authors = append(authors, author)
	}
	if len(authors) == 0 {
		logger.Log.Fatal("No authors created")
	}

	// 文章及评论
	for i := 0; i < *storyCount; i++ {
		author := authors[rand.Intn(len(authors))]
		category := categories[rand.Intn(len(categories))]

		tags, err := taxonomyRepo.GetOrCreateTags(pickTags())
		if err != nil {
			logger.Log.Fatalf("Failed to create tags: %v", err)
		}

		story := &model.Story{
			UUID:           uuid.NewString(),
			AuthorID:       author.ID,
			Title:          faker.Sentence(),
			Subtitle:       faker.Sentence(),
			CategoryID:     &category.ID,
			ApprovalStatus: model.StoryStatusApproved,
			Tags:           tags,
			Blocks: []*model.ContentBlock{
				{BlockType: model.BlockTypeParagraph, Position: 0, Text: faker.Paragraph()},
				{BlockType: model.BlockTypeBlockquote, Position: 1, Text: faker.Sentence()},
				{BlockType: model.BlockTypeParagraph, Position: 2, Text: faker.Paragraph()},
			},
		}
		if err := storyRepo.Create(story); err != nil {
			logger.Log.Fatalf("Failed to create story: %v", err)
		}

		// 每篇文章挂几条评论，部分带回复
		topLevel := rand.Intn(5)
		commentTotal := topLevel
		for j := 0; j < topLevel; j++ {
			comment := &model.Comment{
				StoryID:  story.ID,
				AuthorID: authors[rand.Intn(len(authors))].ID,
				Body:     faker.Sentence(),
			}
			if err := commentRepo.Create(comment); err != nil {
				logger.Log.Fatalf("Failed to create comment: %v", err)
			}

			if rand.Intn(2) == 0 {
				reply := &model.Comment{
					StoryID:  story.ID,
					AuthorID: authors[rand.Intn(len(authors))].ID,
					ParentID: &comment.ID,
					Body:     faker.Sentence(),
				}
				if err := commentRepo.Create(reply); err != nil {
					logger.Log.Fatalf("Failed to create reply: %v", err)
				}
				commentTotal++
			}
		}
		storyRepo.UpdateFields(story.ID, map[string]interface{}{"comment_count": commentTotal})
	}

	logger.Log.Infof("Seeded %d authors and %d stories", len(authors), *storyCount)
}

func pickTags() []string {
	n := 1 + rand.Intn(3)
	picked := make([]string, 0, n)
	for _, idx := range rand.Perm(len(tagPool))[:n] {
		picked = append(picked, tagPool[idx])
	}
	return picked
}
