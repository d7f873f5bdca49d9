package repository

import (
	"gorm.io/gorm"

	"github.com/linuxbro/blog_go_server/internal/model"
)

type AuthorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) *AuthorRepository {
	return &AuthorRepository{db: db}
}

func (r *AuthorRepository) Create(author *model.Author) error {
	return r.db.Create(author).Error
}

func (r *AuthorRepository) GetByID(id int64) (*model.Author, error) {
	var author model.Author
	err := r.db.Where("id = ?", id).First(&author).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *AuthorRepository) GetByUUID(uuid string) (*model.Author, error) {
	var author model.Author
	err := r.db.Where("uuid = ?", uuid).First(&author).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *AuthorRepository) GetByEmail(email string) (*model.Author, error) {
	var author model.Author
	err := r.db.Where("email = ?", email).First(&author).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *AuthorRepository) GetByUsername(username string) (*model.Author, error) {
	var author model.Author
	err := r.db.Where("username = ?", username).First(&author).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *AuthorRepository) GetByGithubID(githubID string) (*model.Author, error) {
	var author model.Author
	err := r.db.Where("github_id = ?", githubID).First(&author).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *AuthorRepository) GetByGoogleID(googleID string) (*model.Author, error) {
	var author model.Author
	err := r.db.Where("google_id = ?", googleID).First(&author).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *AuthorRepository) Update(author *model.Author) error {
	return r.db.Save(author).Error
}

func (r *AuthorRepository) UpdateFields(id int64, fields map[string]interface{}) error {
	return r.db.Model(&model.Author{}).Where("id = ?", id).Updates(fields).Error
}

func (r *AuthorRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Author{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *AuthorRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Author{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}
