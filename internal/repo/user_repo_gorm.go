package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"admedia-api/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) FindByID(id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "userId = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "emailId = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) List(offset, limit int, q string) ([]domain.User, int64, error) {
	tx := r.db.Model(&domain.User{})
	if s := strings.TrimSpace(q); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("emailId LIKE ? OR userName LIKE ?", like, like)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	if err := tx.Order("userId desc").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Save 整行替换（含已重哈希的 password 列）
func (r *UserRepo) Save(u *domain.User) error { return r.db.Save(u).Error }

func (r *UserRepo) Delete(id uint) error {
	return r.db.Where("userId = ?", id).Delete(&domain.User{}).Error
}

// IsDupKey 不依赖 gorm.ErrDuplicatedKey，避免驱动差异
func IsDupKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
