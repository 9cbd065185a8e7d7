package implementations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/api-sage/bank-service/src/internal/commons"
	"github.com/api-sage/bank-service/src/internal/domain"
	"github.com/api-sage/bank-service/src/internal/logger"
	"github.com/google/uuid"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	logger.Info("user repository create", logger.Fields{
		"loginId": user.LoginID,
	})

	const query = `
INSERT INTO users (
	uid,
	login_id,
	password_hash,
	name,
	nickname,
	phone_number,
	email
) VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at`

	uid := uuid.NewString()

	var createdAt time.Time
	if err := r.db.QueryRowContext(
		ctx,
		query,
		uid,
		user.LoginID,
		user.PasswordHash,
		user.Name,
		user.Nickname,
		user.PhoneNumber,
		user.Email,
	).Scan(&createdAt); err != nil {
		logger.Error("user repository create failed", err, logger.Fields{
			"loginId": user.LoginID,
		})
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	user.UID = uid
	user.CreatedAt = createdAt
	logger.Info("user repository create success", logger.Fields{
		"uid":     user.UID,
		"loginId": user.LoginID,
	})

	return user, nil
}

func (r *UserRepository) GetByLoginID(ctx context.Context, loginID string) (domain.User, error) {
	logger.Info("user repository get by login id", logger.Fields{
		"loginId": loginID,
	})

	const query = `
SELECT uid, login_id, password_hash, name, nickname, phone_number, email, created_at
FROM users
WHERE login_id = $1`

	var user domain.User
	if err := r.db.QueryRowContext(ctx, query, loginID).Scan(
		&user.UID,
		&user.LoginID,
		&user.PasswordHash,
		&user.Name,
		&user.Nickname,
		&user.PhoneNumber,
		&user.Email,
		&user.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("user repository record not found", logger.Fields{
				"loginId": loginID,
			})
			return domain.User{}, commons.ErrRecordNotFound
		}
		logger.Error("user repository get failed", err, logger.Fields{
			"loginId": loginID,
		})
		return domain.User{}, fmt.Errorf("get user by login id: %w", err)
	}

	return user, nil
}
