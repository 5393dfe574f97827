package postgres

import (
	"context"
	"time"

	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/domain/repository"
	"mapic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository is the constructor for friendshipRepository.
func NewFriendshipRepository(db *gorm.DB) repository.FriendshipRepository {
	return &friendshipRepository{
		db: db,
	}
}

// FindAccepted returns accepted edges touching userID, oldest first.
func (repo *friendshipRepository) FindAccepted(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error) {
	return repo.find(ctx, "failed to find accepted friendships",
		"(user_id = ? OR friend_id = ?) AND status = ?", userID, userID, string(entity.FriendStatusAccepted))
}

// FindPendingFor returns pending requests addressed to userID.
func (repo *friendshipRepository) FindPendingFor(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error) {
	return repo.find(ctx, "failed to find pending friendships",
		"friend_id = ? AND status = ?", userID, string(entity.FriendStatusPending))
}

// FindPair returns the edge between two users in either direction.
func (repo *friendshipRepository) FindPair(ctx context.Context, userID, otherID uuid.UUID) (*entity.Friendship, error) {
	return repo.findOne(ctx, "failed to find friendship pair",
		"(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)", userID, otherID, otherID, userID)
}

// FindByID retrieves an edge by ID.
func (repo *friendshipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Friendship, error) {
	return repo.findOne(ctx, "failed to find friendship by id", "id = ?", id)
}

// Save inserts an edge. The pair index rejects a second edge in either direction.
func (repo *friendshipRepository) Save(ctx context.Context, friendship *entity.Friendship) error {
	if friendship.ID == uuid.Nil {
		friendship.ID = newID()
	}
	friendshipM := fromFriendshipDomain(friendship)

	if err := repo.db.WithContext(ctx).Create(friendshipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFriendship
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrSelfFriendship
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save friendship")
	}

	friendship.CreatedAt = friendshipM.CreatedAt
	friendship.UpdatedAt = friendshipM.UpdatedAt

	return nil
}

// UpdateStatus changes the status of an edge.
func (repo *friendshipRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FriendStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FriendshipModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update friendship status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFriendshipNotFound
	}

	return nil
}

// Delete removes an edge.
func (repo *friendshipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FriendshipModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete friendship")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFriendshipNotFound
	}

	return nil
}

func (repo *friendshipRepository) find(ctx context.Context, errMsg, query string, args ...any) ([]*entity.Friendship, error) {
	var friendshipModels []*model.FriendshipModel
	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at ASC, id ASC").
		Find(&friendshipModels).Error; err != nil {
		return nil, errors.Wrap(err, errMsg)
	}

	friendships := make([]*entity.Friendship, 0, len(friendshipModels))
	for _, friendshipM := range friendshipModels {
		friendships = append(friendships, toFriendshipDomain(friendshipM))
	}

	return friendships, nil
}

func (repo *friendshipRepository) findOne(ctx context.Context, errMsg, query string, args ...any) (*entity.Friendship, error) {
	var friendshipM model.FriendshipModel
	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		First(&friendshipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFriendshipNotFound
		}

		return nil, errors.Wrap(err, errMsg)
	}

	return toFriendshipDomain(&friendshipM), nil
}

// --- Mapper Functions ---

func toFriendshipDomain(data *model.FriendshipModel) *entity.Friendship {
	if data == nil {
		return nil
	}

	return &entity.Friendship{
		ID:        data.ID,
		UserID:    data.UserID,
		FriendID:  data.FriendID,
		Status:    entity.ParseFriendStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromFriendshipDomain(data *entity.Friendship) *model.FriendshipModel {
	if data == nil {
		return nil
	}

	return &model.FriendshipModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FriendID:  data.FriendID,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
