package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DawoodIsrar/user-management-api/internal/core/domain"
)

const (
	rolesCollection     = "roles"
	userRolesCollection = "user_roles"
)

// RoleRepository persists roles and user-role links in MongoDB.
type RoleRepository struct {
	db        *mongo.Database
	roles     *mongo.Collection
	userRoles *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{
		db:        db,
		roles:     db.Collection(rolesCollection),
		userRoles: db.Collection(userRolesCollection),
	}
}

type mongoRole struct {
	ID        int64  `bson:"_id"`
	Name      string `bson:"name"`
	CreatedAt int64  `bson:"created_at"`
}

type mongoUserRole struct {
	UserID    int64 `bson:"user_id"`
	RoleID    int64 `bson:"role_id"`
	CreatedAt int64 `bson:"created_at"`
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	id, err := nextID(ctx, r.db, rolesCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoRole{ID: id, Name: role.Name, CreatedAt: role.CreatedAt.Unix()}
	if _, err := r.roles.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRoleExists
		}
		return nil, fmt.Errorf("insert role: %w", err)
	}

	created := *role
	created.ID = id
	return &created, nil
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var mr mongoRole
	if err := r.roles.FindOne(ctx, bson.M{"name": name}).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &domain.Role{ID: mr.ID, Name: mr.Name, CreatedAt: unixToTime(mr.CreatedAt)}, nil
}

// Assign inserts the link as-is. Neither id is checked for existence and
// duplicate pairs are not rejected.
func (r *RoleRepository) Assign(ctx context.Context, userID, roleID int64) (*domain.UserRole, error) {
	now := time.Now().UTC()
	doc := mongoUserRole{UserID: userID, RoleID: roleID, CreatedAt: now.Unix()}
	if _, err := r.userRoles.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert user role: %w", err)
	}
	return &domain.UserRole{UserID: userID, RoleID: roleID, CreatedAt: now}, nil
}

func (r *RoleRepository) ForUser(ctx context.Context, userID int64) ([]domain.Role, error) {
	cur, err := r.userRoles.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("find user roles: %w", err)
	}
	defer cur.Close(ctx)

	roleIDs := make([]int64, 0)
	for cur.Next(ctx) {
		var link mongoUserRole
		if err := cur.Decode(&link); err != nil {
			return nil, fmt.Errorf("decode user role: %w", err)
		}
		roleIDs = append(roleIDs, link.RoleID)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find user roles: %w", err)
	}
	if len(roleIDs) == 0 {
		return []domain.Role{}, nil
	}

	roleCur, err := r.roles.Find(ctx, bson.M{"_id": bson.M{"$in": roleIDs}})
	if err != nil {
		return nil, fmt.Errorf("resolve roles: %w", err)
	}
	defer roleCur.Close(ctx)

	roles := make([]domain.Role, 0, len(roleIDs))
	for roleCur.Next(ctx) {
		var mr mongoRole
		if err := roleCur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode role: %w", err)
		}
		roles = append(roles, domain.Role{ID: mr.ID, Name: mr.Name, CreatedAt: unixToTime(mr.CreatedAt)})
	}
	if err := roleCur.Err(); err != nil {
		return nil, fmt.Errorf("resolve roles: %w", err)
	}
	return roles, nil
}
