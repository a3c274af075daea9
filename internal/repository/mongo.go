package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"org-roles-service/internal/config"
	"org-roles-service/internal/repository/model"
	"org-roles-service/internal/roles"
)

const (
	databaseName      = "org-roles-service"
	membersCollection = "members"
)

var MemberNotFoundError = errors.New("member not found")

type mongoRepository struct {
	logger *zap.SugaredLogger

	memberCollection *mongo.Collection
}

func NewMongoRepository(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg config.MongoDBConfig) (Repository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	database := client.Database(databaseName)

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Errorw("failed to disconnect mongo client", "error", err)
		}
	}()

	return &mongoRepository{
		logger:           logger,
		memberCollection: database.Collection(membersCollection),
	}, nil
}

func (m *mongoRepository) GetMember(ctx context.Context, orgID string, memberID string) (*model.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": model.MemberID{OrgID: orgID, MemberID: memberID}}

	var member model.Member
	err := m.memberCollection.FindOne(ctx, filter).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, MemberNotFoundError
		}
		return nil, err
	}

	return &member, nil
}

func (m *mongoRepository) ListMembers(ctx context.Context, orgID string) ([]*model.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := m.memberCollection.Find(ctx, bson.M{"_id.org": orgID})
	if err != nil {
		return nil, err
	}

	var mongoResult []model.Member
	err = cursor.All(ctx, &mongoResult)

	slice := make([]*model.Member, len(mongoResult))
	for i := range mongoResult {
		slice[i] = &mongoResult[i]
	}

	return slice, err
}

func (m *mongoRepository) SetMemberRole(ctx context.Context, orgID string, memberID string, role roles.Role) error {
	return m.setMember(ctx, orgID, memberID, role, model.Metadata{})
}

func (m *mongoRepository) SetMemberRoleWithMetadata(ctx context.Context, orgID string, memberID string, role roles.Role, meta model.Metadata) error {
	return m.setMember(ctx, orgID, memberID, role, meta)
}

// setMember upserts the membership document. joinedAt is first-write-wins
// ($setOnInsert); updatedAt is always refreshed; nil metadata fields are
// left untouched.
func (m *mongoRepository) setMember(ctx context.Context, orgID string, memberID string, role roles.Role, meta model.Metadata) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()

	set := bson.M{
		"role":      string(role),
		"updatedAt": now,
	}
	if meta.DisplayName != nil {
		set["displayName"] = *meta.DisplayName
	}
	if meta.Email != nil {
		set["email"] = *meta.Email
	}

	_, err := m.memberCollection.UpdateOne(ctx,
		bson.M{"_id": model.MemberID{OrgID: orgID, MemberID: memberID}},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"joinedAt": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (m *mongoRepository) RemoveMember(ctx context.Context, orgID string, memberID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Deleting a missing membership is not an error.
	_, err := m.memberCollection.DeleteOne(ctx, bson.M{"_id": model.MemberID{OrgID: orgID, MemberID: memberID}})
	return err
}
