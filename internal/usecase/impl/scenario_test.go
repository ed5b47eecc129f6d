package impl

import (
	"context"
	"testing"

	"beautymap/internal/domain/entity"
	domainerrors "beautymap/internal/domain/errors"
	"beautymap/internal/domain/repository"
	"beautymap/internal/infra/persistence/model"
	"beautymap/internal/infra/persistence/postgres"
	"beautymap/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// scenarioEnv runs the use cases against real repositories on in-memory SQLite.
type scenarioEnv struct {
	db        *gorm.DB
	txManager repository.TransactionManager
	profiles  usecase.ProfileUsecase
	catalog   usecase.CatalogUsecase
	reviews   usecase.ReviewUsecase
	messages  usecase.MessageUsecase
}

func newScenarioEnv(t *testing.T) *scenarioEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(context.Background(), db))

	txManager := postgres.NewTransactionManager(db)
	log := discardLogger()

	return &scenarioEnv{
		db:        db,
		txManager: txManager,
		profiles:  NewProfileService(ProfileServiceParams{TxManager: txManager, Logger: log}),
		catalog:   NewCatalogService(txManager, log),
		reviews:   NewReviewService(ReviewServiceParams{TxManager: txManager, Logger: log}),
		messages:  NewMessageService(MessageServiceParams{TxManager: txManager, Logger: log}),
	}
}

func (env *scenarioEnv) createProfile(t *testing.T, username string, role entity.Role) *entity.Profile {
	t.Helper()

	profile, err := env.profiles.CreateProfile(context.Background(), "user_"+username, &usecase.CreateProfileInput{
		Username: username,
		Role:     role,
	})
	require.NoError(t, err)

	return profile
}

func (env *scenarioEnv) rating(t *testing.T, providerID int64) (float64, int) {
	t.Helper()

	detail, err := env.profiles.GetProfile(context.Background(), providerID)
	require.NoError(t, err)

	return detail.Profile.Rating, detail.Profile.ReviewCount
}

func (env *scenarioEnv) count(t *testing.T, m any, query string, args ...any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, env.db.Model(m).Where(query, args...).Count(&n).Error)

	return n
}

func TestScenario_RatingFollowsReviews(t *testing.T) {
	env := newScenarioEnv(t)
	ctx := context.Background()

	provider := env.createProfile(t, "sarah_beauty", entity.RoleProvider)
	clientC := env.createProfile(t, "client_c", entity.RoleClient)
	clientD := env.createProfile(t, "client_d", entity.RoleClient)

	reviewC, err := env.reviews.CreateReview(ctx, clientC.ID, &usecase.CreateReviewInput{ProviderID: provider.ID, Rating: 4})
	require.NoError(t, err)
	rating, count := env.rating(t, provider.ID)
	assert.InDelta(t, 4.0, rating, 1e-9)
	assert.Equal(t, 1, count)

	_, err = env.reviews.CreateReview(ctx, clientD.ID, &usecase.CreateReviewInput{ProviderID: provider.ID, Rating: 2})
	require.NoError(t, err)
	rating, count = env.rating(t, provider.ID)
	assert.InDelta(t, 3.0, rating, 1e-9)
	assert.Equal(t, 2, count)

	require.NoError(t, env.reviews.DeleteReview(ctx, clientC, reviewC.ID))
	rating, count = env.rating(t, provider.ID)
	assert.InDelta(t, 2.0, rating, 1e-9)
	assert.Equal(t, 1, count)

	reviews, err := env.reviews.ListReviews(ctx, provider.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.NoError(t, env.reviews.DeleteReview(ctx, clientD, reviews[0].ID))

	rating, count = env.rating(t, provider.ID)
	assert.Zero(t, rating)
	assert.Zero(t, count)
}

func TestScenario_DuplicateReviewRejected(t *testing.T) {
	env := newScenarioEnv(t)
	ctx := context.Background()

	provider := env.createProfile(t, "sarah_beauty", entity.RoleProvider)
	client := env.createProfile(t, "client_c", entity.RoleClient)

	_, err := env.reviews.CreateReview(ctx, client.ID, &usecase.CreateReviewInput{ProviderID: provider.ID, Rating: 5})
	require.NoError(t, err)

	_, err = env.reviews.CreateReview(ctx, client.ID, &usecase.CreateReviewInput{ProviderID: provider.ID, Rating: 1})
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyReviewed))

	rating, count := env.rating(t, provider.ID)
	assert.InDelta(t, 5.0, rating, 1e-9)
	assert.Equal(t, 1, count)
	assert.Equal(t, int64(1), env.count(t, &model.ReviewModel{}, "provider_id = ?", provider.ID))
}

func TestScenario_ServiceNamesUniquePerProvider(t *testing.T) {
	env := newScenarioEnv(t)
	ctx := context.Background()

	sarah := env.createProfile(t, "sarah_beauty", entity.RoleProvider)
	kim := env.createProfile(t, "nails_by_kim", entity.RoleProvider)

	_, err := env.catalog.CreateService(ctx, sarah.ID, &usecase.ServiceInput{Name: "Lash Lift"})
	require.NoError(t, err)

	_, err = env.catalog.CreateService(ctx, sarah.ID, &usecase.ServiceInput{Name: "LASH LIFT"})
	assert.True(t, errors.Is(err, domainerrors.ErrServiceNameTaken))

	_, err = env.catalog.CreateService(ctx, kim.ID, &usecase.ServiceInput{Name: "lash lift"})
	require.NoError(t, err)
}

func TestScenario_ServicesOnlyOwnedByProviders(t *testing.T) {
	env := newScenarioEnv(t)
	ctx := context.Background()

	provider := env.createProfile(t, "sarah_beauty", entity.RoleProvider)
	lashLift, err := env.catalog.CreateService(ctx, provider.ID, &usecase.ServiceInput{Name: "Lash Lift"})
	require.NoError(t, err)

	_, err = env.profiles.UpdateProfile(ctx, provider.ID, &usecase.UpdateProfileInput{Role: ptr(entity.RoleClient)})
	assert.True(t, errors.Is(err, domainerrors.ErrProviderHasServices))

	detail, err := env.profiles.GetProfile(ctx, provider.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleProvider, detail.Profile.Role)
	assert.Equal(t, int64(1), env.count(t, &model.ServiceModel{}, "provider_id = ?", provider.ID))

	require.NoError(t, env.catalog.DeleteService(ctx, detail.Profile, lashLift.ID))

	updated, err := env.profiles.UpdateProfile(ctx, provider.ID, &usecase.UpdateProfileInput{Role: ptr(entity.RoleClient)})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClient, updated.Role)
	assert.Zero(t, env.count(t, &model.ServiceModel{}, "provider_id = ?", provider.ID))
}

func TestScenario_UsernameCheckAgreesWithCreate(t *testing.T) {
	env := newScenarioEnv(t)
	ctx := context.Background()

	env.createProfile(t, "sarah_beauty", entity.RoleProvider)

	available, err := env.profiles.CheckUsername(ctx, "sarah_beauty")
	require.NoError(t, err)
	assert.False(t, available)

	_, err = env.profiles.CreateProfile(ctx, "user_other", &usecase.CreateProfileInput{Username: "sarah_beauty", Role: entity.RoleClient})
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))

	available, err = env.profiles.CheckUsername(ctx, "fresh_name")
	require.NoError(t, err)
	assert.True(t, available)

	_, err = env.profiles.CreateProfile(ctx, "user_fresh", &usecase.CreateProfileInput{Username: "fresh_name", Role: entity.RoleClient})
	require.NoError(t, err)
}

func TestScenario_DeleteProfileLeavesNoDependents(t *testing.T) {
	env := newScenarioEnv(t)
	ctx := context.Background()

	provider := env.createProfile(t, "sarah_beauty", entity.RoleProvider)
	other := env.createProfile(t, "nails_by_kim", entity.RoleProvider)
	client := env.createProfile(t, "client_c", entity.RoleClient)
	bystander := env.createProfile(t, "client_d", entity.RoleClient)

	_, err := env.catalog.CreateService(ctx, provider.ID, &usecase.ServiceInput{Name: "Lash Lift"})
	require.NoError(t, err)
	_, err = env.reviews.CreateReview(ctx, client.ID, &usecase.CreateReviewInput{ProviderID: provider.ID, Rating: 5})
	require.NoError(t, err)
	_, err = env.reviews.CreateReview(ctx, provider.ID, &usecase.CreateReviewInput{ProviderID: other.ID, Rating: 1})
	require.NoError(t, err)
	_, err = env.reviews.CreateReview(ctx, bystander.ID, &usecase.CreateReviewInput{ProviderID: other.ID, Rating: 5})
	require.NoError(t, err)
	_, err = env.messages.SendMessage(ctx, client.ID, &usecase.SendMessageInput{ReceiverID: provider.ID, Content: "Are you free Friday?"})
	require.NoError(t, err)
	_, err = env.messages.SendMessage(ctx, provider.ID, &usecase.SendMessageInput{ReceiverID: client.ID, Content: "Yes!"})
	require.NoError(t, err)

	require.NoError(t, env.profiles.DeleteProfile(ctx, provider.ID))

	assert.Zero(t, env.count(t, &model.ProfileModel{}, "id = ?", provider.ID))
	assert.Zero(t, env.count(t, &model.ServiceModel{}, "provider_id = ?", provider.ID))
	assert.Zero(t, env.count(t, &model.ReviewModel{}, "provider_id = ? OR client_id = ?", provider.ID, provider.ID))
	assert.Zero(t, env.count(t, &model.MessageModel{}, "sender_id = ? OR receiver_id = ?", provider.ID, provider.ID))
	assert.Zero(t, env.count(t, &model.NotificationModel{}, "profile_id = ?", provider.ID))

	rating, count := env.rating(t, other.ID)
	assert.InDelta(t, 5.0, rating, 1e-9)
	assert.Equal(t, 1, count)

	_, err = env.profiles.GetProfile(ctx, provider.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestScenario_DeleteConversationOnlyTouchesPair(t *testing.T) {
	env := newScenarioEnv(t)
	ctx := context.Background()

	a := env.createProfile(t, "alice", entity.RoleClient)
	b := env.createProfile(t, "bella", entity.RoleProvider)
	c := env.createProfile(t, "carla", entity.RoleProvider)

	send := func(from, to *entity.Profile, content string) {
		_, err := env.messages.SendMessage(ctx, from.ID, &usecase.SendMessageInput{ReceiverID: to.ID, Content: content})
		require.NoError(t, err)
	}
	send(a, b, "hi b")
	send(b, a, "hi a")
	send(a, c, "hi c")
	send(c, b, "c to b")

	require.NoError(t, env.messages.DeleteConversation(ctx, a.ID, b.ID))

	remainingA, err := env.messages.ListMessages(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, remainingA, 1)
	assert.Equal(t, "hi c", remainingA[0].Content)

	remainingB, err := env.messages.ListMessages(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, remainingB, 1)
	assert.Equal(t, "c to b", remainingB[0].Content)
}

func TestScenario_SingleConversation(t *testing.T) {
	env := newScenarioEnv(t)
	ctx := context.Background()

	sender := env.createProfile(t, "alice", entity.RoleClient)
	receiver := env.createProfile(t, "bella", entity.RoleProvider)

	sent, err := env.messages.SendMessage(ctx, sender.ID, &usecase.SendMessageInput{ReceiverID: receiver.ID, Content: "Hello!"})
	require.NoError(t, err)

	conversations, err := env.messages.ListConversations(ctx, sender.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, receiver.ID, conversations[0].PartnerID)
	require.Len(t, conversations[0].Messages, 1)
	assert.Equal(t, sent.ID, conversations[0].Messages[0].ID)
	assert.Zero(t, conversations[0].UnreadCount)

	inbox, err := env.messages.ListConversations(ctx, receiver.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, 1, inbox[0].UnreadCount)

	_, err = env.messages.GetConversation(ctx, receiver.ID, sender.ID)
	require.NoError(t, err)

	inbox, err = env.messages.ListConversations(ctx, receiver.ID)
	require.NoError(t, err)
	assert.Zero(t, inbox[0].UnreadCount)
}
