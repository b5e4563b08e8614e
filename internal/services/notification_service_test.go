package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"freelancehub_backend/internal/config"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeNotificationRepo struct {
	mu      sync.Mutex
	rows    []*models.Notification
	failFor map[string]error // userID -> error on create
	seq     int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{failFor: map[string]error{}}
}

func (f *fakeNotificationRepo) CreateNotification(n *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor[n.UserID]; err != nil {
		return err
	}
	if !models.ValidNotificationTypes[n.Type] {
		return fmt.Errorf("%w: unknown type %q", repositories.ErrInvalidNotification, n.Type)
	}
	f.seq++
	n.ID = fmt.Sprintf("n-%d", f.seq)
	n.CreatedAt = time.Now().Add(time.Duration(f.seq) * time.Millisecond)
	stored := *n
	f.rows = append(f.rows, &stored)
	return nil
}

func (f *fakeNotificationRepo) FindNotificationByID(id string) (*models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.ID == id {
			found := *row
			return &found, nil
		}
	}
	return nil, repositories.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) FindUserNotifications(userID string, criteria repositories.NotificationCriteria) ([]models.Notification, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []models.Notification
	for _, row := range f.rows {
		if row.UserID != userID {
			continue
		}
		if criteria.UnreadOnly && row.IsRead {
			continue
		}
		if criteria.Type != "" && row.Type != criteria.Type {
			continue
		}
		matched = append(matched, *row)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	offset := (criteria.Page - 1) * criteria.PageSize
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + criteria.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeNotificationRepo) MarkManyAsRead(userID string, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	idSet := map[string]bool{}
	for _, id := range ids {
		idSet[id] = true
	}
	now := time.Now()
	for _, row := range f.rows {
		if row.UserID == userID && idSet[row.ID] {
			row.IsRead = true
			row.ReadAt = &now
		}
	}
	return nil
}

func (f *fakeNotificationRepo) MarkAllAsRead(userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	for _, row := range f.rows {
		if row.UserID == userID && !row.IsRead {
			row.IsRead = true
			row.ReadAt = &now
		}
	}
	return nil
}

func (f *fakeNotificationRepo) DeleteNotification(userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, row := range f.rows {
		if row.ID == id && row.UserID == userID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) GetUnreadCount(userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, row := range f.rows {
		if row.UserID == userID && !row.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) rowsFor(userID string) []*models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Notification
	for _, row := range f.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out
}

type fakePreferenceRepo struct {
	mu    sync.Mutex
	prefs map[string]*models.NotificationPreference
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{prefs: map[string]*models.NotificationPreference{}}
}

func (f *fakePreferenceRepo) FindByUserID(userID string) (*models.NotificationPreference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if pref, ok := f.prefs[userID]; ok {
		found := *pref
		return &found, nil
	}
	return nil, repositories.ErrPreferencesNotFound
}

func (f *fakePreferenceRepo) Create(pref *models.NotificationPreference) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *pref
	f.prefs[pref.UserID] = &stored
	return nil
}

func (f *fakePreferenceRepo) Save(pref *models.NotificationPreference) error {
	return f.Create(pref)
}

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) Create(user *models.User) error { return nil }

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			found := f.users[i]
			return &found, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			found := f.users[i]
			return &found, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Update(user *models.User) error { return nil }

func (f *fakeUserRepo) FindActiveFreelancers() ([]models.User, error) {
	var out []models.User
	for i := range f.users {
		if f.users[i].Role == models.UserRoleFreelancer && f.users[i].IsActive {
			out = append(out, f.users[i])
		}
	}
	return out, nil
}

type sentEmail struct {
	to    string
	title string
}

type fakeEmailSender struct {
	mu     sync.Mutex
	sent   []sentEmail
	failTo map[string]error
}

func newFakeEmailSender() *fakeEmailSender {
	return &fakeEmailSender{failTo: map[string]error{}}
}

func (f *fakeEmailSender) SendNotification(_ context.Context, to, _ string, n *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failTo[to]; err != nil {
		return err
	}
	f.sent = append(f.sent, sentEmail{to: to, title: n.Title})
	return nil
}

func (f *fakeEmailSender) sentTo() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, s := range f.sent {
		out = append(out, s.to)
	}
	sort.Strings(out)
	return out
}

type publishedEvent struct {
	userID string
	event  string
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (f *fakePublisher) PublishToUser(userID string, event string, _ any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, publishedEvent{userID: userID, event: event})
}

func (f *fakePublisher) pushedTo() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, e := range f.events {
		out = append(out, e.userID)
	}
	sort.Strings(out)
	return out
}

// --- test harness ---

type engineFixture struct {
	notifications *fakeNotificationRepo
	preferences   *fakePreferenceRepo
	users         *fakeUserRepo
	email         *fakeEmailSender
	push          *fakePublisher
	service       NotificationService
}

func newEngineFixture(users ...models.User) *engineFixture {
	f := &engineFixture{
		notifications: newFakeNotificationRepo(),
		preferences:   newFakePreferenceRepo(),
		users:         &fakeUserRepo{users: users},
		email:         newFakeEmailSender(),
		push:          &fakePublisher{},
	}
	f.service = NewNotificationService(
		f.notifications, f.preferences, f.users,
		f.email, f.push,
		config.NotificationsConfig{FanoutWorkers: 4, EmailTimeoutSec: 2},
	)
	return f
}

func freelancerWithSkills(id, email string, skills ...string) models.User {
	u := models.User{
		Email:     email,
		FirstName: "Test",
		Role:      models.UserRoleFreelancer,
		IsActive:  true,
	}
	u.ID = id
	item := models.PortfolioItem{FreelancerID: id}
	item.SetSkills(skills)
	u.PortfolioItems = []models.PortfolioItem{item}
	return u
}

func jobWithSkills(id, title string, skills ...string) *models.Job {
	job := &models.Job{Title: title, Budget: 500, ClientID: "client-1"}
	job.ID = id
	job.SetSkills(skills)
	return job
}

// --- fan-out ---

func TestNotifyMatchingFreelancersSkillOverlap(t *testing.T) {
	f := newEngineFixture(
		freelancerWithSkills("alice", "alice@test.dev", "Go", "SQL"),
		freelancerWithSkills("bob", "bob@test.dev", "Python"),
		freelancerWithSkills("carol", "carol@test.dev", "go"),
	)

	count, err := f.service.NotifyMatchingFreelancers(context.Background(), jobWithSkills("job-1", "API Backend", "Go", "SQL"))

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, f.notifications.rowsFor("alice"), 1)
	assert.Len(t, f.notifications.rowsFor("carol"), 1)
	assert.Empty(t, f.notifications.rowsFor("bob"))

	row := f.notifications.rowsFor("alice")[0]
	assert.Equal(t, models.NotificationTypeJobMatch, row.Type)
	assert.Equal(t, models.RelatedRef{ID: "job-1", Type: models.RelatedTypeJob}, row.Related())

	assert.Equal(t, []string{"alice", "carol"}, f.push.pushedTo())
	assert.Equal(t, []string{"alice@test.dev", "carol@test.dev"}, f.email.sentTo())
}

func TestNotifyMatchingFreelancersEmptySkills(t *testing.T) {
	f := newEngineFixture(
		freelancerWithSkills("alice", "alice@test.dev", "Go"),
	)

	count, err := f.service.NotifyMatchingFreelancers(context.Background(), jobWithSkills("job-1", "Anything"))

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, f.notifications.rows)
	assert.Empty(t, f.push.pushedTo())
}

func TestNotifyMatchingFreelancersEmailFailureIsolated(t *testing.T) {
	f := newEngineFixture(
		freelancerWithSkills("alice", "alice@test.dev", "Go"),
		freelancerWithSkills("bob", "bob@test.dev", "Go"),
		freelancerWithSkills("carol", "carol@test.dev", "Go"),
	)
	f.email.failTo["bob@test.dev"] = errors.New("smtp unavailable")

	count, err := f.service.NotifyMatchingFreelancers(context.Background(), jobWithSkills("job-1", "Go Service", "Go"))

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, []string{"alice", "bob", "carol"}, f.push.pushedTo())
	assert.Equal(t, []string{"alice@test.dev", "carol@test.dev"}, f.email.sentTo())
}

func TestNotifyMatchingFreelancersPersistFailureIsolated(t *testing.T) {
	f := newEngineFixture(
		freelancerWithSkills("alice", "alice@test.dev", "Go"),
		freelancerWithSkills("bob", "bob@test.dev", "Go"),
	)
	f.notifications.failFor["bob"] = errors.New("insert failed")

	count, err := f.service.NotifyMatchingFreelancers(context.Background(), jobWithSkills("job-1", "Go Service", "Go"))

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"alice"}, f.push.pushedTo())
}

// --- direct creation and gating ---

func TestCreateNotificationDefaultsAllEnabled(t *testing.T) {
	f := newEngineFixture(freelancerWithSkills("alice", "alice@test.dev", "Go"))

	n, err := f.service.CreateNotification(context.Background(), dto.CreateNotificationInput{
		UserID:  "alice",
		Type:    models.NotificationTypeContractCreated,
		Title:   "Contract Created",
		Message: "A contract was created.",
	})

	require.NoError(t, err)
	require.NotNil(t, n)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, []string{"alice"}, f.push.pushedTo())
	assert.Equal(t, []string{"alice@test.dev"}, f.email.sentTo())
}

func TestCreateNotificationEmailChannelDisabled(t *testing.T) {
	f := newEngineFixture(freelancerWithSkills("alice", "alice@test.dev", "Go"))
	pref := models.DefaultNotificationPreference("alice")
	pref.EmailNotifications = false
	require.NoError(t, f.preferences.Create(pref))

	_, err := f.service.CreateNotification(context.Background(), dto.CreateNotificationInput{
		UserID:  "alice",
		Type:    models.NotificationTypeMessageReceived,
		Title:   "New Message",
		Message: "hi",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, f.push.pushedTo())
	assert.Empty(t, f.email.sentTo())
}

func TestCreateNotificationPushChannelDisabled(t *testing.T) {
	f := newEngineFixture(freelancerWithSkills("alice", "alice@test.dev", "Go"))
	pref := models.DefaultNotificationPreference("alice")
	pref.PushNotifications = false
	require.NoError(t, f.preferences.Create(pref))

	_, err := f.service.CreateNotification(context.Background(), dto.CreateNotificationInput{
		UserID:  "alice",
		Type:    models.NotificationTypeMessageReceived,
		Title:   "New Message",
		Message: "hi",
	})

	require.NoError(t, err)
	assert.Empty(t, f.push.pushedTo())
	assert.Equal(t, []string{"alice@test.dev"}, f.email.sentTo())
}

func TestCreateNotificationCategoryDisabledStillPersists(t *testing.T) {
	f := newEngineFixture(freelancerWithSkills("alice", "alice@test.dev", "Go"))
	pref := models.DefaultNotificationPreference("alice")
	pref.JobMatches = false
	require.NoError(t, f.preferences.Create(pref))

	n, err := f.service.CreateNotification(context.Background(), dto.CreateNotificationInput{
		UserID:  "alice",
		Type:    models.NotificationTypeJobMatch,
		Title:   "New Job Match",
		Message: "A job matches your skills.",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
	assert.Len(t, f.notifications.rowsFor("alice"), 1)
	assert.Empty(t, f.push.pushedTo())
	assert.Empty(t, f.email.sentTo())
}

func TestCreateNotificationUnknownTypeRejected(t *testing.T) {
	f := newEngineFixture()

	_, err := f.service.CreateNotification(context.Background(), dto.CreateNotificationInput{
		UserID:  "alice",
		Type:    "spam",
		Title:   "Nope",
		Message: "nope",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestCreateNotificationMissingUserSkipsEmail(t *testing.T) {
	f := newEngineFixture() // no users registered

	n, err := f.service.CreateNotification(context.Background(), dto.CreateNotificationInput{
		UserID:  "ghost",
		Type:    models.NotificationTypeContractUpdated,
		Title:   "Contract Updated",
		Message: "terms changed",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, []string{"ghost"}, f.push.pushedTo())
	assert.Empty(t, f.email.sentTo())
}

// --- listing and read state ---

func TestGetUserNotificationsPagination(t *testing.T) {
	f := newEngineFixture(freelancerWithSkills("alice", "alice@test.dev", "Go"))
	for i := 0; i < 25; i++ {
		_, err := f.service.CreateNotification(context.Background(), dto.CreateNotificationInput{
			UserID:  "alice",
			Type:    models.NotificationTypeMessageReceived,
			Title:   fmt.Sprintf("Message %d", i),
			Message: "hi",
		})
		require.NoError(t, err)
	}

	page1, err := f.service.GetUserNotifications("alice", 1, 20)
	require.NoError(t, err)
	assert.Len(t, page1.Notifications, 20)
	assert.Equal(t, int64(25), page1.Total)
	assert.Equal(t, 2, page1.TotalPages)

	page2, err := f.service.GetUserNotifications("alice", 2, 20)
	require.NoError(t, err)
	assert.Len(t, page2.Notifications, 5)
	assert.Equal(t, 2, page2.Page)

	// Newest first.
	assert.Equal(t, "Message 24", page1.Notifications[0].Title)
}

func TestMarkAsReadScopedToOwner(t *testing.T) {
	f := newEngineFixture(
		freelancerWithSkills("alice", "alice@test.dev", "Go"),
		freelancerWithSkills("bob", "bob@test.dev", "Go"),
	)
	aliceRow, err := f.service.CreateNotification(context.Background(), dto.CreateNotificationInput{
		UserID: "alice", Type: models.NotificationTypeMessageReceived, Title: "A", Message: "a",
	})
	require.NoError(t, err)
	bobRow, err := f.service.CreateNotification(context.Background(), dto.CreateNotificationInput{
		UserID: "bob", Type: models.NotificationTypeMessageReceived, Title: "B", Message: "b",
	})
	require.NoError(t, err)

	// Alice tries to mark her own, Bob's, and a missing id.
	err = f.service.MarkAsRead("alice", []string{aliceRow.ID, bobRow.ID, "missing"})
	require.NoError(t, err)

	assert.True(t, f.notifications.rowsFor("alice")[0].IsRead)
	assert.NotNil(t, f.notifications.rowsFor("alice")[0].ReadAt)
	assert.False(t, f.notifications.rowsFor("bob")[0].IsRead)
}

func TestMarkAllAsReadIdempotent(t *testing.T) {
	f := newEngineFixture(freelancerWithSkills("alice", "alice@test.dev", "Go"))
	for i := 0; i < 3; i++ {
		_, err := f.service.CreateNotification(context.Background(), dto.CreateNotificationInput{
			UserID: "alice", Type: models.NotificationTypeMessageReceived, Title: "M", Message: "m",
		})
		require.NoError(t, err)
	}

	require.NoError(t, f.service.MarkAllAsRead("alice"))
	require.NoError(t, f.service.MarkAllAsRead("alice"))

	count, err := f.service.GetUnreadCount("alice")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteNotificationScopedToOwner(t *testing.T) {
	f := newEngineFixture(
		freelancerWithSkills("alice", "alice@test.dev", "Go"),
		freelancerWithSkills("bob", "bob@test.dev", "Go"),
	)
	bobRow, err := f.service.CreateNotification(context.Background(), dto.CreateNotificationInput{
		UserID: "bob", Type: models.NotificationTypeMessageReceived, Title: "B", Message: "b",
	})
	require.NoError(t, err)

	err = f.service.DeleteNotification("alice", bobRow.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)

	// Bob's row survives.
	assert.Len(t, f.notifications.rowsFor("bob"), 1)
	require.NoError(t, f.service.DeleteNotification("bob", bobRow.ID))
	assert.Empty(t, f.notifications.rowsFor("bob"))
}

// --- preferences ---

func TestGetPreferencesCreatesDefaults(t *testing.T) {
	f := newEngineFixture()

	prefs, err := f.service.GetNotificationPreferences("alice")
	require.NoError(t, err)
	assert.True(t, prefs.JobMatches)
	assert.True(t, prefs.EmailNotifications)
	assert.True(t, prefs.PushNotifications)
	assert.True(t, prefs.InAppNotifications)

	// The default row is persisted on first access.
	stored, err := f.preferences.FindByUserID("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.UserID)
}

func TestUpdatePreferencesPartialMerge(t *testing.T) {
	f := newEngineFixture()

	off := false
	updated, err := f.service.UpdateNotificationPreferences("alice", dto.UpdatePreferencesRequest{
		EmailNotifications: &off,
		JobMatches:         &off,
	})
	require.NoError(t, err)
	assert.False(t, updated.EmailNotifications)
	assert.False(t, updated.JobMatches)
	assert.True(t, updated.PushNotifications)
	assert.True(t, updated.ApplicationUpdates)

	// Round-trip: a later read sees the merged record.
	again, err := f.service.GetNotificationPreferences("alice")
	require.NoError(t, err)
	assert.False(t, again.EmailNotifications)
	assert.True(t, again.Messages)
}
