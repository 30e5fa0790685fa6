package service

import (
	"context"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/repository"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func newTestValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// fakeTxRunner passes a nil handle straight through: the fake repositories
// ignore it and WithTx returns the receiver.
type fakeTxRunner struct{}

func (fakeTxRunner) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeLearnerRepo struct {
	learners map[uint]models.Learner
	nextID   uint
}

func newFakeLearnerRepo(learners ...models.Learner) *fakeLearnerRepo {
	repo := &fakeLearnerRepo{learners: make(map[uint]models.Learner), nextID: 1}
	for _, learner := range learners {
		if learner.ID >= repo.nextID {
			repo.nextID = learner.ID + 1
		}
		repo.learners[learner.ID] = learner
	}
	return repo
}

func (f *fakeLearnerRepo) List(_ context.Context, filter repository.LearnerFilter) ([]models.Learner, error) {
	var out []models.Learner
	for _, learner := range f.learners {
		if filter.InsertionStatus != "" && learner.InsertionStatus != filter.InsertionStatus {
			continue
		}
		if filter.Promotion != "" && learner.Promotion != filter.Promotion {
			continue
		}
		out = append(out, learner)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeLearnerRepo) GetByID(_ context.Context, id uint) (models.Learner, error) {
	learner, ok := f.learners[id]
	if !ok {
		return models.Learner{}, gorm.ErrRecordNotFound
	}
	return learner, nil
}

func (f *fakeLearnerRepo) GetByUserID(_ context.Context, userID uint) (models.Learner, error) {
	for _, learner := range f.learners {
		if learner.UserID == userID {
			return learner, nil
		}
	}
	return models.Learner{}, gorm.ErrRecordNotFound
}

func (f *fakeLearnerRepo) Create(_ context.Context, learner *models.Learner) error {
	learner.ID = f.nextID
	f.nextID++
	f.learners[learner.ID] = *learner
	return nil
}

func (f *fakeLearnerRepo) Update(_ context.Context, learner *models.Learner) error {
	f.learners[learner.ID] = *learner
	return nil
}

func (f *fakeLearnerRepo) WithTx(*gorm.DB) repository.LearnerRepository { return f }

type fakeTrackingRepo struct {
	entries []models.InsertionTracking
	nextID  uint
}

func newFakeTrackingRepo(entries ...models.InsertionTracking) *fakeTrackingRepo {
	repo := &fakeTrackingRepo{nextID: 1}
	for _, entry := range entries {
		if entry.ID >= repo.nextID {
			repo.nextID = entry.ID + 1
		}
		repo.entries = append(repo.entries, entry)
	}
	return repo
}

func (f *fakeTrackingRepo) Append(_ context.Context, entry *models.InsertionTracking) error {
	entry.ID = f.nextID
	f.nextID++
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeTrackingRepo) History(_ context.Context, learnerID uint) ([]models.InsertionTracking, error) {
	var out []models.InsertionTracking
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].LearnerID == learnerID {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

func (f *fakeTrackingRepo) Latest(ctx context.Context, learnerID uint) (*models.InsertionTracking, error) {
	entries, err := f.History(ctx, learnerID)
	if err != nil || len(entries) == 0 {
		return nil, err
	}
	return &entries[0], nil
}

func (f *fakeTrackingRepo) WithTx(*gorm.DB) repository.TrackingRepository { return f }

type fakeJobOfferRepo struct {
	offers map[uint]models.JobOffer
	nextID uint
}

func newFakeJobOfferRepo(offers ...models.JobOffer) *fakeJobOfferRepo {
	repo := &fakeJobOfferRepo{offers: make(map[uint]models.JobOffer), nextID: 1}
	for _, offer := range offers {
		if offer.ID >= repo.nextID {
			repo.nextID = offer.ID + 1
		}
		repo.offers[offer.ID] = offer
	}
	return repo
}

func (f *fakeJobOfferRepo) List(_ context.Context, filter repository.JobOfferFilter) ([]models.JobOffer, error) {
	var out []models.JobOffer
	for _, offer := range f.offers {
		if filter.Status != "" && offer.Status != filter.Status {
			continue
		}
		if filter.ContractType != "" && offer.ContractType != filter.ContractType {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(offer.Title), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, offer)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeJobOfferRepo) GetByID(_ context.Context, id uint) (models.JobOffer, error) {
	offer, ok := f.offers[id]
	if !ok {
		return models.JobOffer{}, gorm.ErrRecordNotFound
	}
	return offer, nil
}

func (f *fakeJobOfferRepo) Create(_ context.Context, offer *models.JobOffer) error {
	offer.ID = f.nextID
	f.nextID++
	f.offers[offer.ID] = *offer
	return nil
}

func (f *fakeJobOfferRepo) Update(_ context.Context, offer *models.JobOffer) error {
	f.offers[offer.ID] = *offer
	return nil
}

func (f *fakeJobOfferRepo) WithTx(*gorm.DB) repository.JobOfferRepository { return f }

type fakeApplicationRepo struct {
	applications map[uint]models.Application
	nextID       uint
}

func newFakeApplicationRepo(applications ...models.Application) *fakeApplicationRepo {
	repo := &fakeApplicationRepo{applications: make(map[uint]models.Application), nextID: 1}
	for _, application := range applications {
		if application.ID >= repo.nextID {
			repo.nextID = application.ID + 1
		}
		repo.applications[application.ID] = application
	}
	return repo
}

func (f *fakeApplicationRepo) List(_ context.Context, filter repository.ApplicationFilter) ([]models.Application, error) {
	var out []models.Application
	for _, application := range f.applications {
		if filter.JobOfferID != nil && application.JobOfferID != *filter.JobOfferID {
			continue
		}
		if filter.LearnerID != nil && application.LearnerID != *filter.LearnerID {
			continue
		}
		if filter.Status != "" && application.Status != filter.Status {
			continue
		}
		out = append(out, application)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id uint) (models.Application, error) {
	application, ok := f.applications[id]
	if !ok {
		return models.Application{}, gorm.ErrRecordNotFound
	}
	return application, nil
}

func (f *fakeApplicationRepo) GetByOfferAndLearner(_ context.Context, offerID, learnerID uint) (models.Application, error) {
	for _, application := range f.applications {
		if application.JobOfferID == offerID && application.LearnerID == learnerID {
			return application, nil
		}
	}
	return models.Application{}, gorm.ErrRecordNotFound
}

func (f *fakeApplicationRepo) Create(_ context.Context, application *models.Application) error {
	for _, existing := range f.applications {
		if existing.JobOfferID == application.JobOfferID && existing.LearnerID == application.LearnerID {
			return gorm.ErrDuplicatedKey
		}
	}
	application.ID = f.nextID
	f.nextID++
	f.applications[application.ID] = *application
	return nil
}

func (f *fakeApplicationRepo) Update(_ context.Context, application *models.Application) error {
	f.applications[application.ID] = *application
	return nil
}

func (f *fakeApplicationRepo) WithTx(*gorm.DB) repository.ApplicationRepository { return f }

type fakeEventRepo struct {
	events        map[uint]models.Event
	nextID        uint
	lockedFetches int
}

func newFakeEventRepo(events ...models.Event) *fakeEventRepo {
	repo := &fakeEventRepo{events: make(map[uint]models.Event), nextID: 1}
	for _, event := range events {
		if event.ID >= repo.nextID {
			repo.nextID = event.ID + 1
		}
		repo.events[event.ID] = event
	}
	return repo
}

func (f *fakeEventRepo) List(_ context.Context, filter repository.EventFilter) ([]models.Event, error) {
	var out []models.Event
	for _, event := range f.events {
		if filter.Status != "" && event.Status != filter.Status {
			continue
		}
		if filter.Type != "" && event.Type != filter.Type {
			continue
		}
		if filter.UpcomingAfter != nil && !event.StartDate.After(*filter.UpcomingAfter) {
			continue
		}
		out = append(out, event)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id uint) (models.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return models.Event{}, gorm.ErrRecordNotFound
	}
	return event, nil
}

func (f *fakeEventRepo) GetByIDForUpdate(ctx context.Context, id uint) (models.Event, error) {
	f.lockedFetches++
	return f.GetByID(ctx, id)
}

func (f *fakeEventRepo) Create(_ context.Context, event *models.Event) error {
	event.ID = f.nextID
	f.nextID++
	f.events[event.ID] = *event
	return nil
}

func (f *fakeEventRepo) Update(_ context.Context, event *models.Event) error {
	f.events[event.ID] = *event
	return nil
}

func (f *fakeEventRepo) WithTx(*gorm.DB) repository.EventRepository { return f }

type fakeParticipantRepo struct {
	participants map[uint]models.EventParticipant
	nextID       uint
}

func newFakeParticipantRepo(participants ...models.EventParticipant) *fakeParticipantRepo {
	repo := &fakeParticipantRepo{participants: make(map[uint]models.EventParticipant), nextID: 1}
	for _, participant := range participants {
		if participant.ID >= repo.nextID {
			repo.nextID = participant.ID + 1
		}
		repo.participants[participant.ID] = participant
	}
	return repo
}

func (f *fakeParticipantRepo) ListForEvent(_ context.Context, eventID uint) ([]models.EventParticipant, error) {
	var out []models.EventParticipant
	for _, participant := range f.participants {
		if participant.EventID == eventID {
			out = append(out, participant)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeParticipantRepo) GetByID(_ context.Context, id uint) (models.EventParticipant, error) {
	participant, ok := f.participants[id]
	if !ok {
		return models.EventParticipant{}, gorm.ErrRecordNotFound
	}
	return participant, nil
}

func (f *fakeParticipantRepo) GetByEventAndLearner(_ context.Context, eventID, learnerID uint) (models.EventParticipant, error) {
	for _, participant := range f.participants {
		if participant.EventID == eventID && participant.LearnerID == learnerID {
			return participant, nil
		}
	}
	return models.EventParticipant{}, gorm.ErrRecordNotFound
}

func (f *fakeParticipantRepo) CountOccupied(_ context.Context, eventID uint) (int64, error) {
	var count int64
	for _, participant := range f.participants {
		if participant.EventID == eventID && participant.CountsTowardCapacity() {
			count++
		}
	}
	return count, nil
}

func (f *fakeParticipantRepo) Create(_ context.Context, participant *models.EventParticipant) error {
	for _, existing := range f.participants {
		if existing.EventID == participant.EventID && existing.LearnerID == participant.LearnerID {
			return gorm.ErrDuplicatedKey
		}
	}
	participant.ID = f.nextID
	f.nextID++
	f.participants[participant.ID] = *participant
	return nil
}

func (f *fakeParticipantRepo) Update(_ context.Context, participant *models.EventParticipant) error {
	f.participants[participant.ID] = *participant
	return nil
}

func (f *fakeParticipantRepo) WithTx(*gorm.DB) repository.ParticipantRepository { return f }

type fakeUserRepo struct {
	users  map[uint]models.User
	nextID uint
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uint]models.User), nextID: 1}
	for _, user := range users {
		if user.ID >= repo.nextID {
			repo.nextID = user.ID + 1
		}
		repo.users[user.ID] = user
	}
	return repo
}

func (f *fakeUserRepo) List(_ context.Context, filter repository.UserFilter) ([]models.User, error) {
	var out []models.User
	for _, user := range f.users {
		if filter.Role != "" && user.Role != filter.Role {
			continue
		}
		if filter.IsActive != nil && user.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uint) (models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, id uint, active bool) error {
	user, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.IsActive = active
	f.users[id] = user
	return nil
}

func (f *fakeUserRepo) WithTx(*gorm.DB) repository.UserRepository { return f }

type fakeCompanyRepo struct {
	companies map[uint]models.Company
	nextID    uint
}

func newFakeCompanyRepo(companies ...models.Company) *fakeCompanyRepo {
	repo := &fakeCompanyRepo{companies: make(map[uint]models.Company), nextID: 1}
	for _, company := range companies {
		if company.ID >= repo.nextID {
			repo.nextID = company.ID + 1
		}
		repo.companies[company.ID] = company
	}
	return repo
}

func (f *fakeCompanyRepo) List(_ context.Context, filter repository.CompanyFilter) ([]models.Company, error) {
	var out []models.Company
	for _, company := range f.companies {
		if filter.PartnershipStatus != "" && company.PartnershipStatus != filter.PartnershipStatus {
			continue
		}
		out = append(out, company)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id uint) (models.Company, error) {
	company, ok := f.companies[id]
	if !ok {
		return models.Company{}, gorm.ErrRecordNotFound
	}
	return company, nil
}

func (f *fakeCompanyRepo) GetByUserID(_ context.Context, userID uint) (models.Company, error) {
	for _, company := range f.companies {
		if company.UserID == userID {
			return company, nil
		}
	}
	return models.Company{}, gorm.ErrRecordNotFound
}

func (f *fakeCompanyRepo) Create(_ context.Context, company *models.Company) error {
	company.ID = f.nextID
	f.nextID++
	f.companies[company.ID] = *company
	return nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, company *models.Company) error {
	f.companies[company.ID] = *company
	return nil
}

func (f *fakeCompanyRepo) WithTx(*gorm.DB) repository.CompanyRepository { return f }

type recordedActivity struct {
	entries []ActivityEntry
}

func (r *recordedActivity) Record(_ context.Context, entry ActivityEntry) (dto.ActivityResponse, error) {
	r.entries = append(r.entries, entry)
	return dto.ActivityResponse{}, nil
}
