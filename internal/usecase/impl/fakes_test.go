package impl

import (
	"context"
	"sort"
	"sync"
	"time"

	"pokeradar/internal/domain/entity"
	"pokeradar/internal/domain/repository"
	"pokeradar/internal/domain/service"

	"github.com/google/uuid"
)

// In-memory repository fakes shared by the service tests. All of them are
// safe for concurrent use so the sweep worker pool can run against them.

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*entity.User
	allErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Save(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if existing, ok := f.users[user.ChatID]; ok {
		existing.FirstName = user.FirstName
		existing.LastName = user.LastName
		existing.Username = user.Username
		existing.UpdatedAt = time.Now()
		user.ID = existing.ID
		user.RadiusMeters = existing.RadiusMeters

		return nil
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.users[user.ChatID] = &stored

	return nil
}

func (f *fakeUserRepo) FindByChatID(_ context.Context, chatID string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[chatID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (f *fakeUserRepo) All(_ context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.allErr != nil {
		return nil, f.allErr
	}

	users := make([]*entity.User, 0, len(f.users))
	for _, user := range f.users {
		copied := *user
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ChatID < users[j].ChatID })

	return users, nil
}

func (f *fakeUserRepo) UpdateRadius(_ context.Context, userID uuid.UUID, radiusMeters float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.ID == userID {
			user.RadiusMeters = radiusMeters

			return nil
		}
	}

	return repository.ErrUserNotFound
}

type fakePositionRepo struct {
	mu     sync.Mutex
	latest map[uuid.UUID]*entity.Position
}

func newFakePositionRepo() *fakePositionRepo {
	return &fakePositionRepo{latest: make(map[uuid.UUID]*entity.Position)}
}

func (f *fakePositionRepo) Record(_ context.Context, position *entity.Position) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	copied := *position
	f.latest[position.UserID] = &copied

	return nil
}

func (f *fakePositionRepo) FindLatest(_ context.Context, userID uuid.UUID) (*entity.Position, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	position, ok := f.latest[userID]
	if !ok {
		return nil, repository.ErrPositionNotFound
	}
	copied := *position

	return &copied, nil
}

type fakeSpeciesRepo struct {
	mu      sync.Mutex
	catalog map[int]*entity.Species
}

func newFakeSpeciesRepo(species ...*entity.Species) *fakeSpeciesRepo {
	repo := &fakeSpeciesRepo{catalog: make(map[int]*entity.Species)}
	for _, sp := range species {
		copied := *sp
		repo.catalog[sp.ID] = &copied
	}

	return repo
}

func (f *fakeSpeciesRepo) Save(_ context.Context, species *entity.Species) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	copied := *species
	f.catalog[species.ID] = &copied

	return nil
}

func (f *fakeSpeciesRepo) All(_ context.Context) ([]*entity.Species, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	catalog := make([]*entity.Species, 0, len(f.catalog))
	for _, species := range f.catalog {
		copied := *species
		catalog = append(catalog, &copied)
	}
	sort.Slice(catalog, func(i, j int) bool { return catalog[i].ID < catalog[j].ID })

	return catalog, nil
}

func (f *fakeSpeciesRepo) FindByName(_ context.Context, name string) (*entity.Species, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, species := range f.catalog {
		if species.InternalName == name || species.Name == name {
			copied := *species

			return &copied, nil
		}
	}

	return nil, repository.ErrSpeciesNotFound
}

type filterKey struct {
	userID    uuid.UUID
	speciesID int
}

type fakeFilterRepo struct {
	mu      sync.Mutex
	filters map[filterKey]struct{}
	catalog *fakeSpeciesRepo
	listErr error
}

func newFakeFilterRepo(catalog *fakeSpeciesRepo) *fakeFilterRepo {
	return &fakeFilterRepo{
		filters: make(map[filterKey]struct{}),
		catalog: catalog,
	}
}

func (f *fakeFilterRepo) Add(_ context.Context, userID uuid.UUID, speciesID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := filterKey{userID: userID, speciesID: speciesID}
	if _, ok := f.filters[key]; ok {
		return repository.ErrDuplicateFilter
	}
	f.filters[key] = struct{}{}

	return nil
}

func (f *fakeFilterRepo) Remove(_ context.Context, userID uuid.UUID, speciesID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.filters, filterKey{userID: userID, speciesID: speciesID})

	return nil
}

func (f *fakeFilterRepo) ListSpecies(_ context.Context, userID uuid.UUID) ([]*entity.Species, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}

	var species []*entity.Species
	for key := range f.filters {
		if key.userID != userID {
			continue
		}
		if entry, ok := f.catalog.catalog[key.speciesID]; ok {
			copied := *entry
			species = append(species, &copied)
		}
	}
	sort.Slice(species, func(i, j int) bool { return species[i].ID < species[j].ID })

	return species, nil
}

func (f *fakeFilterRepo) snapshot() map[filterKey]struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()

	copied := make(map[filterKey]struct{}, len(f.filters))
	for key := range f.filters {
		copied[key] = struct{}{}
	}

	return copied
}

func (f *fakeFilterRepo) restore(snapshot map[filterKey]struct{}) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.filters = snapshot
}

type fakeSpawnRepo struct {
	mu      sync.Mutex
	spawns  map[string]*entity.Spawn
	listErr error
}

func newFakeSpawnRepo() *fakeSpawnRepo {
	return &fakeSpawnRepo{spawns: make(map[string]*entity.Spawn)}
}

func (f *fakeSpawnRepo) Upsert(_ context.Context, spawn *entity.Spawn) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	copied := *spawn
	f.spawns[spawn.EncounterID] = &copied

	return nil
}

func (f *fakeSpawnRepo) ListActive(_ context.Context, now time.Time) ([]*entity.Spawn, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}

	var active []*entity.Spawn
	for _, spawn := range f.spawns {
		if spawn.Active(now) {
			copied := *spawn
			active = append(active, &copied)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].ExpiresAt.Before(active[j].ExpiresAt) })

	return active, nil
}

type ledgerKey struct {
	encounterID string
	userID      uuid.UUID
}

type fakeNotificationRepo struct {
	mu     sync.Mutex
	ledger map[ledgerKey]struct{}
	errOn  map[ledgerKey]error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{
		ledger: make(map[ledgerKey]struct{}),
		errOn:  make(map[ledgerKey]error),
	}
}

func (f *fakeNotificationRepo) TryInsert(_ context.Context, encounterID string, userID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := ledgerKey{encounterID: encounterID, userID: userID}
	if err, ok := f.errOn[key]; ok {
		return false, err
	}
	if _, ok := f.ledger[key]; ok {
		return false, nil
	}
	f.ledger[key] = struct{}{}

	return true, nil
}

func (f *fakeNotificationRepo) seed(encounterID string, userID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ledger[ledgerKey{encounterID: encounterID, userID: userID}] = struct{}{}
}

type sentAlert struct {
	chatID string
	alert  *service.SpawnAlert
}

type fakeDispatcher struct {
	mu      sync.Mutex
	sent    []sentAlert
	failFor map[string]error
}

func newFakeDispatcher() *fakeDispatcher {
	return &fakeDispatcher{failFor: make(map[string]error)}
}

func (f *fakeDispatcher) Send(_ context.Context, chatID string, alert *service.SpawnAlert) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.failFor[chatID]; ok {
		return err
	}
	f.sent = append(f.sent, sentAlert{chatID: chatID, alert: alert})

	return nil
}

func (f *fakeDispatcher) sentTo(chatID string) []sentAlert {
	f.mu.Lock()
	defer f.mu.Unlock()

	var alerts []sentAlert
	for _, entry := range f.sent {
		if entry.chatID == chatID {
			alerts = append(alerts, entry)
		}
	}

	return alerts
}

type fakePublisher struct {
	mu     sync.Mutex
	events []*service.SpawnAlertEvent
}

func (f *fakePublisher) PublishSpawnAlert(_ context.Context, event *service.SpawnAlertEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.events = append(f.events, event)

	return nil
}

func (f *fakePublisher) Close() error { return nil }

// fakeTxManager hands the callback a factory over the shared fakes. Filter
// state is snapshotted so a failing callback observes rollback semantics.
type fakeTxManager struct {
	userRepo     *fakeUserRepo
	positionRepo *fakePositionRepo
	speciesRepo  *fakeSpeciesRepo
	filterRepo   *fakeFilterRepo
}

type fakeRepoFactory struct {
	tm *fakeTxManager
}

func (f *fakeRepoFactory) NewUserRepository() repository.UserRepository {
	return f.tm.userRepo
}

func (f *fakeRepoFactory) NewPositionRepository() repository.PositionRepository {
	return f.tm.positionRepo
}

func (f *fakeRepoFactory) NewSpeciesRepository() repository.SpeciesRepository {
	return f.tm.speciesRepo
}

func (f *fakeRepoFactory) NewFilterRepository() repository.FilterRepository {
	return f.tm.filterRepo
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	snapshot := tm.filterRepo.snapshot()

	if err := fn(&fakeRepoFactory{tm: tm}); err != nil {
		tm.filterRepo.restore(snapshot)

		return err
	}

	return nil
}
