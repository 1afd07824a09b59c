package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"interview-eval-be/internal/entity"
	"interview-eval-be/internal/repository/contract"
	"interview-eval-be/internal/repository/unitofwork"
	"interview-eval-be/pkg/evaluator"
)

// nopLogger satisfies logger.ILogger for tests.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// fakeStore is the shared backing state of all fake repositories, so tests
// observe what every unit of work left behind.
type fakeStore struct {
	sessions     map[int]*entity.Session
	participants map[string]*entity.RoomParticipant
	applicants   map[string]*entity.Applicant
	keywords     map[string]*entity.Keyword
	scores       map[string][]*entity.ApplicantKeywordScore
	criteriaRows []contract.CriteriaRow

	sessionUpdateErr   error
	applicantUpdateErr map[string]error
	scoreCreateErr     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sessions:           map[int]*entity.Session{},
		participants:       map[string]*entity.RoomParticipant{},
		applicants:         map[string]*entity.Applicant{},
		keywords:           map[string]*entity.Keyword{},
		scores:             map[string][]*entity.ApplicantKeywordScore{},
		applicantUpdateErr: map[string]error{},
	}
}

func participantKey(roomId, userId string) string {
	return roomId + "|" + userId
}

func (s *fakeStore) addParticipant(roomId, userId string, role entity.ParticipantRole, status entity.ParticipantStatus) {
	s.participants[participantKey(roomId, userId)] = &entity.RoomParticipant{
		RoomId:            roomId,
		UserId:            userId,
		ParticipantRole:   role,
		ParticipantStatus: status,
		LastPingAt:        time.Now().Add(-time.Minute),
	}
}

// fakeUnitOfWork snapshots repository state on Begin and restores it on
// Rollback so transactional no-mutation guarantees are actually checkable.
type fakeUnitOfWork struct {
	store *fakeStore

	inTx       bool
	began      bool
	committed  bool
	rolledBack bool
	snapshot   *fakeStore
}

type fakeUowFactory struct {
	store *fakeStore
	uows  []*fakeUnitOfWork
}

func newFakeUowFactory(store *fakeStore) *fakeUowFactory {
	return &fakeUowFactory{store: store}
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	uow := &fakeUnitOfWork{store: f.store}
	f.uows = append(f.uows, uow)
	return uow
}

func snapshotStore(s *fakeStore) *fakeStore {
	cp := newFakeStore()
	for k, v := range s.sessions {
		c := *v
		cp.sessions[k] = &c
	}
	for k, v := range s.participants {
		c := *v
		cp.participants[k] = &c
	}
	for k, v := range s.applicants {
		c := *v
		cp.applicants[k] = &c
	}
	for k, v := range s.keywords {
		c := *v
		cp.keywords[k] = &c
	}
	for k, v := range s.scores {
		cp.scores[k] = append([]*entity.ApplicantKeywordScore{}, v...)
	}
	return cp
}

func restoreStore(dst, src *fakeStore) {
	dst.sessions = src.sessions
	dst.participants = src.participants
	dst.applicants = src.applicants
	dst.keywords = src.keywords
	dst.scores = src.scores
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.began = true
	u.inTx = true
	u.snapshot = snapshotStore(u.store)
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	if !u.inTx {
		return errors.New("commit without begin")
	}
	u.inTx = false
	u.committed = true
	u.snapshot = nil
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	if !u.inTx {
		return nil
	}
	u.inTx = false
	u.rolledBack = true
	if u.snapshot != nil {
		restoreStore(u.store, u.snapshot)
	}
	return nil
}

func (u *fakeUnitOfWork) SessionRepository() contract.SessionRepository {
	return &fakeSessionRepo{store: u.store}
}

func (u *fakeUnitOfWork) RoomParticipantRepository() contract.RoomParticipantRepository {
	return &fakeParticipantRepo{store: u.store}
}

func (u *fakeUnitOfWork) ApplicantRepository() contract.ApplicantRepository {
	return &fakeApplicantRepo{store: u.store}
}

func (u *fakeUnitOfWork) KeywordRepository() contract.KeywordRepository {
	return &fakeKeywordRepo{store: u.store}
}

func (u *fakeUnitOfWork) ApplicantKeywordScoreRepository() contract.ApplicantKeywordScoreRepository {
	return &fakeScoreRepo{store: u.store}
}

func (u *fakeUnitOfWork) CriteriaRepository() contract.CriteriaRepository {
	return &fakeCriteriaRepo{store: u.store}
}

type fakeSessionRepo struct {
	store *fakeStore
}

func (r *fakeSessionRepo) FindByID(ctx context.Context, id int) (*entity.Session, error) {
	if s, ok := r.store.sessions[id]; ok {
		c := *s
		return &c, nil
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindActiveByRoom(ctx context.Context, roomId string) (*entity.Session, error) {
	for _, s := range r.store.sessions {
		if s.RoomId == roomId && s.SessionStatus == entity.SessionInProgress {
			c := *s
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.Session) error {
	if r.store.sessionUpdateErr != nil {
		return r.store.sessionUpdateErr
	}
	c := *session
	r.store.sessions[session.Id] = &c
	return nil
}

type fakeParticipantRepo struct {
	store *fakeStore
}

func (r *fakeParticipantRepo) FindByRoomAndUser(ctx context.Context, roomId, userId string) (*entity.RoomParticipant, error) {
	if p, ok := r.store.participants[participantKey(roomId, userId)]; ok {
		c := *p
		return &c, nil
	}
	return nil, nil
}

func (r *fakeParticipantRepo) FindByRoomAndUsersForUpdate(ctx context.Context, roomId string, userIds []string) ([]*entity.RoomParticipant, error) {
	var out []*entity.RoomParticipant
	for _, id := range userIds {
		if p, ok := r.store.participants[participantKey(roomId, id)]; ok {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeParticipantRepo) UpdateStatus(ctx context.Context, roomId, userId string, status entity.ParticipantStatus) error {
	p, ok := r.store.participants[participantKey(roomId, userId)]
	if !ok {
		return fmt.Errorf("participant %s/%s not found", roomId, userId)
	}
	p.UpdateStatus(status)
	return nil
}

func (r *fakeParticipantRepo) UpdateStatusBulk(ctx context.Context, roomId string, userIds []string, status entity.ParticipantStatus) error {
	for _, id := range userIds {
		if err := r.UpdateStatus(ctx, roomId, id, status); err != nil {
			return err
		}
	}
	return nil
}

type fakeApplicantRepo struct {
	store *fakeStore
}

func (r *fakeApplicantRepo) FindByID(ctx context.Context, id string) (*entity.Applicant, error) {
	if a, ok := r.store.applicants[id]; ok {
		c := *a
		return &c, nil
	}
	return nil, nil
}

func (r *fakeApplicantRepo) Update(ctx context.Context, applicant *entity.Applicant) error {
	if err := r.store.applicantUpdateErr[applicant.Id]; err != nil {
		return err
	}
	c := *applicant
	r.store.applicants[applicant.Id] = &c
	return nil
}

type fakeKeywordRepo struct {
	store *fakeStore
}

func (r *fakeKeywordRepo) FindByName(ctx context.Context, name string) (*entity.Keyword, error) {
	if k, ok := r.store.keywords[name]; ok {
		c := *k
		return &c, nil
	}
	return nil, nil
}

type fakeScoreRepo struct {
	store *fakeStore
}

func (r *fakeScoreRepo) DeleteByApplicant(ctx context.Context, applicantId string) error {
	delete(r.store.scores, applicantId)
	return nil
}

func (r *fakeScoreRepo) CreateBatch(ctx context.Context, scores []*entity.ApplicantKeywordScore) error {
	if r.store.scoreCreateErr != nil {
		return r.store.scoreCreateErr
	}
	for _, s := range scores {
		r.store.scores[s.ApplicantId] = append(r.store.scores[s.ApplicantId], s)
	}
	return nil
}

type fakeCriteriaRepo struct {
	store *fakeStore
}

func (r *fakeCriteriaRepo) FindByJobRoleName(ctx context.Context, jobRoleName string) ([]contract.CriteriaRow, error) {
	return r.store.criteriaRows, nil
}

// fakeEvaluator scripts the external evaluation service.
type fakeEvaluator struct {
	response *evaluator.PipelineResponse
	err      error
	healthy  bool
	calls    int
	lastReq  *evaluator.PipelineRequest
}

func (f *fakeEvaluator) Evaluate(ctx context.Context, req *evaluator.PipelineRequest) (*evaluator.PipelineResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func (f *fakeEvaluator) HealthCheck(ctx context.Context) bool {
	return f.healthy
}

// capturingPublisher records scheduled payloads instead of dispatching them.
type capturingPublisher struct {
	payloads [][]byte
	err      error
}

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

// fakeCriteriaService bypasses the repository-backed resolver.
type fakeCriteriaService struct {
	rubric entity.EvaluationRubric
	err    error
	calls  int
}

func (f *fakeCriteriaService) ResolveCriteria(ctx context.Context, jobRoleName string) (entity.EvaluationRubric, error) {
	f.calls++
	return f.rubric, f.err
}
