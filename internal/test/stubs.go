package test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/akalomiris/reportly/internal/domain/errors"
	"github.com/akalomiris/reportly/internal/domain/model"
)

// OrderRepositoryStub provides controllable order persistence behaviour.
type OrderRepositoryStub struct {
	CreateFn func(context.Context, *model.Order) (*model.Order, error)
	ListFn   func(context.Context) ([]model.OrderView, error)
	CountFn  func(context.Context) (int64, error)
}

func (s OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	order.ID = 1
	return order, nil
}

func (s OrderRepositoryStub) ListWithCustomers(ctx context.Context) ([]model.OrderView, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.OrderView{{DisplayID: "ORD_1", CustomerName: "Makis", CustomerSurname: "Zita", CurrencySymbol: "€", InitializedAt: 1000}}, nil
}

func (s OrderRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx)
	}
	return 1, nil
}

// StatusChange records one UpdateStatus invocation.
type StatusChange struct {
	UID    uuid.UUID
	Status model.ReportStatus
}

// ReportRepositoryStub tracks report rows in memory.
type ReportRepositoryStub struct {
	CreateFn       func(context.Context, *model.Report) (*model.Report, error)
	GetFn          func(context.Context, uuid.UUID) (*model.Report, error)
	UpdateStatusFn func(context.Context, uuid.UUID, model.ReportStatus) error

	mu      sync.Mutex
	Changes []StatusChange
}

func (s *ReportRepositoryStub) Create(ctx context.Context, report *model.Report) (*model.Report, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, report)
	}
	report.RequestedAt = time.Unix(0, 0)
	report.UpdatedAt = report.RequestedAt
	return report, nil
}

func (s *ReportRepositoryStub) GetByUID(ctx context.Context, uid uuid.UUID) (*model.Report, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, uid)
	}
	return &model.Report{UID: uid, Status: model.ReportStatusRequested}, nil
}

func (s *ReportRepositoryStub) UpdateStatus(ctx context.Context, uid uuid.UUID, status model.ReportStatus) error {
	s.mu.Lock()
	s.Changes = append(s.Changes, StatusChange{UID: uid, Status: status})
	s.mu.Unlock()
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, uid, status)
	}
	return nil
}

// Recorded returns a snapshot of status changes.
func (s *ReportRepositoryStub) Recorded() []StatusChange {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StatusChange, len(s.Changes))
	copy(out, s.Changes)
	return out
}

// ReportStoreStub is an in-memory report store.
type ReportStoreStub struct {
	PutFn  func(uuid.UUID, []byte) error
	GetFn  func(uuid.UUID) ([]byte, error)
	ListFn func() ([]string, error)

	mu    sync.Mutex
	Files map[uuid.UUID][]byte
}

func (s *ReportStoreStub) Put(uid uuid.UUID, content []byte) error {
	if s.PutFn != nil {
		return s.PutFn(uid, content)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Files == nil {
		s.Files = make(map[uuid.UUID][]byte)
	}
	s.Files[uid] = append([]byte(nil), content...)
	return nil
}

func (s *ReportStoreStub) Get(uid uuid.UUID) ([]byte, error) {
	if s.GetFn != nil {
		return s.GetFn(uid)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.Files[uid]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return content, nil
}

func (s *ReportStoreStub) List() ([]string, error) {
	if s.ListFn != nil {
		return s.ListFn()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.Files))
	for uid := range s.Files {
		ids = append(ids, uid.String())
	}
	return ids, nil
}

// RendererStub emits predictable bytes instead of a real PDF.
type RendererStub struct {
	RenderFn func([]model.OrderView, time.Time) ([]byte, error)
}

func (s RendererStub) Render(views []model.OrderView, generatedAt time.Time) ([]byte, error) {
	if s.RenderFn != nil {
		return s.RenderFn(views, generatedAt)
	}
	return []byte("%PDF-stub"), nil
}

// GeneratorStub mimics the report pipeline for worker tests.
type GeneratorStub struct {
	GenerateFn func(context.Context, uuid.UUID) error

	mu        sync.Mutex
	Generated []uuid.UUID
}

func (s *GeneratorStub) Generate(ctx context.Context, uid uuid.UUID) error {
	s.mu.Lock()
	s.Generated = append(s.Generated, uid)
	s.mu.Unlock()
	if s.GenerateFn != nil {
		return s.GenerateFn(ctx, uid)
	}
	return nil
}

// Calls returns a snapshot of generated report ids.
func (s *GeneratorStub) Calls() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]uuid.UUID, len(s.Generated))
	copy(out, s.Generated)
	return out
}

// ReportFacadeStub provides controllable behaviour for HTTP handlers.
type ReportFacadeStub struct {
	QueueFn func(context.Context) (uuid.UUID, error)
	FetchFn func(context.Context, uuid.UUID) ([]byte, error)
	ListFn  func(context.Context) ([]string, error)
}

func (s ReportFacadeStub) QueueReport(ctx context.Context) (uuid.UUID, error) {
	if s.QueueFn != nil {
		return s.QueueFn(ctx)
	}
	return uuid.New(), nil
}

func (s ReportFacadeStub) FetchReport(ctx context.Context, uid uuid.UUID) ([]byte, error) {
	if s.FetchFn != nil {
		return s.FetchFn(ctx, uid)
	}
	return []byte("%PDF-stub"), nil
}

func (s ReportFacadeStub) ListReports(ctx context.Context) ([]string, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []string{uuid.NewString()}, nil
}

// SchedulerStub records enqueued report identifiers.
type SchedulerStub struct {
	EnqueueFn func(context.Context, uuid.UUID) error

	mu       sync.Mutex
	Enqueued []uuid.UUID
}

func (s *SchedulerStub) Enqueue(ctx context.Context, uid uuid.UUID) error {
	s.mu.Lock()
	s.Enqueued = append(s.Enqueued, uid)
	s.mu.Unlock()
	if s.EnqueueFn != nil {
		return s.EnqueueFn(ctx, uid)
	}
	return nil
}

// Queued returns a snapshot of enqueued ids.
func (s *SchedulerStub) Queued() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]uuid.UUID, len(s.Enqueued))
	copy(out, s.Enqueued)
	return out
}
