package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/akalomiris/reportly/internal/domain/model"
	testhelpers "github.com/akalomiris/reportly/internal/test"
	"github.com/akalomiris/reportly/internal/usecase"
)

func newFacade(reports *testhelpers.ReportRepositoryStub, files *testhelpers.ReportStoreStub, scheduler RenderScheduler) *ReportFacade {
	uc := usecase.NewReportUseCase(
		reports,
		usecase.NewOrderUseCase(testhelpers.OrderRepositoryStub{}),
		testhelpers.RendererStub{},
		files,
	)
	return NewReportFacade(uc, scheduler)
}

func TestQueueReportSchedulesRender(t *testing.T) {
	scheduler := &testhelpers.SchedulerStub{}
	facade := newFacade(&testhelpers.ReportRepositoryStub{}, &testhelpers.ReportStoreStub{}, scheduler)

	uid, err := facade.QueueReport(context.Background())
	if err != nil {
		t.Fatalf("QueueReport failed: %v", err)
	}
	if uid == uuid.Nil {
		t.Fatal("expected a fresh identifier")
	}

	queued := scheduler.Queued()
	if len(queued) != 1 || queued[0] != uid {
		t.Fatalf("expected %s to be scheduled, got %v", uid, queued)
	}
}

func TestQueueReportPropagatesPersistenceError(t *testing.T) {
	boom := errors.New("db down")
	reports := &testhelpers.ReportRepositoryStub{
		CreateFn: func(context.Context, *model.Report) (*model.Report, error) { return nil, boom },
	}
	scheduler := &testhelpers.SchedulerStub{}
	facade := newFacade(reports, &testhelpers.ReportStoreStub{}, scheduler)

	if _, err := facade.QueueReport(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected db error, got %v", err)
	}
	if len(scheduler.Queued()) != 0 {
		t.Fatal("failed request must not be scheduled")
	}
}

func TestQueueReportPropagatesSchedulerError(t *testing.T) {
	full := errors.New("queue closed")
	scheduler := &testhelpers.SchedulerStub{
		EnqueueFn: func(context.Context, uuid.UUID) error { return full },
	}
	facade := newFacade(&testhelpers.ReportRepositoryStub{}, &testhelpers.ReportStoreStub{}, scheduler)

	if _, err := facade.QueueReport(context.Background()); !errors.Is(err, full) {
		t.Fatalf("expected scheduler error, got %v", err)
	}
}

func TestFetchAndListDelegateToStore(t *testing.T) {
	files := &testhelpers.ReportStoreStub{}
	uid := uuid.New()
	if err := files.Put(uid, []byte("pdf-bytes")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	facade := newFacade(&testhelpers.ReportRepositoryStub{}, files, &testhelpers.SchedulerStub{})

	content, err := facade.FetchReport(context.Background(), uid)
	if err != nil {
		t.Fatalf("FetchReport failed: %v", err)
	}
	if string(content) != "pdf-bytes" {
		t.Fatalf("unexpected content %q", content)
	}

	ids, err := facade.ListReports(context.Background())
	if err != nil {
		t.Fatalf("ListReports failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != uid.String() {
		t.Fatalf("expected [%s], got %v", uid, ids)
	}
}
