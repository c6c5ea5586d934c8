package http_test

import (
	"context"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/transports-api/internal/application/usecase"
	"github.com/jhoicas/transports-api/internal/domain/entity"
	"github.com/jhoicas/transports-api/internal/domain/pricing"
	"github.com/jhoicas/transports-api/internal/domain/repository"
	"github.com/jhoicas/transports-api/internal/domain/workers"
	"github.com/jhoicas/transports-api/internal/infrastructure/excel"
	apphttp "github.com/jhoicas/transports-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: repositorios en memoria con la misma semántica que PostgreSQL
// ──────────────────────────────────────────────────────────────────────────────

type memTransportRepo struct {
	nextID int64
	rows   []entity.Transport
}

func newMemTransportRepo() *memTransportRepo {
	return &memTransportRepo{nextID: 1}
}

func (m *memTransportRepo) Create(_ context.Context, t *entity.Transport) error {
	t.ID = m.nextID
	m.nextID++
	// El timestamp lo asigna la base en producción; aquí lo hace el fake
	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now()
	}
	m.rows = append(m.rows, *t)
	return nil
}

func (m *memTransportRepo) ListAll(_ context.Context) ([]entity.Transport, error) {
	out := make([]entity.Transport, len(m.rows))
	copy(out, m.rows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (m *memTransportRepo) DeleteByID(_ context.Context, id int64) (bool, error) {
	for i, t := range m.rows {
		if t.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memTransportRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(m.rows))
	m.rows = nil
	return n, nil
}

type memSummaryRepo struct {
	src *memTransportRepo
}

func (m *memSummaryRepo) Global(_ context.Context) (repository.GlobalSummaryResult, error) {
	var res repository.GlobalSummaryResult
	total := int64(0)
	for _, t := range m.src.rows {
		total += t.Amount
		switch t.Type {
		case entity.TransportTypeSac:
			res.TotalSacs += t.Quantity
		case entity.TransportTypeBal:
			res.TotalBals += t.Quantity
		}
	}
	res.TotalAmount = decimal.NewFromInt(total)
	return res, nil
}

func (m *memSummaryRepo) ByWorker(_ context.Context) ([]repository.WorkerSummaryResult, error) {
	byID := map[int]*repository.WorkerSummaryResult{}
	totals := map[int]int64{}
	for _, t := range m.src.rows {
		r, ok := byID[t.WorkerID]
		if !ok {
			r = &repository.WorkerSummaryResult{WorkerID: t.WorkerID}
			byID[t.WorkerID] = r
		}
		totals[t.WorkerID] += t.Amount
		switch t.Type {
		case entity.TransportTypeSac:
			r.TotalSacs += t.Quantity
		case entity.TransportTypeBal:
			r.TotalBals += t.Quantity
		}
	}
	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]repository.WorkerSummaryResult, 0, len(ids))
	for _, id := range ids {
		r := byID[id]
		r.TotalAmount = decimal.NewFromInt(totals[id])
		out = append(out, *r)
	}
	return out, nil
}

// buildTestApp construye la aplicación Fiber completa sobre los fakes,
// con las mismas rutas que producción.
func buildTestApp() (*fiber.App, *memTransportRepo) {
	repo := newMemTransportRepo()
	reg := workers.Default()

	transportUC := usecase.NewTransportUseCase(repo, pricing.Default(), reg)
	summaryUC := usecase.NewSummaryUseCase(&memSummaryRepo{src: repo}, reg)
	reportUC := usecase.NewReportUseCase(transportUC, excel.NewReportGenerator())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		TransportUC: transportUC,
		SummaryUC:   summaryUC,
		ReportUC:    reportUC,
		Registry:    reg,
	})
	return app, repo
}
