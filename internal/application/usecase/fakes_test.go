package usecase_test

import (
	"context"
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/transports-api/internal/domain/entity"
	"github.com/jhoicas/transports-api/internal/domain/repository"
)

// memTransportRepo repositorio en memoria para tests de casos de uso.
// Replica el contrato del repositorio PostgreSQL: ids seriales, historial
// más reciente primero, DeleteByID devuelve false si el id no existe.
type memTransportRepo struct {
	nextID int64
	rows   []entity.Transport
	failed bool // simula fallo de persistencia
}

var errPersistence = errors.New("db caída")

func newMemTransportRepo() *memTransportRepo {
	return &memTransportRepo{nextID: 1}
}

func (m *memTransportRepo) Create(_ context.Context, t *entity.Transport) error {
	if m.failed {
		return errPersistence
	}
	t.ID = m.nextID
	m.nextID++
	m.rows = append(m.rows, *t)
	return nil
}

func (m *memTransportRepo) ListAll(_ context.Context) ([]entity.Transport, error) {
	if m.failed {
		return nil, errPersistence
	}
	out := make([]entity.Transport, len(m.rows))
	copy(out, m.rows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (m *memTransportRepo) DeleteByID(_ context.Context, id int64) (bool, error) {
	if m.failed {
		return false, errPersistence
	}
	for i, t := range m.rows {
		if t.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memTransportRepo) DeleteAll(_ context.Context) (int64, error) {
	if m.failed {
		return 0, errPersistence
	}
	n := int64(len(m.rows))
	m.rows = nil
	return n, nil
}

// memSummaryRepo agrega en memoria sobre las filas del memTransportRepo,
// con la misma semántica que las consultas SQL (sumas de montos almacenados,
// cero en tabla vacía, orden por worker_id).
type memSummaryRepo struct {
	src *memTransportRepo
}

func (m *memSummaryRepo) Global(_ context.Context) (repository.GlobalSummaryResult, error) {
	if m.src.failed {
		return repository.GlobalSummaryResult{}, errPersistence
	}
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
	if m.src.failed {
		return nil, errPersistence
	}
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
