package attendance_test

import (
	"time"

	"github.com/jhoicas/smarthr-api/internal/domain/entity"
	"github.com/jhoicas/smarthr-api/internal/domain/face"
)

// fakeExtractor devuelve un embedding fijo o un error preconfigurado.
type fakeExtractor struct {
	embedding face.Embedding
	err       error
}

func (f *fakeExtractor) Extract(image []byte) (face.Embedding, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.embedding, nil
}

// fakeEmployeeRepo implementación en memoria del puerto de empleados.
type fakeEmployeeRepo struct {
	employees   map[string]*entity.Employee
	listErr     error
	listCalls   int
	upsertCalls int
}

func newFakeEmployeeRepo(employees ...*entity.Employee) *fakeEmployeeRepo {
	m := make(map[string]*entity.Employee, len(employees))
	for _, e := range employees {
		m[e.EmpID] = e
	}
	return &fakeEmployeeRepo{employees: m}
}

func (f *fakeEmployeeRepo) FindByCode(code string) (*entity.Employee, error) {
	return f.employees[code], nil
}

func (f *fakeEmployeeRepo) FindByNameExact(name string) ([]*entity.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) FindByNamePrefix(name string) ([]*entity.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListEnrolled() ([]*entity.Employee, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*entity.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		if e.Enrolled() {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) UpsertEmbedding(code string, embedding []float32) error {
	f.upsertCalls++
	e, ok := f.employees[code]
	if !ok {
		e = &entity.Employee{EmpID: code}
		f.employees[code] = e
	}
	e.Embedding = embedding
	return nil
}

func (f *fakeEmployeeRepo) FullNamesByCodes(codes []string) (map[string]string, error) {
	out := map[string]string{}
	for _, c := range codes {
		if e, ok := f.employees[c]; ok {
			out[c] = e.FullName
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Count() (int64, error) { return int64(len(f.employees)), nil }

func (f *fakeEmployeeRepo) CountByDept(dept string) (int64, error) {
	var n int64
	for _, e := range f.employees {
		if e.Dept == dept {
			n++
		}
	}
	return n, nil
}

// fakeAttendanceRepo implementación en memoria con la misma semántica de
// ganador único que el adaptador Mongo.
type fakeAttendanceRepo struct {
	records map[string]*entity.AttendanceRecord // clave code|date
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[string]*entity.AttendanceRecord{}}
}

func key(code, date string) string { return code + "|" + date }

func (f *fakeAttendanceRepo) Get(code, date string) (*entity.AttendanceRecord, error) {
	return f.records[key(code, date)], nil
}

func (f *fakeAttendanceRepo) CreateFirstScan(rec *entity.AttendanceRecord) (bool, error) {
	k := key(rec.EmployeeCode, rec.Date)
	if _, ok := f.records[k]; ok {
		return false, nil
	}
	cp := *rec
	f.records[k] = &cp
	return true, nil
}

func (f *fakeAttendanceRepo) SetCheckIn(code, date string, t time.Time, confidence float64) (bool, error) {
	rec, ok := f.records[key(code, date)]
	if !ok {
		return false, nil
	}
	rec.LastConfidence = confidence
	if rec.InTime != nil {
		return false, nil
	}
	rec.InTime = &t
	return true, nil
}

func (f *fakeAttendanceRepo) SetCheckOut(code, date string, t time.Time, confidence float64) (bool, error) {
	rec, ok := f.records[key(code, date)]
	if !ok {
		return false, nil
	}
	rec.LastConfidence = confidence
	if rec.OutTime != nil {
		return false, nil
	}
	rec.OutTime = &t
	return true, nil
}

func (f *fakeAttendanceRepo) TouchConfidence(code, date string, confidence float64) error {
	if rec, ok := f.records[key(code, date)]; ok {
		rec.LastConfidence = confidence
	}
	return nil
}

func (f *fakeAttendanceRepo) CodesForDate(date string) ([]string, error) {
	var out []string
	for _, rec := range f.records {
		if rec.Date == date {
			out = append(out, rec.EmployeeCode)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) SetLateness(code, date string, isLate bool, streak int) error {
	if rec, ok := f.records[key(code, date)]; ok {
		rec.IsLate = isLate
		rec.LateStreakToday = streak
	}
	return nil
}

func (f *fakeAttendanceRepo) ListRange(code, from, to string) ([]*entity.AttendanceRecord, error) {
	var out []*entity.AttendanceRecord
	for _, rec := range f.records {
		if rec.EmployeeCode == code && rec.Date >= from && rec.Date <= to {
			out = append(out, rec)
		}
	}
	return out, nil
}

// fakeNotificationRepo honra la unicidad de (Type, EmpID, Date, Reason).
type fakeNotificationRepo struct {
	notifications []*entity.Notification
	seen          map[string]bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{seen: map[string]bool{}}
}

func (f *fakeNotificationRepo) InsertIfAbsent(n *entity.Notification) (bool, error) {
	k := n.Type + "|" + n.EmpID + "|" + n.Date.Format("2006-01-02") + "|" + n.Reason
	if f.seen[k] {
		return false, nil
	}
	f.seen[k] = true
	f.notifications = append(f.notifications, n)
	return true, nil
}

func (f *fakeNotificationRepo) ListByEmpID(empID string, limit int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range f.notifications {
		if n.EmpID == empID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) ListAll(limit int) ([]*entity.Notification, error) {
	return f.notifications, nil
}
