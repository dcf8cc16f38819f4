package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/smarthr-api/internal/domain/entity"
	"github.com/jhoicas/smarthr-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// AttendanceRepo implementación del puerto AttendanceRepository sobre
// MongoDB. Las escrituras de ganador único se apoyan en updates
// condicionales: el filtro exige que el campo esté ausente, y
// ModifiedCount dice si esta llamada lo fijó.
type AttendanceRepo struct {
	col *mongo.Collection
}

// NewAttendanceRepository construye el adaptador de asistencia.
func NewAttendanceRepository(db *mongo.Database) *AttendanceRepo {
	return &AttendanceRepo{col: db.Collection(colAttendance)}
}

func decodeAttendance(doc bson.M) *entity.AttendanceRecord {
	rec := &entity.AttendanceRecord{
		EmployeeCode:   pickString(doc, "employeeCode"),
		Date:           pickString(doc, "date"),
		InTime:         pickTimePtr(doc, "inTime"),
		OutTime:        pickTimePtr(doc, "outTime"),
		Method:         pickString(doc, "method"),
		LastConfidence: pickFloat(doc, "lastConfidence"),
	}
	if isLate, ok := doc["isLate"].(bool); ok {
		rec.IsLate = isLate
	}
	rec.LateStreakToday = int(pickFloat(doc, "lateStreakToday"))
	return rec
}

// Get registro de (code, fecha local), nil si no existe.
func (r *AttendanceRepo) Get(code, date string) (*entity.AttendanceRecord, error) {
	var doc bson.M
	err := r.col.FindOne(context.Background(), bson.M{"employeeCode": code, "date": date}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar asistencia %s/%s: %w", code, date, err)
	}
	return decodeAttendance(doc), nil
}

// CreateFirstScan upsert con $setOnInsert: si el documento ya existe no se
// toca nada. UpsertedCount distingue al ganador.
func (r *AttendanceRepo) CreateFirstScan(rec *entity.AttendanceRecord) (bool, error) {
	payload := bson.M{
		"employeeCode":   rec.EmployeeCode,
		"date":           rec.Date,
		"inTime":         utcOrNil(rec.InTime),
		"outTime":        utcOrNil(rec.OutTime),
		"method":         rec.Method,
		"lastConfidence": rec.LastConfidence,
	}
	res, err := r.col.UpdateOne(
		context.Background(),
		bson.M{"employeeCode": rec.EmployeeCode, "date": rec.Date},
		bson.M{"$setOnInsert": payload},
		mongoUpsert(),
	)
	if err != nil {
		return false, fmt.Errorf("crear asistencia %s/%s: %w", rec.EmployeeCode, rec.Date, err)
	}
	return res.UpsertedCount == 1, nil
}

// SetCheckIn fija inTime solo si está ausente. La confianza se actualiza
// siempre, en una escritura separada para no condicionar su registro al
// resultado de la carrera.
func (r *AttendanceRepo) SetCheckIn(code, date string, t time.Time, confidence float64) (bool, error) {
	return r.setTimeField(code, date, "inTime", t, confidence)
}

// SetCheckOut análogo para outTime.
func (r *AttendanceRepo) SetCheckOut(code, date string, t time.Time, confidence float64) (bool, error) {
	return r.setTimeField(code, date, "outTime", t, confidence)
}

func (r *AttendanceRepo) setTimeField(code, date, field string, t time.Time, confidence float64) (bool, error) {
	ctx := context.Background()

	if err := r.TouchConfidence(code, date, confidence); err != nil {
		return false, err
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{
			"employeeCode": code,
			"date":         date,
			"$or": bson.A{
				bson.M{field: nil},
				bson.M{field: bson.M{"$exists": false}},
			},
		},
		bson.M{"$set": bson.M{field: t.UTC()}},
	)
	if err != nil {
		return false, fmt.Errorf("fijar %s de %s/%s: %w", field, code, date, err)
	}
	return res.ModifiedCount == 1, nil
}

// TouchConfidence actualiza solo lastConfidence.
func (r *AttendanceRepo) TouchConfidence(code, date string, confidence float64) error {
	_, err := r.col.UpdateOne(
		context.Background(),
		bson.M{"employeeCode": code, "date": date},
		bson.M{"$set": bson.M{"lastConfidence": confidence}},
	)
	if err != nil {
		return fmt.Errorf("actualizar confianza de %s/%s: %w", code, date, err)
	}
	return nil
}

// CodesForDate códigos con algún registro en la fecha.
func (r *AttendanceRepo) CodesForDate(date string) ([]string, error) {
	values, err := r.col.Distinct(context.Background(), "employeeCode", bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("códigos con asistencia en %s: %w", date, err)
	}
	codes := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			codes = append(codes, s)
		}
	}
	return codes, nil
}

// SetLateness persiste el flag de tardanza y la racha calculada.
func (r *AttendanceRepo) SetLateness(code, date string, isLate bool, streak int) error {
	_, err := r.col.UpdateOne(
		context.Background(),
		bson.M{"employeeCode": code, "date": date},
		bson.M{"$set": bson.M{"isLate": isLate, "lateStreakToday": streak}},
	)
	if err != nil {
		return fmt.Errorf("marcar tardanza de %s/%s: %w", code, date, err)
	}
	return nil
}

// ListRange registros del empleado con fecha en [from, to], ascendente.
func (r *AttendanceRepo) ListRange(code, from, to string) ([]*entity.AttendanceRecord, error) {
	ctx := context.Background()
	cur, err := r.col.Find(ctx, bson.M{
		"employeeCode": code,
		"date":         bson.M{"$gte": from, "$lte": to},
	}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("listar asistencia de %s: %w", code, err)
	}
	defer cur.Close(ctx)

	var out []*entity.AttendanceRecord
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, decodeAttendance(doc))
	}
	return out, cur.Err()
}

func utcOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
